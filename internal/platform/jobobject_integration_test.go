//go:build windows && integration

package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

// These integration tests exercise the plain post-Start AssignProcess
// pattern buildrun.setupSignalForwarding actually uses: Start() the build
// command, then assign its PID to the job, with no CREATE_SUSPENDED/
// ResumeThread dance (bearskim doesn't need the child paused before
// assignment, unlike a driver that has to guarantee a grandchild can never
// escape the job before the job exists).

// TestHelper_SleepForever is a helper process that sleeps indefinitely.
// It is invoked by other tests via -test.run=TestHelper_SleepForever.
func TestHelper_SleepForever(t *testing.T) {
	if os.Getenv("PLATFORM_TEST_HELPER") != "1" {
		return // not the helper subprocess
	}
	fmt.Fprintf(os.Stdout, "%d", os.Getpid())
	os.Stdout.Sync()
	time.Sleep(10 * time.Minute)
}

// TestHelper_SpawnGrandchild is a helper process that spawns a grandchild
// (itself, but with SLEEP mode) and then waits, simulating a build step
// that forks a compiler subprocess the job must also catch.
func TestHelper_SpawnGrandchild(t *testing.T) {
	if os.Getenv("PLATFORM_TEST_HELPER") != "1" {
		return
	}
	mode := os.Getenv("PLATFORM_TEST_MODE")
	if mode == "SLEEP" {
		fmt.Fprintf(os.Stdout, "%d", os.Getpid())
		os.Stdout.Sync()
		time.Sleep(10 * time.Minute)
		return
	}

	pidFile := os.Getenv("PLATFORM_TEST_PID_FILE")

	self, _ := os.Executable()
	grandchild := exec.Command(self, "-test.run=TestHelper_SpawnGrandchild", "-test.v")
	grandchild.Env = append(os.Environ(),
		"PLATFORM_TEST_HELPER=1",
		"PLATFORM_TEST_MODE=SLEEP",
	)
	grandchild.SysProcAttr = &syscall.SysProcAttr{CreationFlags: windows.CREATE_NEW_PROCESS_GROUP}

	var gcOut strings.Builder
	grandchild.Stdout = &gcOut
	require.NoError(t, grandchild.Start())

	time.Sleep(500 * time.Millisecond)

	gcPID := strings.TrimSpace(gcOut.String())
	if gcPID == "" {
		gcPID = strconv.Itoa(grandchild.Process.Pid)
	}
	if pidFile != "" {
		os.WriteFile(pidFile, []byte(gcPID), 0644) //nolint:errcheck
	}

	fmt.Fprintf(os.Stdout, "%d", os.Getpid())
	os.Stdout.Sync()

	_ = grandchild.Wait()
}

func processExists(pid uint32) bool {
	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return false
	}
	defer windows.CloseHandle(handle) //nolint:errcheck

	var exitCode uint32
	err = windows.GetExitCodeProcess(handle, &exitCode)
	if err != nil {
		return false
	}
	return exitCode == 259 // STILL_ACTIVE
}

// TestWindows_JobObject_AssignAndTerminate mirrors buildrun's postStart:
// Start() a child, AssignProcess it to a fresh job, then Terminate the job
// on a Ctrl+C-equivalent signal.
func TestWindows_JobObject_AssignAndTerminate(t *testing.T) {
	job, err := NewJobObject()
	require.NoError(t, err)
	defer job.Close() //nolint:errcheck

	self, _ := os.Executable()
	child := exec.Command(self, "-test.run=TestHelper_SleepForever", "-test.v")
	child.Env = append(os.Environ(), "PLATFORM_TEST_HELPER=1")
	require.NoError(t, child.Start())

	pid := uint32(child.Process.Pid)

	require.NoError(t, job.AssignProcess(int(pid)))
	assert.True(t, job.IsAssigned())
	assert.True(t, processExists(pid), "child should be running")

	require.NoError(t, job.Terminate(1))

	_ = child.Wait()
	time.Sleep(200 * time.Millisecond)

	assert.False(t, processExists(pid), "child should be terminated")
}

// TestWindows_JobObject_ProcessTreeKill tests that terminating a job kills
// a build command's grandchild (e.g. a compiler launched by a build
// script's shell), simulated here with two independent processes in the
// same job.
func TestWindows_JobObject_ProcessTreeKill(t *testing.T) {
	job, err := NewJobObject()
	require.NoError(t, err)
	defer job.Close() //nolint:errcheck

	self, _ := os.Executable()

	child1 := exec.Command(self, "-test.run=TestHelper_SleepForever", "-test.v")
	child1.Env = append(os.Environ(), "PLATFORM_TEST_HELPER=1")
	require.NoError(t, child1.Start())
	pid1 := uint32(child1.Process.Pid)

	child2 := exec.Command(self, "-test.run=TestHelper_SleepForever", "-test.v")
	child2.Env = append(os.Environ(), "PLATFORM_TEST_HELPER=1")
	require.NoError(t, child2.Start())
	pid2 := uint32(child2.Process.Pid)

	require.NoError(t, job.AssignProcess(int(pid1)))
	require.NoError(t, job.AssignProcess(int(pid2)))

	assert.True(t, processExists(pid1), "child1 should be running")
	assert.True(t, processExists(pid2), "child2 should be running")

	require.NoError(t, job.Terminate(1))
	_ = child1.Wait()
	_ = child2.Wait()

	time.Sleep(500 * time.Millisecond)

	assert.False(t, processExists(pid1), "child1 should be dead")
	assert.False(t, processExists(pid2), "child2 should be dead (multi-process job kill)")
}

// TestWindows_JobObject_KillOnJobClose tests that cleanup()'s Close() call
// terminates an assigned build command even if Terminate wasn't reached
// first (e.g. the driver exits on a different path).
func TestWindows_JobObject_KillOnJobClose(t *testing.T) {
	job, err := NewJobObject()
	require.NoError(t, err)

	self, _ := os.Executable()
	child := exec.Command(self, "-test.run=TestHelper_SleepForever", "-test.v")
	child.Env = append(os.Environ(), "PLATFORM_TEST_HELPER=1")
	require.NoError(t, child.Start())

	pid := uint32(child.Process.Pid)

	require.NoError(t, job.AssignProcess(int(pid)))

	require.NoError(t, job.Close())

	_ = child.Wait()
	time.Sleep(200 * time.Millisecond)

	assert.False(t, processExists(pid), "KILL_ON_JOB_CLOSE should terminate on handle close")
}
