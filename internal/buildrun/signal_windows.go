//go:build windows

package buildrun

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"

	"github.com/bearskim/bearskim/internal/platform"
)

// setupSignalForwarding assigns the build command to a Windows Job Object
// so Ctrl+C terminates its whole process tree. Falls back to a plain
// Process.Kill() if job object creation fails. Simplified from
// cmd/exec_windows.go: no CREATE_SUSPENDED dance, since the build command
// doesn't need to be paused before assignment here.
func setupSignalForwarding(cmd *exec.Cmd) (postStart func(), cleanup func()) {
	job, err := platform.NewJobObject()
	if err != nil {
		fmt.Fprintf(os.Stderr, "bearskim: warning: job object unavailable, falling back to single-process kill: %v\n", err)
		return func() {}, fallbackSignalForwarding(cmd)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	go func() {
		for range sigCh {
			_ = job.Terminate(1)
		}
	}()

	postStart = func() {
		if cmd.Process == nil {
			return
		}
		if err := job.AssignProcess(cmd.Process.Pid); err != nil {
			fmt.Fprintf(os.Stderr, "bearskim: warning: could not assign process %d to job object: %v\n", cmd.Process.Pid, err)
		}
	}

	cleanup = func() {
		signal.Stop(sigCh)
		close(sigCh)
		_ = job.Terminate(1)
		_ = job.Close()
	}

	return postStart, cleanup
}

func fallbackSignalForwarding(cmd *exec.Cmd) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	go func() {
		for range sigCh {
			if cmd.Process != nil {
				_ = cmd.Process.Kill()
			}
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(sigCh)
	}
}
