package buildrun

import (
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"

	"github.com/bearskim/bearskim/internal/collector"
	"github.com/bearskim/bearskim/internal/env"
	"github.com/bearskim/bearskim/internal/execevent"
	"github.com/bearskim/bearskim/internal/wrapper"
)

// Options configures one supervised build run.
type Options struct {
	// Compilers maps the basenames to shadow on PATH to their real
	// absolute paths.
	Compilers map[string]string
	// WrapperDir is where the wrapper session's shim directory is
	// created.
	WrapperDir string
	// EnvDenyPatterns are glob patterns (path.Match syntax) matched
	// against environment variable names; a matching variable's value is
	// redacted in every captured Event instead of copied verbatim.
	EnvDenyPatterns []string
	Argv            []string
	Stdin      *os.File
	Stdout     *os.File
	Stderr     *os.File
	Log        *zap.Logger
}

// Result is the outcome of a supervised build run.
type Result struct {
	ExitCode int
	Events   []execevent.Event
}

// Run builds a wrapper session, starts the collector, spawns the build
// command with a PATH prepended with the wrapper directory and the
// collector's address injected, waits for it, then tears everything down
// in the order spec.md §5 prescribes: capture exit code, stop the
// collector, join the listener, drain the channel, join the consumer.
func Run(opts Options) (Result, error) {
	coll, err := collector.New(opts.Log)
	if err != nil {
		return Result{}, fmt.Errorf("buildrun: start collector: %w", err)
	}

	sess, err := wrapper.Build(opts.WrapperDir, opts.Compilers, opts.EnvDenyPatterns)
	if err != nil {
		coll.Stop()
		return Result{}, fmt.Errorf("buildrun: build wrapper session: %w", err)
	}
	defer sess.Close() //nolint:errcheck // best-effort cleanup

	var events []execevent.Event
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for ev := range coll.Events() {
			events = append(events, ev)
		}
	}()

	childEnv := sess.ChildEnv(os.Environ())
	childEnv = env.SetVar(childEnv, wrapper.CollectorAddrEnvVar, coll.Addr())

	cmd := exec.Command(opts.Argv[0], opts.Argv[1:]...) //nolint:gosec // caller-specified build command
	cmd.Env = childEnv
	if opts.Stdin != nil {
		cmd.Stdin = opts.Stdin
	}
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	postStart, cleanupSignals := setupSignalForwarding(cmd)

	if err := cmd.Start(); err != nil {
		cleanupSignals()
		coll.Stop()
		<-drained
		return Result{}, fmt.Errorf("buildrun: start build command: %w", err)
	}
	postStart()

	waitErr := cmd.Wait()
	cleanupSignals()

	exitCode := ExitCodeFromError(waitErr)

	coll.Stop()
	<-drained

	return Result{ExitCode: exitCode, Events: events}, nil
}
