package preload

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bearskim/bearskim/internal/env"
	"github.com/bearskim/bearskim/internal/execevent"
)

// ResolveExecutable performs the $PATH search step common to the
// path-search call variants (execlp, execvp, execvpe, popen, system). When
// pathSearch is false, name is already an absolute or relative path and is
// returned unchanged.
func ResolveExecutable(name string, pathSearch bool) (string, error) {
	if !pathSearch {
		return name, nil
	}
	resolved, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("preload: resolve %q on PATH: %w", name, err)
	}
	return resolved, nil
}

// BuildEvent is the single construction point every exec-family override
// (real preload override, or the wrapper-mode shim's one observable call
// shape) funnels through, so the capability table's argv/env rules are
// enforced exactly once.
func BuildEvent(pid uint32, resolvedPath string, argv []string, cwd string, environ map[string]string) (execevent.Event, error) {
	ex, err := execevent.NewExecution(resolvedPath, argv, cwd, environ)
	if err != nil {
		return execevent.Event{}, err
	}
	return execevent.Event{PID: pid, Execution: ex}, nil
}

// verboseEnvVar gates the shim's own stderr diagnostics, independent of
// the build's exit status or output.
const verboseEnvVar = "INTERCEPT_VERBOSE"

// VerboseFromEnv reports whether INTERCEPT_VERBOSE is set to a truthy
// value in environ.
func VerboseFromEnv(environ []string) bool {
	v, ok := env.GetVar(environ, verboseEnvVar)
	if !ok {
		return false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true // any non-empty, non-boolean value is treated as "set"
	}
	return b
}
