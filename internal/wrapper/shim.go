package wrapper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bearskim/bearskim/internal/env"
	"github.com/bearskim/bearskim/internal/envfilter"
	"github.com/bearskim/bearskim/internal/execevent"
	"github.com/bearskim/bearskim/internal/preload"
	"github.com/bearskim/bearskim/internal/reporter"
)

// redactedValue replaces the value of any environment variable matching an
// EnvDenyPatterns glob before it leaves the process in a reported Event.
const redactedValue = "<redacted>"

// InShimEnvVar guards against a wrapper shim re-exec'ing into itself, the
// way a build that shells out to "cc" repeatedly would otherwise recurse
// through the wrapper directory forever.
const InShimEnvVar = "BEARSKIM_IN_SHIM"

// CollectorAddrEnvVar names the environment variable the driver injects
// with the collector's loopback address.
const CollectorAddrEnvVar = "INTERCEPT_COLLECTOR_ADDRESS"

// RunShim is the entry point reached when this binary is invoked under a
// wrapped basename. It resolves the real executable from the wrapper
// manifest sitting alongside it, reports an Event, then replaces itself
// with the real executable (Unix) or spawns and waits for it (Windows,
// where there is no exec-replace syscall).
//
// RunShim never returns on success: it calls os.Exit once the real command
// has run, or execs over itself. It returns an error for setup failures
// (own binary, manifest, working directory) and when the real command
// cannot be started.
func RunShim(basename string, argv []string) error {
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("wrapper: locate own binary: %w", err)
	}
	self, err = filepath.EvalSymlinks(self)
	if err != nil {
		return fmt.Errorf("wrapper: resolve own binary path: %w", err)
	}
	shimDir := filepath.Dir(self)

	cfg, err := execevent.ReadWrapperConfig(filepath.Join(shimDir, execevent.WrapperConfigFilename))
	if err != nil {
		return fmt.Errorf("wrapper: read manifest: %w", err)
	}
	realPath, ok := cfg.Executables[basename]
	if !ok {
		return fmt.Errorf("wrapper: no manifest entry for %q", basename)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("wrapper: getwd: %w", err)
	}

	childEnv := env.RemovePathEntry(os.Environ(), "PATH", shimDir)
	childEnv = env.SetVar(childEnv, InShimEnvVar, "1")

	ev, err := preload.BuildEvent(uint32(os.Getpid()), realPath, argv, cwd, redactedEnvironMap(childEnv, cfg.EnvDenyPatterns))
	if err == nil {
		if addr, ok := env.GetVar(os.Environ(), CollectorAddrEnvVar); ok && addr != "" {
			_ = reporter.Report(addr, ev) // fire-and-forget: never fatal to the build
		}
	}

	return execReal(realPath, argv, childEnv)
}

// ShouldSkip reports whether environ carries InShimEnvVar set to "1", the
// marker RunShim puts into the environment of the real command it starts.
func ShouldSkip(environ []string) bool {
	v, ok := env.GetVar(environ, InShimEnvVar)
	return ok && v == "1"
}

func redactedEnvironMap(environ []string, denyPatterns []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, entry := range environ {
		k, v, ok := env.Split(entry)
		if !ok {
			continue
		}
		if envfilter.IsDenied(k, denyPatterns) {
			v = redactedValue
		}
		m[k] = v
	}
	return m
}

