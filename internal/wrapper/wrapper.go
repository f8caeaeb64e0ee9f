// Package wrapper implements PATH-based wrapper-directory interception:
// a directory of shim executables (each a hard link, or copy as a
// fallback, of this same binary) shadows the real compilers on PATH for
// the duration of a build. Generalizes the teacher's
// internal/platform.ShimGenerator/InterceptFactory from "generate a
// replay-test stub script" to "generate a program that reports a
// compilation event and re-execs the real compiler".
package wrapper

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bearskim/bearskim/internal/env"
	"github.com/bearskim/bearskim/internal/execevent"
)

// Session owns a wrapper directory for the lifetime of an observed build.
type Session struct {
	ID  string
	Dir string
	cfg execevent.WrapperConfig
}

// Build creates dir (if needed) and populates it with one shim per
// compilers entry (basename -> real absolute path). First writer wins on a
// duplicate basename, per the spec's uniqueness rule. envDenyPatterns are
// glob patterns (path.Match syntax) matched against environment variable
// names; a shim reports a redacted value for any name that matches.
func Build(dir string, compilers map[string]string, envDenyPatterns []string) (*Session, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("wrapper: create wrapper dir: %w", err)
	}
	self, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("wrapper: locate own binary: %w", err)
	}
	self, err = filepath.EvalSymlinks(self)
	if err != nil {
		return nil, fmt.Errorf("wrapper: resolve own binary path: %w", err)
	}

	s := &Session{
		ID:  uuid.NewString(),
		Dir: dir,
		cfg: execevent.WrapperConfig{Executables: map[string]string{}, EnvDenyPatterns: envDenyPatterns},
	}

	for basename, realPath := range compilers {
		if _, exists := s.cfg.Executables[basename]; exists {
			continue // first writer wins
		}
		shimPath := filepath.Join(dir, basename)
		if err := installShim(self, shimPath); err != nil {
			return nil, fmt.Errorf("wrapper: install shim for %s: %w", basename, err)
		}
		s.cfg.Executables[basename] = realPath
	}

	cfgPath := filepath.Join(dir, execevent.WrapperConfigFilename)
	if err := execevent.WriteWrapperConfig(cfgPath, s.cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// installShim links (or, failing that, copies) self into shimPath.
func installShim(self, shimPath string) error {
	if err := os.Link(self, shimPath); err == nil {
		return nil
	}
	// Cross-device or unsupported: fall back to a plain copy.
	src, err := os.Open(self) //nolint:gosec // self is our own resolved executable path
	if err != nil {
		return fmt.Errorf("open source binary: %w", err)
	}
	defer src.Close() //nolint:errcheck // read-only file close

	dst, err := os.OpenFile(shimPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755) //nolint:gosec // must be executable
	if err != nil {
		return fmt.Errorf("create shim copy: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close() //nolint:errcheck // best effort on copy failure
		return fmt.Errorf("copy shim binary: %w", err)
	}
	return dst.Close()
}

// ChildEnv returns a copy of base with Dir idempotently prepended to PATH.
func (s *Session) ChildEnv(base []string) []string {
	return env.PrependPathVar(base, "PATH", s.Dir)
}

// Close removes the wrapper directory and everything in it.
func (s *Session) Close() error {
	if err := os.RemoveAll(s.Dir); err != nil {
		return fmt.Errorf("wrapper: remove wrapper dir: %w", err)
	}
	return nil
}
