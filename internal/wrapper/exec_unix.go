//go:build !windows

package wrapper

import "syscall"

// execReal replaces the current process image with realPath, the
// exec-replace semantics the wrapper contract assumes on Unix: the shim
// process itself disappears, so the real compiler inherits its PID and
// stdio without an extra layer of process supervision.
func execReal(realPath string, argv []string, childEnv []string) error {
	return syscall.Exec(realPath, argv, childEnv) //nolint:gosec // realPath comes from our own manifest
}
