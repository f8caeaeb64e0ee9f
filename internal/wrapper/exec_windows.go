//go:build windows

package wrapper

import (
	"os"
	"os/exec"
)

// execReal spawns realPath and forwards its exit code: Windows has no
// exec-replace syscall, so the shim process stays alive supervising the
// child instead of disappearing the way its Unix counterpart does.
func execReal(realPath string, argv []string, childEnv []string) error {
	cmd := exec.Command(realPath, argv[1:]...) //nolint:gosec // realPath comes from our own manifest
	cmd.Env = childEnv
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			os.Exit(exitErr.ExitCode())
		}
		return err
	}
	os.Exit(0)
	return nil
}
