// Package main is the bearskim entry point. The same binary serves two
// roles, dispatched on its own argv[0] basename the way a BusyBox-style
// multi-call binary does: invoked as "bearskim" it runs the management
// CLI (cmd.Execute); invoked under any other basename it is a wrapper
// shim standing in for a shadowed compiler (internal/wrapper.RunShim).
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bearskim/bearskim/cmd"
	"github.com/bearskim/bearskim/internal/wrapper"
)

const selfName = "bearskim"

func main() {
	basename := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	if basename == selfName {
		if err := cmd.Execute(); err != nil {
			fmt.Fprintf(os.Stderr, "bearskim: %v\n", err)
			if cmd.RunExitCode != cmd.NoExitCode {
				os.Exit(cmd.RunExitCode)
			}
			os.Exit(1)
		}
		return
	}

	if wrapper.ShouldSkip(os.Environ()) {
		fmt.Fprintf(os.Stderr, "bearskim: refusing recursive shim invocation for %q\n", basename)
		os.Exit(1)
	}

	if err := wrapper.RunShim(basename, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "bearskim: %v\n", err)
		os.Exit(1)
	}
}
