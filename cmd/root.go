// Package cmd implements the bearskim Cobra command tree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version, Commit, and Date are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "bearskim",
	Short: "Generate a compilation database by observing a build",
	Long: `bearskim - compilation database generator

Observes a build and produces a compile_commands.json by recognizing
compiler invocations made during it.

Modes:
  Management mode: bearskim <command> [flags]
  Wrapper mode:     the same binary, hard-linked or copied under a
                     compiler's basename (e.g. gcc, clang++) inside a
                     temporary directory prepended to the build's PATH.
                     Invoked that way it reports the invocation instead
                     of running as the CLI.

Examples:
  # Observe a build and write a compilation database in one step
  bearskim run --config bearskim.yaml -- make -j8

  # Split into separate capture and generate phases
  bearskim intercept --events build.jsonl -- make -j8
  bearskim cdb --events build.jsonl --output compile_commands.json`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// RunExitCode communicates the desired process exit code to main once a
// build has actually been supervised. It starts at NoExitCode; runRun and
// runIntercept set it to the build's own exit code (0 on success, 128+N on
// a signal kill) right before returning their wrapping error. An error
// returned with RunExitCode still at NoExitCode is a driver-level failure
// (bad flags, unreadable config) that never reached a build, and always
// maps to exit 1.
var RunExitCode = NoExitCode

// NoExitCode marks RunExitCode as not yet set by a build invocation.
const NoExitCode = -1

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits
	rootCmd.SetVersionTemplate(fmt.Sprintf("bearskim version {{.Version}} (commit: %s, built: %s)\n", Commit, Date))
}
