package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bearskim/bearskim/internal/buildrun"
	"github.com/bearskim/bearskim/internal/execevent"
)

var (
	interceptEventsFlag  string
	interceptConfigFlag  string
	interceptVerboseFlag bool
)

var interceptCmd = &cobra.Command{
	Use:   "intercept [flags] -- <build command> [args...]",
	Short: "Observe a build and record its compiler invocations to an event file",
	Long: `Observe a build and record its compiler invocations to an event file.

Spawns the given build command under a wrapper directory of shadowed
compilers, collects the Events the wrappers report, and writes them as a
newline-delimited JSON event file. Pair with "bearskim cdb" to turn the
captured events into a compilation database, or use "bearskim run" to do
both in one step.`,
	RunE:         runIntercept,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // standard cobra pattern
	interceptCmd.Flags().StringVar(&interceptEventsFlag, "events", "bearskim-events.jsonl", "Path to write the captured event file")
	interceptCmd.Flags().StringVar(&interceptConfigFlag, "config", "", "YAML pipeline configuration file (only env_filter applies during capture)")
	interceptCmd.Flags().BoolVar(&interceptVerboseFlag, "verbose", false, "Enable diagnostic logging")
	rootCmd.AddCommand(interceptCmd)
}

func runIntercept(cmd *cobra.Command, args []string) error {
	if cmd.ArgsLenAtDash() != 0 {
		return fmt.Errorf("usage: bearskim intercept [flags] -- <build command> [args...]")
	}
	if len(args) == 0 {
		return fmt.Errorf("missing build command after '--'")
	}

	cfg, err := loadPipelineConfig(interceptConfigFlag)
	if err != nil {
		return err
	}

	log, err := newLogger(interceptVerboseFlag)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // best-effort flush on exit

	wrapperDir, err := os.MkdirTemp("", "bearskim-wrapper-")
	if err != nil {
		return fmt.Errorf("create wrapper directory: %w", err)
	}
	defer os.RemoveAll(wrapperDir) //nolint:errcheck // best-effort cleanup

	result, err := buildrun.Run(buildrun.Options{
		Compilers:       resolveCompilers(defaultCompilerNames),
		WrapperDir:      wrapperDir,
		EnvDenyPatterns: cfg.EnvFilter.Deny,
		Argv:            args,
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		Log:             log,
	})
	if err != nil {
		return fmt.Errorf("supervise build: %w", err)
	}

	ef, err := execevent.CreateEventFile(interceptEventsFlag)
	if err != nil {
		return fmt.Errorf("create event file: %w", err)
	}
	defer ef.Close() //nolint:errcheck // best-effort; explicit close below reports the real error

	for _, ev := range result.Events {
		if err := ef.Append(ev); err != nil {
			return fmt.Errorf("write event: %w", err)
		}
	}
	if err := ef.Close(); err != nil {
		return fmt.Errorf("close event file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "bearskim: captured %d events to %s\n", len(result.Events), interceptEventsFlag)

	RunExitCode = result.ExitCode
	if result.ExitCode != 0 {
		return fmt.Errorf("build exited with code %d", result.ExitCode)
	}
	return nil
}
