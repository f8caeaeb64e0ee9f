package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bearskim/bearskim/internal/execevent"
	"github.com/bearskim/bearskim/internal/format"
)

var (
	cdbEventsFlag  string
	cdbConfigFlag  string
	cdbOutputFlag  string
	cdbAppendFlag  bool
	cdbVerboseFlag bool
)

var cdbCmd = &cobra.Command{
	Use:   "cdb [flags]",
	Short: "Turn a captured event file into a compilation database",
	Long: `Turn a captured event file into a compilation database.

Reads the newline-delimited JSON event file produced by
"bearskim intercept", runs the recognition and filter/transform pipeline
over it, and writes the resulting compile_commands.json. Separating this
from capture lets you regenerate the database under different filter
settings without re-running the build.`,
	RunE:         runCdb,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // standard cobra pattern
	cdbCmd.Flags().StringVar(&cdbEventsFlag, "events", "bearskim-events.jsonl", "Path to the captured event file")
	cdbCmd.Flags().StringVar(&cdbConfigFlag, "config", "", "YAML pipeline configuration file")
	cdbCmd.Flags().StringVar(&cdbOutputFlag, "output", "compile_commands.json", "Path to write the compilation database")
	cdbCmd.Flags().BoolVar(&cdbAppendFlag, "append", false, "Merge into an existing database at --output instead of overwriting it")
	cdbCmd.Flags().BoolVar(&cdbVerboseFlag, "verbose", false, "Enable diagnostic logging")
	rootCmd.AddCommand(cdbCmd)
}

func runCdb(_ *cobra.Command, _ []string) error {
	cfg, err := loadPipelineConfig(cdbConfigFlag)
	if err != nil {
		return err
	}

	log, err := newLogger(cdbVerboseFlag)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // best-effort flush on exit

	events, err := execevent.ReadEventFile(cdbEventsFlag)
	if err != nil {
		return fmt.Errorf("read event file: %w", err)
	}

	entries, err := buildEntries(cfg, events, log)
	if err != nil {
		return err
	}

	if err := format.WriteDatabase(cdbOutputFlag, entries, format.WriteOptions{Append: cdbAppendFlag, DedupKeys: cfg.Dedup.Keys, Log: log}); err != nil {
		return fmt.Errorf("write compilation database: %w", err)
	}

	return nil
}
