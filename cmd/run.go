package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bearskim/bearskim/internal/buildrun"
	"github.com/bearskim/bearskim/internal/config"
	"github.com/bearskim/bearskim/internal/execevent"
	"github.com/bearskim/bearskim/internal/format"
	"github.com/bearskim/bearskim/internal/recognize"
	"github.com/bearskim/bearskim/internal/transform"
)

var (
	runConfigFlag  string
	runOutputFlag  string
	runAppendFlag  bool
	runVerboseFlag bool
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- <build command> [args...]",
	Short: "Observe a build and write a compilation database in one step",
	Long: `Observe a build and write a compilation database in one step.

Spawns the given build command with a wrapper directory of shadowed
compilers prepended to PATH, collects the Events the wrappers report
while the build runs, recognizes and filters the compiler invocations
among them, and writes the result as a compilation database.

Combines "bearskim intercept" and "bearskim cdb" into a single
invocation; use the split form when you want to capture once and
regenerate the database under different filter settings.

Exit codes:
  0     Build exited 0
  N     Build's own non-zero exit code (takes precedence)
  128+N Build killed by signal N`,
	RunE:         runRun,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // standard cobra pattern
	runCmd.Flags().StringVar(&runConfigFlag, "config", "", "YAML pipeline configuration file")
	runCmd.Flags().StringVar(&runOutputFlag, "output", "compile_commands.json", "Path to write the compilation database")
	runCmd.Flags().BoolVar(&runAppendFlag, "append", false, "Merge into an existing database at --output instead of overwriting it")
	runCmd.Flags().BoolVar(&runVerboseFlag, "verbose", false, "Enable diagnostic logging")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	dashIdx := cmd.ArgsLenAtDash()
	if dashIdx != 0 {
		return fmt.Errorf("usage: bearskim run [flags] -- <build command> [args...]")
	}
	buildArgv := args
	if len(buildArgv) == 0 {
		return fmt.Errorf("missing build command after '--'")
	}

	cfg, err := loadPipelineConfig(runConfigFlag)
	if err != nil {
		return err
	}

	log, err := newLogger(runVerboseFlag)
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
		Argv:            buildArgv,
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		Log:             log,
	})
	if err != nil {
		return fmt.Errorf("supervise build: %w", err)
	}

	entries, err := buildEntries(cfg, result.Events, log)
	if err != nil {
		return err
	}

	if err := format.WriteDatabase(runOutputFlag, entries, format.WriteOptions{Append: runAppendFlag, DedupKeys: cfg.Dedup.Keys, Log: log}); err != nil {
		return fmt.Errorf("write compilation database: %w", err)
	}
	fmt.Fprintf(os.Stderr, "bearskim: wrote %d entries to %s\n", len(entries), runOutputFlag)

	RunExitCode = result.ExitCode
	if result.ExitCode != 0 {
		return fmt.Errorf("build exited with code %d", result.ExitCode)
	}
	return nil
}

// loadPipelineConfig loads a config.Config from path, or returns an empty,
// already-valid default when path is empty.
func loadPipelineConfig(path string) (*config.Config, error) {
	if path == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// buildEntries runs every captured Event through the recognition and
// transformation pipeline and emits the surviving entries, deduplicated.
func buildEntries(cfg *config.Config, events []execevent.Event, log *zap.Logger) ([]format.Entry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := format.ValidateDedupKeys(cfg.Dedup); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getwd: %w", err)
	}
	pipeline := transform.NewPipeline(cfg, baseDir)

	var entries []format.Entry
	for _, ev := range events {
		cc, ok := recognize.Recognize(ev)
		if !ok {
			continue
		}
		out := pipeline.Run(cc)
		if out.Ignored != nil {
			log.Debug("ignored invocation", zap.String("reason", out.Ignored.Code), zap.String("detail", out.Ignored.Detail))
			continue
		}
		entries = append(entries, format.Emit(*out.Compiler, format.Options{CommandForm: cfg.Output.CommandForm})...)
	}

	return format.Dedup(entries, cfg.Dedup.Keys), nil
}
