package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bearskim/bearskim/internal/execevent"
)

// makeInterceptRoot creates a fresh root + intercept command tree for
// testing, resetting the package-level flag vars.
func makeInterceptRoot() *cobra.Command {
	interceptEventsFlag = "bearskim-events.jsonl"
	interceptConfigFlag = ""
	interceptVerboseFlag = false
	RunExitCode = NoExitCode

	root := &cobra.Command{Use: "bearskim", SilenceUsage: true, SilenceErrors: true}
	i := &cobra.Command{Use: "intercept", RunE: runIntercept}
	i.Flags().StringVar(&interceptEventsFlag, "events", "bearskim-events.jsonl", "")
	i.Flags().StringVar(&interceptConfigFlag, "config", "", "")
	i.Flags().BoolVar(&interceptVerboseFlag, "verbose", false, "")
	root.AddCommand(i)
	return root
}

func TestIntercept_WritesEmptyEventFileForNonCompilerBuild(t *testing.T) {
	eventsPath := filepath.Join(t.TempDir(), "events.jsonl")
	root := makeInterceptRoot()
	root.SetArgs([]string{"intercept", "--events", eventsPath, "--", "sh", "-c", "true"})

	require.NoError(t, root.Execute())
	assert.Equal(t, 0, RunExitCode)

	events, err := execevent.ReadEventFile(eventsPath)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestIntercept_PropagatesBuildExitCode(t *testing.T) {
	eventsPath := filepath.Join(t.TempDir(), "events.jsonl")
	root := makeInterceptRoot()
	root.SetArgs([]string{"intercept", "--events", eventsPath, "--", "sh", "-c", "exit 3"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exited with code 3")
	assert.Equal(t, 3, RunExitCode)

	_, statErr := os.Stat(eventsPath)
	assert.NoError(t, statErr, "event file should still be written even though the build failed")
}
