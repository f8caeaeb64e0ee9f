package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bearskim/bearskim/internal/execevent"
)

func TestRecognizeCompilerCommand(t *testing.T) {
	ex, err := execevent.NewExecution("/usr/bin/gcc", []string{"gcc", "-c", "-o", "a.o", "a.c"}, "/project", nil)
	require.NoError(t, err)
	ev := execevent.Event{PID: 1, Execution: ex}

	cc, ok := Recognize(ev)
	require.True(t, ok)
	assert.Equal(t, []string{"a.c"}, cc.Sources())
	out, ok := cc.Output()
	assert.True(t, ok)
	assert.Equal(t, "a.o", out)

	pass, ok := cc.EarliestStop()
	assert.True(t, ok)
	assert.Equal(t, PassCompile, pass)
}

func TestRecognizeRejectsNonCompiler(t *testing.T) {
	ex, err := execevent.NewExecution("/usr/bin/make", []string{"make", "all"}, "/project", nil)
	require.NoError(t, err)
	ev := execevent.Event{PID: 1, Execution: ex}

	_, ok := Recognize(ev)
	assert.False(t, ok)
}
