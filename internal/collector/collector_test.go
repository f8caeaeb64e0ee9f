package collector

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bearskim/bearskim/internal/execevent"
	"github.com/bearskim/bearskim/internal/reporter"
)

func dialRaw(addr string) (net.Conn, error) {
	return net.Dial("tcp", addr)
}

func TestCollectorReceivesReportedEvent(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	defer c.Stop()

	ex, err := execevent.NewExecution("/usr/bin/gcc", []string{"gcc", "-c", "a.c"}, "/tmp", nil)
	require.NoError(t, err)
	ev := execevent.Event{PID: 99, Execution: ex}

	require.NoError(t, reporter.Report(c.Addr(), ev))

	select {
	case got := <-c.Events():
		assert.Equal(t, ev, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestCollectorStopClosesEventsChannel(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	c.Stop()

	_, ok := <-c.Events()
	assert.False(t, ok, "events channel should be closed after Stop")
}

func TestCollectorStopIsIdempotent(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	c.Stop()
	c.Stop()
}

func TestCollectorDropsMalformedFrame(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)
	defer c.Stop()

	conn, err := dialRaw(c.Addr())
	require.NoError(t, err)
	// length prefix claims 4 bytes but payload is not valid JSON.
	conn.Write([]byte{0, 0, 0, 4, 'x', 'x', 'x', 'x'}) //nolint:errcheck
	conn.Close()                                       //nolint:errcheck

	ex, _ := execevent.NewExecution("/usr/bin/gcc", []string{"gcc"}, "/tmp", nil)
	ev := execevent.Event{PID: 1, Execution: ex}
	require.NoError(t, reporter.Report(c.Addr(), ev))

	select {
	case got := <-c.Events():
		assert.Equal(t, ev, got)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event after malformed frame")
	}
}
