// Package reporter implements the one-shot TCP client the wrapper shim (and
// were it built, the preload shim) uses to send a single Execution report
// to the collector. Fire-and-forget: a reporting failure is never fatal to
// the wrapped build, so callers are expected to log and discard the error.
package reporter

import (
	"fmt"
	"net"
	"time"

	"github.com/bearskim/bearskim/internal/execevent"
	"github.com/bearskim/bearskim/internal/wire"
)

// dialTimeout bounds how long Report waits to connect before giving up,
// so a dead or unreachable collector never stalls the wrapped command.
const dialTimeout = 2 * time.Second

// Report dials addr, writes a single TLV-framed Event, and closes the
// connection. No retry, no pooling, per the spec's "no pooling, no retry"
// design.
func Report(addr string, ev execevent.Event) error {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return fmt.Errorf("reporter: dial collector: %w", err)
	}
	defer conn.Close() //nolint:errcheck // one-shot connection, nothing to flush after write

	return wire.WriteEvent(conn, ev)
}
