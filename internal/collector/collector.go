// Package collector implements the loopback TCP event bus: a listener
// goroutine accepts one connection per reported Execution, a consumer
// goroutine drains the resulting events into caller-supplied handling.
// Binds 127.0.0.1:0 only; never accepts remote connections.
package collector

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bearskim/bearskim/internal/execevent"
	"github.com/bearskim/bearskim/internal/wire"
)

// Collector accepts Execution reports over loopback TCP and fans them out
// on a single ordered channel.
type Collector struct {
	listener net.Listener
	events   chan execevent.Event
	stopping atomic.Bool
	wg       sync.WaitGroup
	log      *zap.Logger
}

// New binds a loopback listener on an OS-chosen port and starts the accept
// loop. Call Events() to consume, Stop() to shut down.
func New(log *zap.Logger) (*Collector, error) {
	if log == nil {
		log = zap.NewNop()
	}
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("collector: bind loopback listener: %w", err)
	}
	c := &Collector{
		listener: ln,
		events:   make(chan execevent.Event, 1024),
		log:      log,
	}
	c.wg.Add(1)
	go c.acceptLoop()
	return c, nil
}

// Addr returns the host:port the collector is listening on, suitable for
// injection into a build's environment as INTERCEPT_COLLECTOR_ADDRESS.
func (c *Collector) Addr() string {
	return c.listener.Addr().String()
}

// Events returns the channel events are published to. Closed once the
// accept loop has fully shut down and drained.
func (c *Collector) Events() <-chan execevent.Event {
	return c.events
}

// acceptLoop is the single listener goroutine: one connection per reported
// Execution, each handled inline (reports are one frame and done, so no
// extra goroutine-per-connection fan-out is needed beyond this loop).
func (c *Collector) acceptLoop() {
	defer c.wg.Done()
	defer close(c.events)

	for {
		conn, err := c.listener.Accept()
		if c.stopping.Load() {
			if conn != nil {
				conn.Close() //nolint:errcheck // shutting down, self-connect or real client
			}
			return
		}
		if err != nil {
			c.log.Warn("collector: accept error", zap.Error(err))
			continue
		}
		c.handleConn(conn)
	}
}

func (c *Collector) handleConn(conn net.Conn) {
	connID := uuid.NewString()
	defer conn.Close() //nolint:errcheck // one frame per connection, then close

	ev, err := wire.ReadEvent(conn)
	if err != nil {
		c.log.Warn("collector: dropping malformed event", zap.String("conn", connID), zap.Error(err))
		return
	}
	c.events <- ev
}

// Stop shuts the collector down: it flips the stopping flag, then dials
// itself to unblock the accept loop's blocking Accept() call, mirroring
// the reference implementation's self-connect shutdown trick. Safe to call
// more than once; every call blocks until the accept loop has exited and
// the events channel is closed.
func (c *Collector) Stop() {
	if !c.stopping.CompareAndSwap(false, true) {
		c.wg.Wait()
		return
	}
	if conn, err := net.Dial("tcp", c.listener.Addr().String()); err == nil {
		conn.Close() //nolint:errcheck // unblock trick only, no payload sent
	}
	c.wg.Wait()
	c.listener.Close() //nolint:errcheck // accept loop has already exited
}
