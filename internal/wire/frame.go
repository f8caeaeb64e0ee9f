// Package wire implements the TLV frame format shared by the collector and
// the reporter: a 4-byte big-endian length prefix followed by a UTF-8 JSON
// payload, one frame per TCP connection.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bearskim/bearskim/internal/execevent"
)

// MaxFrameSize bounds a single TLV payload, guarding the collector against
// a misbehaving reporter sending an unbounded length prefix.
const MaxFrameSize = 16 * 1024 * 1024

// WriteFrame writes one TLV frame to w.
func WriteFrame(w io.Writer, payload []byte) error {
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("wire: write frame header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("wire: write frame payload: %w", err)
	}
	return nil
}

// WriteEvent marshals ev and writes it as a single TLV frame.
func WriteEvent(w io.Writer, ev execevent.Event) error {
	payload, err := ev.Marshal()
	if err != nil {
		return err
	}
	return WriteFrame(w, payload)
}

// ReadEvent reads one TLV frame from r and decodes it as an Event.
func ReadEvent(r io.Reader) (execevent.Event, error) {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return execevent.Event{}, fmt.Errorf("wire: read frame header: %w", err)
	}
	n := binary.BigEndian.Uint32(header[:])
	if n > MaxFrameSize {
		return execevent.Event{}, fmt.Errorf("wire: frame size %d exceeds limit", n)
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return execevent.Event{}, fmt.Errorf("wire: read frame payload: %w", err)
	}
	return execevent.UnmarshalEvent(payload)
}
