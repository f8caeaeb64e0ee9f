package execevent

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// EventFile reads and writes the newline-delimited JSON event log: one
// Event object per line, distinct from the final compilation-database
// file (a JSON array written by internal/format).
type EventFile struct {
	w *bufio.Writer
	f *os.File
}

// CreateEventFile truncates (or creates) path for append-as-you-go writing.
func CreateEventFile(path string) (*EventFile, error) {
	f, err := os.Create(path) //nolint:gosec // path supplied by driver, not untrusted input
	if err != nil {
		return nil, fmt.Errorf("execevent: create event file: %w", err)
	}
	return &EventFile{w: bufio.NewWriter(f), f: f}, nil
}

// Append writes one Event as a single JSON line.
func (ef *EventFile) Append(e Event) error {
	b, err := e.Marshal()
	if err != nil {
		return err
	}
	if _, err := ef.w.Write(b); err != nil {
		return fmt.Errorf("execevent: write event: %w", err)
	}
	if err := ef.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("execevent: write event: %w", err)
	}
	return nil
}

// Close flushes buffered writes and closes the underlying file.
func (ef *EventFile) Close() error {
	if err := ef.w.Flush(); err != nil {
		ef.f.Close() //nolint:errcheck // best effort on flush failure
		return fmt.Errorf("execevent: flush event file: %w", err)
	}
	if err := ef.f.Close(); err != nil {
		return fmt.Errorf("execevent: close event file: %w", err)
	}
	return nil
}

// ReadEventFile parses a newline-delimited JSON event log in full, skipping
// blank lines. Malformed lines abort with their line number.
func ReadEventFile(path string) ([]Event, error) {
	f, err := os.Open(path) //nolint:gosec // path supplied by driver, not untrusted input
	if err != nil {
		return nil, fmt.Errorf("execevent: open event file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file close

	var events []Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			return nil, fmt.Errorf("execevent: invalid JSON at line %d: %w", lineNum, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("execevent: reading event file: %w", err)
	}
	return events, nil
}

// StreamEventFile parses a newline-delimited JSON event log lazily, calling
// fn for each event in order, without holding the whole file in memory.
// The cdb command reads event files with ReadEventFile instead.
func StreamEventFile(r io.Reader, fn func(Event) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			return fmt.Errorf("execevent: invalid JSON at line %d: %w", lineNum, err)
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
	return scanner.Err()
}
