// Package execevent defines the Execution/Event wire types shared by the
// interception layer (wrapper shim, preload contract) and the collector.
package execevent

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Execution describes a single observed process launch. Immutable after
// construction: callers build one via NewExecution and never mutate the
// returned value's slice/map contents in place.
type Execution struct {
	Executable  string            `json:"executable"`
	Arguments   []string          `json:"arguments"`
	WorkingDir  string            `json:"working_dir"`
	Environment map[string]string `json:"environment"`
}

// NewExecution validates and constructs an Execution. Arguments must be
// non-empty: argv[0] is always present, even for a zero-argument exec.
func NewExecution(executable string, arguments []string, workingDir string, environment map[string]string) (Execution, error) {
	if executable == "" {
		return Execution{}, errors.New("execevent: executable must be non-empty")
	}
	if len(arguments) == 0 {
		return Execution{}, errors.New("execevent: arguments must contain at least argv[0]")
	}
	if workingDir == "" {
		return Execution{}, errors.New("execevent: working_dir must be non-empty")
	}
	return Execution{
		Executable:  executable,
		Arguments:   arguments,
		WorkingDir:  workingDir,
		Environment: environment,
	}, nil
}

// Event is an Execution tagged with the PID that performed it. Execution is
// a named field, not embedded, so the wire/event-file JSON shape is a
// nested object ({"pid":…,"execution":{...}}) rather than a flattened one.
type Event struct {
	PID       uint32    `json:"pid"`
	Execution Execution `json:"execution"`
}

// Validate reports whether the event is well-formed beyond what JSON
// unmarshaling alone enforces.
func (e Event) Validate() error {
	if e.Execution.Executable == "" {
		return errors.New("execevent: event executable must be non-empty")
	}
	if len(e.Execution.Arguments) == 0 {
		return errors.New("execevent: event arguments must be non-empty")
	}
	return nil
}

// Marshal encodes the event as a single JSON object, no trailing newline.
func (e Event) Marshal() ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("execevent: marshal event: %w", err)
	}
	return b, nil
}

// UnmarshalEvent decodes a single JSON object into an Event.
func UnmarshalEvent(b []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(b, &e); err != nil {
		return Event{}, fmt.Errorf("execevent: unmarshal event: %w", err)
	}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}
