// Package format builds compilation-database Entry records from recognized
// compiler commands, deduplicates them, and writes them out atomically.
// Grounded on the teacher's internal/runner/state.go (atomic write-temp-
// then-rename) and internal/verify/json.go (structured value vs. its JSON
// formatting kept as separate steps).
package format

import (
	"encoding/json"
	"fmt"

	"github.com/bearskim/bearskim/internal/config"
	"github.com/bearskim/bearskim/internal/recognize"
	"github.com/kballard/go-shellquote"
)

// Entry is one compilation-database record. Exactly one of Arguments or
// Command is set, never both and never neither.
type Entry struct {
	Directory string
	File      string
	Arguments []string
	Command   string
	Output    string
}

type jsonEntry struct {
	Directory string   `json:"directory"`
	File      string   `json:"file"`
	Arguments []string `json:"arguments,omitempty"`
	Command   string   `json:"command,omitempty"`
	Output    string   `json:"output,omitempty"`
}

// MarshalJSON enforces the Arguments/Command XOR invariant. A violation is
// a programmer error in how Entries were built, not a user-facing failure.
func (e Entry) MarshalJSON() ([]byte, error) {
	hasArgs := len(e.Arguments) > 0
	hasCmd := e.Command != ""
	if hasArgs == hasCmd {
		panic(fmt.Sprintf("format: entry for %s must set exactly one of Arguments or Command", e.File))
	}
	return json.Marshal(jsonEntry{
		Directory: e.Directory,
		File:      e.File,
		Arguments: e.Arguments,
		Command:   e.Command,
		Output:    e.Output,
	})
}

// UnmarshalJSON accepts either form on read, for append-mode database
// loading.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var j jsonEntry
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	e.Directory = j.Directory
	e.File = j.File
	e.Arguments = j.Arguments
	e.Command = j.Command
	e.Output = j.Output
	return nil
}

// Options controls how Emit builds Entries from a recognized command.
type Options struct {
	CommandForm bool
}

// Emit returns one Entry per Source group in cc, per spec.md §4.7.
func Emit(cc recognize.CompilerCommand, opts Options) []Entry {
	output, _ := cc.Output()
	argv := commandArgv(cc)

	var entries []Entry
	for _, g := range cc.Groups {
		if g.Role != recognize.RoleSource {
			continue
		}
		e := Entry{Directory: cc.WorkingDir, File: g.Args[0], Output: output}
		if opts.CommandForm {
			e.Command = shellquote.Join(argv...)
		} else {
			e.Arguments = argv
		}
		entries = append(entries, e)
	}
	return entries
}

// commandArgv reconstructs the full compiler invocation, compiler name
// first, in argument-group order.
func commandArgv(cc recognize.CompilerCommand) []string {
	argv := []string{cc.Compiler}
	for _, g := range cc.Groups {
		if g.Role == recognize.RoleCompiler {
			continue
		}
		argv = append(argv, g.Args...)
	}
	return argv
}

// fieldKeys are the dedup/field names config.DedupConfig.Keys may name.
const (
	fieldFile      = "file"
	fieldDirectory = "directory"
	fieldArguments = "arguments"
	fieldOutput    = "output"
)

var validFields = map[string]bool{
	fieldFile: true, fieldDirectory: true, fieldArguments: true, fieldOutput: true,
}

// ValidateDedupKeys rejects unknown field names in a config.DedupConfig.
func ValidateDedupKeys(cfg config.DedupConfig) error {
	for _, k := range cfg.Keys {
		if !validFields[k] {
			return fmt.Errorf("unknown dedup key %q", k)
		}
	}
	return nil
}
