package format

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// WriteOptions controls WriteDatabase's behavior.
type WriteOptions struct {
	Append bool
	// DedupKeys re-dedups the merged set (existing entries ahead of the new
	// ones) before writing, using the same key semantics as Dedup. Only
	// consulted when Append is set; a fresh database's entries already come
	// pre-deduped from the caller's pipeline run.
	DedupKeys []string
	Log       *zap.Logger
}

// WriteDatabase streams entries to path as a JSON array, writing to a
// temp file first and renaming over path atomically. When opts.Append is
// set and path already exists, its entries are read first (streamed via
// json.Decoder, not a full unmarshal-then-remarshal), placed ahead of
// entries, and the combined set is deduplicated again before the write —
// matching entries already present in the database must collide with
// entries recognized again, not be repeated. Grounded on the teacher's
// internal/runner/state.go WriteState pattern, generalized from one JSON
// object to one streamed JSON array.
func WriteDatabase(path string, entries []Entry, opts WriteOptions) error {
	all := entries
	if opts.Append {
		existing, err := readExisting(path, opts.Log)
		if err != nil {
			return fmt.Errorf("format: read existing database: %w", err)
		}
		if existing != nil {
			all = Dedup(append(existing, entries...), opts.DedupKeys)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("format: create output directory: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("format: open temp database file: %w", err)
	}

	if err := streamEncode(f, all); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("format: write temp database file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("format: close temp database file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("format: rename database file: %w", err)
	}
	return nil
}

func streamEncode(f *os.File, entries []Entry) error {
	if _, err := f.WriteString("[\n"); err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	for i, e := range entries {
		data, err := json.MarshalIndent(e, "  ", "  ")
		if err != nil {
			return err
		}
		if _, err := f.WriteString("  "); err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			return err
		}
		if i < len(entries)-1 {
			if _, err := f.WriteString(","); err != nil {
				return err
			}
		}
		if _, err := f.WriteString("\n"); err != nil {
			return err
		}
	}
	_, err := f.WriteString("]\n")
	return err
}

// readExisting streams entries out of an existing compilation database one
// array element at a time via json.Decoder.Token, rather than unmarshaling
// the whole file at once. Returns nil, nil if path doesn't exist (append
// requested against a fresh database is not an error, just logged).
func readExisting(path string, log *zap.Logger) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			if log != nil {
				log.Warn("append requested but database does not exist yet", zap.String("path", path))
			}
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	if _, err := dec.Token(); err != nil { // consume opening '['
		return nil, fmt.Errorf("malformed database (expected array): %w", err)
	}

	var entries []Entry
	for dec.More() {
		var e Entry
		if err := dec.Decode(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, err
	}
	return entries, nil
}
