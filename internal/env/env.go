// Package env implements idempotent environment variable manipulation for
// process interception: prepending a directory to PATH (or a library to
// LD_PRELOAD) without duplicating a prior occurrence, and removing one's
// own entry again on the way out. Generalizes the single-purpose
// PATH-prepend the teacher CLI did for its own scenario variables into a
// reusable primitive shared by the wrapper and the preload contract.
package env

import (
	"runtime"
	"strings"
)

// PathSeparator returns the OS list separator used by PATH-like variables.
func PathSeparator() string {
	if runtime.GOOS == "windows" {
		return ";"
	}
	return ":"
}

// PrependUnique returns value with prefix prepended, after first removing
// any existing occurrence of prefix from value's separated entries. This
// is what keeps repeated invocations (a build re-execing itself, a wrapper
// shim re-exec'ing through another wrapper) from growing PATH without
// bound.
func PrependUnique(value, prefix, sep string) string {
	if prefix == "" {
		return value
	}
	entries := splitNonEmpty(value, sep)
	filtered := make([]string, 0, len(entries)+1)
	filtered = append(filtered, prefix)
	for _, e := range entries {
		if e != prefix {
			filtered = append(filtered, e)
		}
	}
	return strings.Join(filtered, sep)
}

// RemoveEntry returns value with every occurrence of entry removed from
// its separated list.
func RemoveEntry(value, entry, sep string) string {
	if entry == "" {
		return value
	}
	entries := splitNonEmpty(value, sep)
	filtered := make([]string, 0, len(entries))
	for _, e := range entries {
		if e != entry {
			filtered = append(filtered, e)
		}
	}
	return strings.Join(filtered, sep)
}

func splitNonEmpty(value, sep string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Split parses a "KEY=VALUE" environment entry. ok is false if there is no
// '=' separator.
func Split(entry string) (key, value string, ok bool) {
	idx := strings.IndexByte(entry, '=')
	if idx < 0 {
		return "", "", false
	}
	return entry[:idx], entry[idx+1:], true
}

// SetVar returns a copy of environ with key set to value, replacing any
// existing entry (case-sensitive) or appending one if absent.
func SetVar(environ []string, key, value string) []string {
	out := make([]string, 0, len(environ)+1)
	found := false
	for _, entry := range environ {
		k, _, ok := Split(entry)
		if ok && k == key {
			out = append(out, key+"="+value)
			found = true
			continue
		}
		out = append(out, entry)
	}
	if !found {
		out = append(out, key+"="+value)
	}
	return out
}

// GetVar returns the value of key within environ, and whether it was present.
func GetVar(environ []string, key string) (string, bool) {
	for _, entry := range environ {
		k, v, ok := Split(entry)
		if ok && k == key {
			return v, true
		}
	}
	return "", false
}

// PrependPathVar returns a copy of environ with dir prepended (idempotently)
// to the PATH-like variable named key.
func PrependPathVar(environ []string, key, dir string) []string {
	cur, _ := GetVar(environ, key)
	return SetVar(environ, key, PrependUnique(cur, dir, PathSeparator()))
}

// RemovePathEntry returns a copy of environ with dir removed from the
// PATH-like variable named key.
func RemovePathEntry(environ []string, key, dir string) []string {
	cur, ok := GetVar(environ, key)
	if !ok {
		return environ
	}
	return SetVar(environ, key, RemoveEntry(cur, dir, PathSeparator()))
}
