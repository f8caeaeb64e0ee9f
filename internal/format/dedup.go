package format

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Dedup drops Entries whose configured key fields collide with an earlier
// Entry's, first-seen-wins. An empty keys list dedups on every field.
func Dedup(entries []Entry, keys []string) []Entry {
	if len(keys) == 0 {
		keys = []string{fieldFile, fieldDirectory, fieldArguments, fieldOutput}
	}
	seen := make(map[uint64]bool, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		h := dedupHash(e, keys)
		if seen[h] {
			continue
		}
		seen[h] = true
		out = append(out, e)
	}
	return out
}

func dedupHash(e Entry, keys []string) uint64 {
	h := fnv.New64a()
	for _, k := range keys {
		fmt.Fprintf(h, "%s\x00", fieldValue(e, k))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

func fieldValue(e Entry, key string) string {
	switch key {
	case fieldFile:
		return e.File
	case fieldDirectory:
		return e.Directory
	case fieldArguments:
		if e.Command != "" {
			return e.Command
		}
		return strings.Join(e.Arguments, "\x1f")
	case fieldOutput:
		return e.Output
	}
	return ""
}
