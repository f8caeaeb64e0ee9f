// Package envfilter provides glob-based environment variable name matching,
// used to redact values (API keys, tokens) out of captured Events before
// they reach an event file or compilation database.
package envfilter

import (
	"path"
	"strings"
)

// internalPrefixes lists env var names that are always exempt from deny
// matching: bearskim's own control variables, which a wildcard deny
// pattern like "*" must never swallow.
var internalPrefixes = []string{
	"BEARSKIM_IN_SHIM",
	"INTERCEPT_COLLECTOR_ADDRESS",
	"INTERCEPT_VERBOSE",
}

// IsDenied returns true if name matches any of patterns (path.Match glob
// syntax). Env var names never contain '/', so path.Match's behavior
// degrades to plain glob matching here. An invalid pattern is skipped
// (fail-open) rather than treated as an error. An exempt name (see
// IsExempt) is never denied regardless of patterns.
func IsDenied(name string, patterns []string) bool {
	if IsExempt(name) {
		return false
	}
	for _, pattern := range patterns {
		matched, err := path.Match(pattern, name)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}

// IsExempt returns true if name is one of bearskim's own control
// variables, which must never be redacted regardless of deny patterns.
func IsExempt(name string) bool {
	for _, prefix := range internalPrefixes {
		if strings.EqualFold(name, prefix) {
			return true
		}
	}
	return false
}
