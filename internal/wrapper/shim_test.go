package wrapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactedEnvironMapRedactsMatchingNames(t *testing.T) {
	environ := []string{
		"PATH=/usr/bin",
		"AWS_SECRET_ACCESS_KEY=shhh",
		"GITHUB_TOKEN=ghp_123",
		"HOME=/root",
	}
	m := redactedEnvironMap(environ, []string{"AWS_*", "*_TOKEN"})

	assert.Equal(t, "/usr/bin", m["PATH"])
	assert.Equal(t, "/root", m["HOME"])
	assert.Equal(t, redactedValue, m["AWS_SECRET_ACCESS_KEY"])
	assert.Equal(t, redactedValue, m["GITHUB_TOKEN"])
}

func TestRedactedEnvironMapLeavesInternalVarsAlone(t *testing.T) {
	environ := []string{"BEARSKIM_IN_SHIM=1"}
	m := redactedEnvironMap(environ, []string{"*"})
	assert.Equal(t, "1", m["BEARSKIM_IN_SHIM"])
}

func TestRedactedEnvironMapNoPatternsLeavesEverything(t *testing.T) {
	environ := []string{"SECRET=x"}
	m := redactedEnvironMap(environ, nil)
	assert.Equal(t, "x", m["SECRET"])
}
