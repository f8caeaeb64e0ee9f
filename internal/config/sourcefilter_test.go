package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceFilterValidateDetectsDuplicateItem(t *testing.T) {
	f := SourceFilter{Paths: []DirectoryFilter{
		{Path: "/project/tests", Ignore: IgnoreAlways},
		{Path: "/project/tests", Ignore: IgnoreAlways},
	}}
	assert.Error(t, f.Validate())
}

func TestSourceFilterValidateDetectsContradiction(t *testing.T) {
	f := SourceFilter{Paths: []DirectoryFilter{
		{Path: "/project/tests", Ignore: IgnoreAlways},
		{Path: "/project/tests", Ignore: IgnoreNever},
	}}
	assert.Error(t, f.Validate())
}

func TestSourceFilterValidateAcceptsDistinctPaths(t *testing.T) {
	f := SourceFilter{Paths: []DirectoryFilter{
		{Path: "/project/src", Ignore: IgnoreNever},
		{Path: "/project/tests", Ignore: IgnoreAlways},
	}}
	assert.NoError(t, f.Validate())
}
