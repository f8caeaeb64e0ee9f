package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCompilerRulesAllowsAlwaysThenConditionalThenNever(t *testing.T) {
	rules := []CompilerRule{
		{Path: "/usr/bin/gcc-old", Ignore: IgnoreAlways},
	}
	assert.NoError(t, ValidateCompilerRules(rules))

	rules = []CompilerRule{
		{Path: "/usr/bin/gcc", Ignore: IgnoreConditional, MatchArguments: []string{"-E"}},
		{Path: "/usr/bin/gcc", Ignore: IgnoreNever},
	}
	assert.NoError(t, ValidateCompilerRules(rules))
}

func TestValidateCompilerRulesRejectsConditionalAfterNever(t *testing.T) {
	rules := []CompilerRule{
		{Path: "/usr/bin/gcc", Ignore: IgnoreNever},
		{Path: "/usr/bin/gcc", Ignore: IgnoreConditional, MatchArguments: []string{"-E"}},
	}
	assert.Error(t, ValidateCompilerRules(rules))
}

func TestValidateCompilerRulesRejectsDuplicateAlways(t *testing.T) {
	rules := []CompilerRule{
		{Path: "/usr/bin/gcc", Ignore: IgnoreAlways},
		{Path: "/usr/bin/gcc", Ignore: IgnoreAlways},
	}
	assert.Error(t, ValidateCompilerRules(rules))
}

func TestValidateCompilerRulesRejectsAlwaysWithArguments(t *testing.T) {
	rules := []CompilerRule{
		{Path: "/usr/bin/gcc", Ignore: IgnoreAlways, AddArguments: []string{"-w"}},
	}
	assert.Error(t, ValidateCompilerRules(rules))
}

func TestValidateCompilerRulesRejectsConditionalWithoutMatch(t *testing.T) {
	rules := []CompilerRule{
		{Path: "/usr/bin/gcc", Ignore: IgnoreConditional},
	}
	assert.Error(t, ValidateCompilerRules(rules))
}

func TestValidateCompilerRulesRejectsNeverWithMatch(t *testing.T) {
	rules := []CompilerRule{
		{Path: "/usr/bin/gcc", Ignore: IgnoreNever, MatchArguments: []string{"-E"}},
	}
	assert.Error(t, ValidateCompilerRules(rules))
}
