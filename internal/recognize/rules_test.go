package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchExactly(t *testing.T) {
	table := newRuleTable([]flagRule{
		{flagPattern{patternExactly, "-c", 0}, RoleOther, Effect{EffectStopsAt, PassCompile}},
		{flagPattern{patternExactly, "-o", 1}, RoleOutput, Effect{}},
	})

	rule, consumed, ok := table.match([]string{"-c"})
	assert.True(t, ok)
	assert.Equal(t, []string{"-c"}, consumed)
	assert.Equal(t, RoleOther, rule.role)

	rule, consumed, ok = table.match([]string{"-o", "out.o"})
	assert.True(t, ok)
	assert.Equal(t, []string{"-o", "out.o"}, consumed)
	assert.Equal(t, RoleOutput, rule.role)

	_, _, ok = table.match([]string{"-o"})
	assert.False(t, ok, "-o requires a separate argument")
}

func TestMatchExactlyWithEqOrSep(t *testing.T) {
	table := newRuleTable([]flagRule{
		{flagPattern{patternExactlyWithEqOrSep, "-std"}, RoleOther, Effect{EffectConfigures, PassCompile}},
	})

	_, consumed, ok := table.match([]string{"-std=c99"})
	assert.True(t, ok)
	assert.Equal(t, []string{"-std=c99"}, consumed)

	_, consumed, ok = table.match([]string{"-std", "c99"})
	assert.True(t, ok)
	assert.Equal(t, []string{"-std", "c99"}, consumed)
}

func TestMatchExactlyWithGluedOrSep(t *testing.T) {
	table := newRuleTable([]flagRule{
		{flagPattern{patternExactlyWithGluedOrSep, "-I"}, RoleOther, Effect{EffectConfigures, PassPreprocess}},
	})

	_, consumed, ok := table.match([]string{"-I/usr/include"})
	assert.True(t, ok)
	assert.Equal(t, []string{"-I/usr/include"}, consumed)

	_, consumed, ok = table.match([]string{"-I", "/usr/include"})
	assert.True(t, ok)
	assert.Equal(t, []string{"-I", "/usr/include"}, consumed)

	_, _, ok = table.match([]string{"-I"})
	assert.False(t, ok, "-I alone with nothing glued or following is not a match")
}

func TestMatchPrefix(t *testing.T) {
	table := newRuleTable([]flagRule{
		{flagPattern{patternPrefix, "-W", 0}, RoleSwitch, Effect{}},
	})

	_, consumed, ok := table.match([]string{"-Wall"})
	assert.True(t, ok)
	assert.Equal(t, []string{"-Wall"}, consumed)
}

func TestRuleTableSortedByFlagLengthDescending(t *testing.T) {
	table := newRuleTable([]flagRule{
		{flagPattern{patternPrefix, "-W", 0}, RoleSwitch, Effect{}},
		{flagPattern{patternExactlyWithEqOrSep, "-Wl"}, RoleOther, Effect{EffectConfigures, PassLink}},
	})
	assert.Equal(t, "-Wl", table.rules[0].pattern.flag)
}
