package recognize

// clangTable extends the GCC-compatible grammar with Clang's own
// diagnostics/driver flags. Clang accepts the vast majority of GCC's
// command-line surface, so this table starts from a copy of gccTable's
// rules and adds Clang-specific ones.
var clangTable = newRuleTable(append(append([]flagRule{}, gccTable.rules...), []flagRule{
	{flagPattern{patternExactlyWithEqOrSep, "-target"}, RoleOther, Effect{EffectConfigures, PassCompile}},
	{flagPattern{patternPrefix, "-Xclang", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "--driver-mode=", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-fsanitize", 0}, RoleSwitch, Effect{}},
}...))
