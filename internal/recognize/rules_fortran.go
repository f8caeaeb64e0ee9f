package recognize

// fortranTable covers the common flag surface shared by gfortran, ifort/
// ifx, and crayftn: module search paths play the role -I plays for C/C++,
// and the pass-stopping/output flags are identical to the GCC family.
var fortranTable = newRuleTable([]flagRule{
	{flagPattern{patternExactly, "-c", 0}, RoleOther, Effect{EffectStopsAt, PassCompile}},
	{flagPattern{patternExactly, "-S", 0}, RoleOther, Effect{EffectStopsAt, PassAssemble}},
	{flagPattern{patternExactly, "-E", 0}, RoleOther, Effect{EffectStopsAt, PassPreprocess}},
	{flagPattern{patternExactly, "-o", 1}, RoleOutput, Effect{}},
	{flagPattern{patternExactlyWithGluedOrSep, "-I"}, RoleOther, Effect{EffectConfigures, PassPreprocess}},
	{flagPattern{patternExactlyWithGluedOrSep, "-J"}, RoleOther, Effect{EffectConfigures, PassCompile}},
	{flagPattern{patternExactlyWithGluedOrSep, "-L"}, RoleOther, Effect{EffectConfigures, PassLink}},
	{flagPattern{patternExactlyWithGluedOrSep, "-l"}, RoleOther, Effect{EffectConfigures, PassLink}},
	{flagPattern{patternExactlyWithEqOrSep, "-std"}, RoleOther, Effect{EffectConfigures, PassCompile}},
	{flagPattern{patternPrefix, "-W", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-f", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-m", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-g", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-O", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-ffree", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-ffixed", 0}, RoleSwitch, Effect{}},
})

func ruleTableFor(f Family) *ruleTable {
	switch f {
	case FamilyGCC:
		return gccTable
	case FamilyClang:
		return clangTable
	case FamilyGNUFortran, FamilyIntelFortran, FamilyCrayFortran:
		return fortranTable
	default:
		return gccTable
	}
}
