package recognize

// gccTable is the GCC/cc flag grammar: preprocessor defines/includes,
// the -c/-S/-E pass-stopping flags, linker flags, and the generic -W/-f/-m
// switch prefixes that carry no pipeline meaning of their own.
var gccTable = newRuleTable([]flagRule{
	{flagPattern{patternExactly, "-c", 0}, RoleOther, Effect{EffectStopsAt, PassCompile}},
	{flagPattern{patternExactly, "-S", 0}, RoleOther, Effect{EffectStopsAt, PassAssemble}},
	{flagPattern{patternExactly, "-E", 0}, RoleOther, Effect{EffectStopsAt, PassPreprocess}},
	{flagPattern{patternExactly, "-o", 1}, RoleOutput, Effect{}},
	{flagPattern{patternExactlyWithEqOrSep, "-std"}, RoleOther, Effect{EffectConfigures, PassCompile}},
	{flagPattern{patternExactlyWithEqOrSep, "-MF"}, RoleOther, Effect{EffectConfigures, PassPreprocess}},
	{flagPattern{patternExactlyWithEqOrSep, "-MT"}, RoleOther, Effect{EffectConfigures, PassPreprocess}},
	{flagPattern{patternExactlyWithEqOrSep, "-MQ"}, RoleOther, Effect{EffectConfigures, PassPreprocess}},
	{flagPattern{patternExactlyWithGluedOrSep, "-I"}, RoleOther, Effect{EffectConfigures, PassPreprocess}},
	{flagPattern{patternExactlyWithGluedOrSep, "-isystem"}, RoleOther, Effect{EffectConfigures, PassPreprocess}},
	{flagPattern{patternExactlyWithGluedOrSep, "-iquote"}, RoleOther, Effect{EffectConfigures, PassPreprocess}},
	{flagPattern{patternExactlyWithGluedOrSep, "-include"}, RoleOther, Effect{EffectConfigures, PassPreprocess}},
	{flagPattern{patternExactlyWithGluedOrSep, "-D"}, RoleOther, Effect{EffectConfigures, PassPreprocess}},
	{flagPattern{patternExactlyWithGluedOrSep, "-U"}, RoleOther, Effect{EffectConfigures, PassPreprocess}},
	{flagPattern{patternExactlyWithGluedOrSep, "-L"}, RoleOther, Effect{EffectConfigures, PassLink}},
	{flagPattern{patternExactlyWithGluedOrSep, "-l"}, RoleOther, Effect{EffectConfigures, PassLink}},
	{flagPattern{patternExactlyWithGluedOrSep, "-x"}, RoleOther, Effect{EffectConfigures, PassCompile}},
	{flagPattern{patternPrefix, "-Wl,", 0}, RoleOther, Effect{EffectConfigures, PassLink}},
	{flagPattern{patternPrefix, "-Xlinker", 0}, RoleOther, Effect{EffectConfigures, PassLink}},
	{flagPattern{patternPrefix, "-W", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-f", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-m", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-g", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-O", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-pipe", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-pthread", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-shared", 0}, RoleSwitch, Effect{}},
	{flagPattern{patternPrefix, "-static", 0}, RoleSwitch, Effect{}},
})
