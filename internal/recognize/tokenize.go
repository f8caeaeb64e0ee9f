package recognize

// Tokenize decomposes a compiler invocation's argv[1:] into ArgumentGroups
// using the family's flag grammar, first-match-wins, falling back to the
// source-file heuristic for anything no rule recognizes. The concatenation
// of every returned group's Args always reconstructs argv[1:] exactly.
func Tokenize(family Family, argv []string, cwd string) []ArgumentGroup {
	if len(argv) == 0 {
		return nil
	}
	table := ruleTableFor(family)
	rest := argv[1:]
	groups := make([]ArgumentGroup, 0, len(rest)+1)
	groups = append(groups, ArgumentGroup{Role: RoleCompiler, Args: []string{argv[0]}})

	for len(rest) > 0 {
		if rule, consumed, ok := table.match(rest); ok {
			groups = append(groups, ArgumentGroup{Role: rule.role, Effect: rule.effect, Args: consumed})
			rest = rest[len(consumed):]
			continue
		}
		if looksLikeSourceFile(rest[0], cwd) {
			groups = append(groups, ArgumentGroup{Role: RoleSource, Args: []string{rest[0]}})
		} else {
			groups = append(groups, ArgumentGroup{Role: RoleOther, Effect: Effect{Kind: EffectNone}, Args: []string{rest[0]}})
		}
		rest = rest[1:]
	}
	return groups
}
