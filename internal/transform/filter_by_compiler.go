package transform

import (
	"github.com/bearskim/bearskim/internal/config"
	"github.com/bearskim/bearskim/internal/recognize"
)

// FilterByCompiler applies per-compiler-path filter rules to recognized
// calls: drop them outright (Always, or Conditional when the match
// condition holds), pass them through with argument edits applied (Never),
// or pass them through unmodified (Conditional's non-matching case).
// Grounded line-for-line on
// FilterByCompiler::apply/apply_when_match_compiler/match_condition/
// apply_argument_changes in filter_by_compiler.rs.
type FilterByCompiler struct {
	byPath map[string][]config.CompilerRule
}

// NewFilterByCompiler builds a filter from a validated rule list. Callers
// are expected to have already run config.ValidateCompilerRules.
func NewFilterByCompiler(rules []config.CompilerRule) *FilterByCompiler {
	byPath := make(map[string][]config.CompilerRule, len(rules))
	for _, r := range rules {
		byPath[r.Path] = append(byPath[r.Path], r)
	}
	return &FilterByCompiler{byPath: byPath}
}

// Apply runs cc through every rule configured for its compiler path, in
// order. Returns dropped=true if any rule eliminated the call.
func (f *FilterByCompiler) Apply(cc recognize.CompilerCommand) (recognize.CompilerCommand, bool) {
	rules, ok := f.byPath[cc.Compiler]
	if !ok {
		return cc, false
	}
	current := cc
	for _, rule := range rules {
		next, dropped := applyRule(rule, current)
		if dropped {
			return recognize.CompilerCommand{}, true
		}
		current = next
	}
	return current, false
}

func applyRule(rule config.CompilerRule, cc recognize.CompilerCommand) (recognize.CompilerCommand, bool) {
	switch rule.Ignore {
	case config.IgnoreAlways:
		return recognize.CompilerCommand{}, true

	case config.IgnoreConditional:
		if matchCondition(rule.MatchArguments, cc) {
			return recognize.CompilerCommand{}, true
		}
		return cc, false

	case config.IgnoreNever:
		return applyArgumentChanges(rule, cc), false
	}
	return cc, false
}

// matchCondition reports whether any flag in the rule's match list appears
// among cc's Compile-pass groups.
func matchCondition(match []string, cc recognize.CompilerCommand) bool {
	if len(match) == 0 {
		return false
	}
	wanted := make(map[string]bool, len(match))
	for _, m := range match {
		wanted[m] = true
	}
	for _, g := range cc.Groups {
		if g.Role != recognize.RoleOther || g.Effect.Pass != recognize.PassCompile {
			continue
		}
		for _, a := range g.Args {
			if wanted[a] {
				return true
			}
		}
	}
	return false
}

// applyArgumentChanges removes listed flags, then appends added flags, in
// that order, leaving every non-matching group untouched.
func applyArgumentChanges(rule config.CompilerRule, cc recognize.CompilerCommand) recognize.CompilerCommand {
	if len(rule.RemoveArguments) == 0 && len(rule.AddArguments) == 0 {
		return cc
	}
	remove := make(map[string]bool, len(rule.RemoveArguments))
	for _, a := range rule.RemoveArguments {
		remove[a] = true
	}

	out := cc
	groups := make([]recognize.ArgumentGroup, 0, len(cc.Groups))
	for _, g := range cc.Groups {
		if shouldRemoveGroup(g, remove) {
			continue
		}
		groups = append(groups, g)
	}
	if len(rule.AddArguments) > 0 {
		groups = append(groups, recognize.ArgumentGroup{Role: recognize.RoleSwitch, Args: rule.AddArguments})
	}
	out.Groups = groups
	return out
}

func shouldRemoveGroup(g recognize.ArgumentGroup, remove map[string]bool) bool {
	for _, a := range g.Args {
		if remove[a] {
			return true
		}
	}
	return false
}
