package recognize

import "github.com/bearskim/bearskim/internal/execevent"

// CompilerCommand is a recognized compiler invocation, decomposed into
// semantically tagged ArgumentGroups.
type CompilerCommand struct {
	WorkingDir string
	Compiler   string
	Groups     []ArgumentGroup
}

// Sources returns the argument of every Source-role group.
func (c CompilerCommand) Sources() []string {
	var out []string
	for _, g := range c.Groups {
		if g.Role == RoleSource {
			out = append(out, g.Args[0])
		}
	}
	return out
}

// Output returns the output path named by an Output-role group, if any.
func (c CompilerCommand) Output() (string, bool) {
	for _, g := range c.Groups {
		if g.Role == RoleOutput && len(g.Args) == 2 {
			return g.Args[1], true
		}
	}
	return "", false
}

// EarliestStop returns the earliest pass any Other-role group's
// StopsAt effect names, if any group carries one.
func (c CompilerCommand) EarliestStop() (Pass, bool) {
	var earliest Pass
	found := false
	for _, g := range c.Groups {
		if g.Role == RoleOther && g.Effect.Kind == EffectStopsAt {
			if !found || g.Effect.Pass.Before(earliest) {
				earliest = g.Effect.Pass
				found = true
			}
		}
	}
	return earliest, found
}

// Recognize identifies ev as a compiler invocation and tokenizes its argv,
// or returns ok=false if the executable isn't a known compiler family.
func Recognize(ev execevent.Event) (CompilerCommand, bool) {
	family, ok := IdentifyCompiler(ev.Execution.Executable)
	if !ok {
		return CompilerCommand{}, false
	}
	groups := Tokenize(family, ev.Execution.Arguments, ev.Execution.WorkingDir)
	return CompilerCommand{
		WorkingDir: ev.Execution.WorkingDir,
		Compiler:   ev.Execution.Executable,
		Groups:     groups,
	}, true
}
