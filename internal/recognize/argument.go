package recognize

// Role classifies what an ArgumentGroup represents within a compiler
// invocation.
type Role string

const (
	RoleCompiler Role = "compiler"
	RoleSource   Role = "source"
	RoleOutput   Role = "output"
	RoleSwitch   Role = "switch"
	RoleOther    Role = "other"
)

// Pass names one stage of the compile-link pipeline a flag can stop at or
// configure.
type Pass string

const (
	PassPreprocess Pass = "preprocess"
	PassCompile    Pass = "compile"
	PassAssemble   Pass = "assemble"
	PassLink       Pass = "link"
)

// passOrder gives passes their pipeline ordering, earliest first, so
// "stops at preprocess" can be compared against "stops at compile".
var passOrder = map[Pass]int{
	PassPreprocess: 0,
	PassCompile:    1,
	PassAssemble:   2,
	PassLink:       3,
}

// Before reports whether p runs earlier in the pipeline than other.
func (p Pass) Before(other Pass) bool {
	return passOrder[p] < passOrder[other]
}

// EffectKind tags what an Other-role group does to the pipeline: nothing,
// or the two meanings a flag can carry, "stops the invocation at this
// pass" vs. "configures behavior within this pass".
type EffectKind string

const (
	EffectNone       EffectKind = "none"
	EffectStopsAt    EffectKind = "stops-at"
	EffectConfigures EffectKind = "configures"
)

// Effect is only meaningful when Role == RoleOther.
type Effect struct {
	Kind EffectKind
	Pass Pass
}

// ArgumentGroup is one semantically tagged run of argv tokens: the flag
// itself plus whatever arguments it consumed, per the grammar in rules.go.
type ArgumentGroup struct {
	Role   Role
	Effect Effect
	Args   []string
}
