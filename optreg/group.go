package optreg

// GroupKind is the cardinality constraint a group imposes on how many of
// its members may appear across one token stream.
type GroupKind int

const (
	// GroupDefault imposes no constraint.
	GroupDefault GroupKind = iota
	// GroupZero forbids every member.
	GroupZero
	// GroupZeroOrOne allows at most one member.
	GroupZeroOrOne
	// GroupOne demands exactly one member.
	GroupOne
	// GroupOneOrMore demands at least one member.
	GroupOneOrMore
	// GroupAll demands every member.
	GroupAll
	// GroupZeroOrAll demands either no members or all of them.
	GroupZeroOrAll
)

// Group names a cardinality constraint over a set of registered options.
// It holds non-owning references; an option may belong to any number of
// groups.
type Group struct {
	Name    string
	Kind    GroupKind
	members []*Option
}

// NewGroup builds a group over the given member options.
func NewGroup(name string, kind GroupKind, members ...*Option) *Group {
	return &Group{Name: name, Kind: kind, members: members}
}

// Members returns the group's member options.
func (g *Group) Members() []*Option {
	return g.members
}

// describeKind returns a human-readable constraint description for error
// messages and help output.
func (g *Group) describeKind() string {
	switch g.Kind {
	case GroupZero:
		return "none of these options may be used"
	case GroupZeroOrOne:
		return "at most one of these options may be used"
	case GroupOne:
		return "exactly one of these options must be used"
	case GroupOneOrMore:
		return "at least one of these options must be used"
	case GroupAll:
		return "all of these options must be used"
	case GroupZeroOrAll:
		return "either all of these options must be used, or none"
	case GroupDefault:
		return ""
	default:
		return ""
	}
}

// satisfied checks the cardinality constraint against k, the number of
// distinct members that occurred.
func (g *Group) satisfied(k int) bool {
	n := len(g.members)
	switch g.Kind {
	case GroupZero:
		return k == 0
	case GroupZeroOrOne:
		return k <= 1
	case GroupOne:
		return k == 1
	case GroupOneOrMore:
		return k >= 1
	case GroupAll:
		return k == n
	case GroupZeroOrAll:
		return k == 0 || k == n
	case GroupDefault:
		return true
	default:
		return true
	}
}
