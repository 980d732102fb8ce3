package optreg

import (
	"os"
	"sort"
	"time"

	"github.com/optreg/go-optreg/internal/intern"
)

// Registry owns every option and group registered for one program
// surface. It builds the alias index, tracks positional order and the
// longest prefix alias, and runs the matcher and validator over a token
// stream.
//
// A registry is mutated at setup time and during one in-flight Parse;
// concurrent Parse calls on the same registry must be serialized by the
// caller.
type Registry struct {
	byAlias      map[string]*Option
	all          []*Option // registration order, named and positional
	positionals  []*Option
	groups       []*Group
	maxPrefixLen int

	pending []*Option // builder-created options awaiting Add
	err     error     // first deferred registration error
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byAlias: make(map[string]*Option),
	}
}

// Add registers an option. It fails with ErrDuplicateAlias when any alias
// is taken, ErrEmptyPositionalName for unnamed positionals,
// ErrEmptyAliasNoValues for unnamed options whose parser publishes no
// enumeration, and ErrGroupingAliasLength for multi-character grouping
// aliases.
func (r *Registry) Add(o *Option) error {
	if err := o.resolveAliases(); err != nil {
		return err
	}
	if o.Parser == nil {
		o.Parser = StringParser()
	}
	o.cell.kind = o.Slot
	if o.Default != nil {
		o.cell.seed(o.Default)
	}

	if o.Formatting == FormatPositional {
		r.positionals = append(r.positionals, o)
		r.all = append(r.all, o)
		return nil
	}

	if o.Formatting == FormatGrouping {
		for _, alias := range o.aliases {
			if len([]rune(alias)) != 1 {
				return &RegistrationError{Kind: ErrGroupingAliasLength, Alias: alias}
			}
		}
	}

	for _, alias := range o.aliases {
		if _, taken := r.byAlias[alias]; taken {
			return &RegistrationError{Kind: ErrDuplicateAlias, Alias: alias}
		}
	}
	for i, alias := range o.aliases {
		canon := intern.Intern(alias)
		o.aliases[i] = canon
		r.byAlias[canon] = o
		if o.Formatting == FormatPrefix || o.Formatting == FormatMayPrefix {
			if len(alias) > r.maxPrefixLen {
				r.maxPrefixLen = len(alias)
			}
		}
	}
	r.all = append(r.all, o)
	return nil
}

// AddGroup registers a cardinality constraint over previously created
// options.
func (r *Registry) AddGroup(g *Group) {
	r.groups = append(r.groups, g)
}

// Group is the fluent form of AddGroup.
func (r *Registry) Group(name string, kind GroupKind, members ...*Option) *Registry {
	r.AddGroup(NewGroup(name, kind, members...))
	return r
}

// Parse scans the token stream with the matcher, then checks occurrence
// and group constraints. The first error aborts; nothing is retried.
// Counters and value slots reflect every occurrence dispatched before the
// failure.
func (r *Registry) Parse(tokens []string) error {
	if err := r.finalize(); err != nil {
		return err
	}
	m := matcher{reg: r, tokens: tokens}
	if err := m.run(); err != nil {
		return err
	}
	return r.validate()
}

// ParseEnv tokenizes the named environment variable with the GNU rules
// and parses the result. An unset or empty variable is a no-op.
func (r *Registry) ParseEnv(envVar string) error {
	v := os.Getenv(envVar)
	if v == "" {
		return nil
	}
	return r.Parse(TokenizeGNU(v))
}

// Reset zeroes every counter and value slot so the registry can be
// reused for another token stream.
func (r *Registry) Reset() {
	if err := r.finalize(); err != nil {
		return
	}
	for _, o := range r.all {
		o.count = 0
		o.cell.reset()
		if o.Default != nil {
			o.cell.seed(o.Default)
		}
	}
}

// Lookup returns the option registered under alias, or nil.
func (r *Registry) Lookup(alias string) *Option {
	if err := r.finalize(); err != nil {
		return nil
	}
	return r.byAlias[alias]
}

// Options returns the named options sorted by primary alias, for the
// help renderer.
func (r *Registry) Options() []*Option {
	if err := r.finalize(); err != nil {
		return nil
	}
	out := make([]*Option, 0, len(r.all)-len(r.positionals))
	for _, o := range r.all {
		if !o.IsPositional() {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PrimaryAlias() < out[j].PrimaryAlias()
	})
	return out
}

// Positionals returns the positional options in declaration order.
func (r *Registry) Positionals() []*Option {
	if err := r.finalize(); err != nil {
		return nil
	}
	return r.positionals
}

// Groups returns the registered groups in declaration order.
func (r *Registry) Groups() []*Group {
	return r.groups
}

// Err returns the first deferred registration error, if any.
func (r *Registry) Err() error {
	r.flushPending()
	return r.err
}

// finalize flushes builder-created options and surfaces the first
// registration error.
func (r *Registry) finalize() error {
	r.flushPending()
	return r.err
}

func (r *Registry) flushPending() {
	for _, o := range r.pending {
		if err := r.Add(o); err != nil && r.err == nil {
			r.err = err
		}
	}
	r.pending = r.pending[:0]
}

// defer registration until Parse so builder chains can keep configuring
// the option after creation.
func (r *Registry) enqueue(o *Option) {
	r.pending = append(r.pending, o)
}

// Fluent registration surface. Each helper picks the natural slot kind,
// parser and argument mode for its value type; builder methods override.

// String registers a scalar string option. Values are required.
func (r *Registry) String(name, description string) *OptionBuilder[string] {
	o := &Option{
		Name:        name,
		Description: description,
		Arg:         ArgRequired,
		Slot:        Scalar,
		Parser:      StringParser(),
	}
	r.enqueue(o)
	return &OptionBuilder[string]{opt: o, reg: r}
}

// Bool registers a flag. A bare occurrence stores true.
func (r *Registry) Bool(name, description string) *OptionBuilder[bool] {
	o := &Option{
		Name:        name,
		Description: description,
		Arg:         ArgOptional,
		Slot:        Scalar,
		Parser:      BoolParser(),
	}
	r.enqueue(o)
	return &OptionBuilder[bool]{opt: o, reg: r}
}

// Int registers a scalar integer option.
func (r *Registry) Int(name, description string) *OptionBuilder[int] {
	o := &Option{
		Name:        name,
		Description: description,
		Arg:         ArgRequired,
		Slot:        Scalar,
		Parser:      IntParser(),
	}
	r.enqueue(o)
	return &OptionBuilder[int]{opt: o, reg: r}
}

// Float registers a scalar float64 option.
func (r *Registry) Float(name, description string) *OptionBuilder[float64] {
	o := &Option{
		Name:        name,
		Description: description,
		Arg:         ArgRequired,
		Slot:        Scalar,
		Parser:      FloatParser(),
	}
	r.enqueue(o)
	return &OptionBuilder[float64]{opt: o, reg: r}
}

// Duration registers a scalar time.Duration option.
func (r *Registry) Duration(name, description string) *OptionBuilder[time.Duration] {
	o := &Option{
		Name:        name,
		Description: description,
		Arg:         ArgRequired,
		Slot:        Scalar,
		Parser:      DurationParser(),
	}
	r.enqueue(o)
	return &OptionBuilder[time.Duration]{opt: o, reg: r}
}

// Enum registers a scalar option restricted to the given values. With an
// empty name, every value becomes its own alias.
func (r *Registry) Enum(name, description string, values ...AllowedValue) *OptionBuilder[any] {
	arg := ArgRequired
	if name == "" {
		// Value aliases carry no attached text.
		arg = ArgDisallowed
	}
	o := &Option{
		Name:        name,
		Description: description,
		Arg:         arg,
		Slot:        Scalar,
		Parser:      EnumParser(values...),
	}
	r.enqueue(o)
	return &OptionBuilder[any]{opt: o, reg: r}
}

// StringSeq registers an ordered-append string option.
func (r *Registry) StringSeq(name, description string) *OptionBuilder[string] {
	o := &Option{
		Name:        name,
		Description: description,
		Occurrences: ZeroOrMore,
		Arg:         ArgRequired,
		Slot:        Sequence,
		Parser:      StringParser(),
	}
	r.enqueue(o)
	return &OptionBuilder[string]{opt: o, reg: r}
}

// IntSeq registers an ordered-append integer option.
func (r *Registry) IntSeq(name, description string) *OptionBuilder[int] {
	o := &Option{
		Name:        name,
		Description: description,
		Occurrences: ZeroOrMore,
		Arg:         ArgRequired,
		Slot:        Sequence,
		Parser:      IntParser(),
	}
	r.enqueue(o)
	return &OptionBuilder[int]{opt: o, reg: r}
}

// Positional registers a string positional captured in declaration order.
func (r *Registry) Positional(name, description string) *OptionBuilder[string] {
	o := &Option{
		Name:        name,
		Description: description,
		Formatting:  FormatPositional,
		Arg:         ArgOptional,
		Slot:        Scalar,
		Parser:      StringParser(),
	}
	r.enqueue(o)
	return &OptionBuilder[string]{opt: o, reg: r}
}

// PositionalSeq registers a repeatable string positional.
func (r *Registry) PositionalSeq(name, description string) *OptionBuilder[string] {
	o := &Option{
		Name:        name,
		Description: description,
		Formatting:  FormatPositional,
		Occurrences: ZeroOrMore,
		Arg:         ArgOptional,
		Slot:        Sequence,
		Parser:      StringParser(),
	}
	r.enqueue(o)
	return &OptionBuilder[string]{opt: o, reg: r}
}

// Custom registers an option with a caller-supplied parser and slot kind.
func (r *Registry) Custom(name, description string, slot SlotKind, parser ValueParser) *OptionBuilder[any] {
	o := &Option{
		Name:        name,
		Description: description,
		Arg:         ArgRequired,
		Slot:        slot,
		Parser:      parser,
	}
	r.enqueue(o)
	return &OptionBuilder[any]{opt: o, reg: r}
}
