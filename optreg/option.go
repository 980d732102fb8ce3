package optreg

import "strings"

// Occurrences controls how many times an option may or must appear.
type Occurrences int

const (
	// Optional allows zero or one occurrence.
	Optional Occurrences = iota
	// ZeroOrMore allows any number of occurrences.
	ZeroOrMore
	// Required demands exactly one occurrence.
	Required
	// OneOrMore demands at least one occurrence.
	OneOrMore
)

// ArgMode controls whether an option takes attached value text.
type ArgMode int

const (
	// ArgOptional accepts a value when one is attached.
	ArgOptional ArgMode = iota
	// ArgRequired demands a value, stealing the next token when the
	// matcher allows it.
	ArgRequired
	// ArgDisallowed rejects any attached value text.
	ArgDisallowed
)

// Formatting selects which matcher rules apply to an option.
type Formatting int

const (
	// FormatDefault matches by exact alias or alias=value.
	FormatDefault Formatting = iota
	// FormatPrefix matches when an alias prefixes the token body; the
	// remainder is the value ("-Idir").
	FormatPrefix
	// FormatMayPrefix matches like FormatDefault and additionally like
	// FormatPrefix.
	FormatMayPrefix
	// FormatGrouping marks a one-character flag combinable behind a
	// single dash ("-xvf").
	FormatGrouping
	// FormatPositional captures bare tokens in declaration order.
	FormatPositional
)

// MiscFlags carries orthogonal option behaviors.
type MiscFlags uint8

const (
	// CommaSeparated splits attached values on ',' and parses each piece
	// as one occurrence.
	CommaSeparated MiscFlags = 1 << iota
	// Hidden excludes the option from help output.
	Hidden
	// ConsumeAfter forces every token after this positional binds to be
	// treated as positional, dashes included.
	ConsumeAfter
)

// Option is one registry entry: a named (or positional) descriptor tying
// matching policy to a value slot and a parser.
//
// Name holds one or more aliases separated by '|'. An empty Name is legal
// only when Parser publishes allowed values (each value then registers as
// an alias) or when the option is positional - positionals must still
// carry a display name.
type Option struct {
	Name        string
	ArgName     string
	Description string
	Occurrences Occurrences
	Arg         ArgMode
	Formatting  Formatting
	Flags       MiscFlags
	Slot        SlotKind
	Parser      ValueParser
	Default     any

	aliases []string
	count   int
	cell    ValueCell
}

// Aliases returns the alias list resolved at registration time.
func (o *Option) Aliases() []string {
	return o.aliases
}

// PrimaryAlias returns the first alias, or the display name for
// positionals.
func (o *Option) PrimaryAlias() string {
	if len(o.aliases) > 0 {
		return o.aliases[0]
	}
	return o.Name
}

// Count reports how many occurrences were parsed.
func (o *Option) Count() int {
	return o.count
}

// IsSet reports whether any occurrence stored a value.
func (o *Option) IsSet() bool {
	return o.cell.IsSet()
}

// Value returns the stored scalar value (or the default).
func (o *Option) Value() any {
	return o.cell.Value()
}

// Values returns all stored values for Sequence options.
func (o *Option) Values() []any {
	return o.cell.Values()
}

// Cell exposes the option's storage slot.
func (o *Option) Cell() *ValueCell {
	return &o.cell
}

// IsPositional reports whether the option captures bare tokens.
func (o *Option) IsPositional() bool {
	return o.Formatting == FormatPositional
}

// IsHidden reports whether help output skips the option.
func (o *Option) IsHidden() bool {
	return o.Flags&Hidden != 0
}

// saturated reports whether another occurrence would violate the policy.
// ZeroOrMore and OneOrMore never saturate.
func (o *Option) saturated() bool {
	switch o.Occurrences {
	case Optional, Required:
		return o.count >= 1
	case ZeroOrMore, OneOrMore:
		return false
	default:
		return false
	}
}

// resolveAliases splits Name on '|' and falls back to the parser's
// allowed values for unnamed options.
func (o *Option) resolveAliases() error {
	if o.Name != "" {
		o.aliases = strings.Split(o.Name, "|")
		return nil
	}
	if o.Formatting == FormatPositional {
		return &RegistrationError{Kind: ErrEmptyPositionalName}
	}
	if o.Parser != nil {
		values := o.Parser.AllowedValues()
		if len(values) > 0 {
			o.aliases = make([]string, len(values))
			for i, av := range values {
				o.aliases[i] = av.Name
			}
			return nil
		}
	}
	return &RegistrationError{Kind: ErrEmptyAliasNoValues}
}

// OptionBuilder configures one option fluently and hands it to the
// registry when the chain ends. T is the option's value type; it keeps
// Default type-safe.
type OptionBuilder[T any] struct {
	opt *Option
	reg *Registry
}

// Required demands exactly one occurrence.
func (b *OptionBuilder[T]) Required() *OptionBuilder[T] {
	b.opt.Occurrences = Required
	return b
}

// OneOrMore demands at least one occurrence.
func (b *OptionBuilder[T]) OneOrMore() *OptionBuilder[T] {
	b.opt.Occurrences = OneOrMore
	return b
}

// ZeroOrMore allows any number of occurrences.
func (b *OptionBuilder[T]) ZeroOrMore() *OptionBuilder[T] {
	b.opt.Occurrences = ZeroOrMore
	return b
}

// ArgRequired demands attached or stolen value text.
func (b *OptionBuilder[T]) ArgRequired() *OptionBuilder[T] {
	b.opt.Arg = ArgRequired
	return b
}

// ArgOptional accepts a value when attached.
func (b *OptionBuilder[T]) ArgOptional() *OptionBuilder[T] {
	b.opt.Arg = ArgOptional
	return b
}

// ArgDisallowed rejects attached value text.
func (b *OptionBuilder[T]) ArgDisallowed() *OptionBuilder[T] {
	b.opt.Arg = ArgDisallowed
	return b
}

// Prefix lets the value follow the alias with no separator.
func (b *OptionBuilder[T]) Prefix() *OptionBuilder[T] {
	b.opt.Formatting = FormatPrefix
	return b
}

// MayPrefix matches both separated and prefix forms.
func (b *OptionBuilder[T]) MayPrefix() *OptionBuilder[T] {
	b.opt.Formatting = FormatMayPrefix
	return b
}

// Grouping marks a one-character flag combinable behind a single dash.
func (b *OptionBuilder[T]) Grouping() *OptionBuilder[T] {
	b.opt.Formatting = FormatGrouping
	return b
}

// CommaSeparated splits values on ',' into one occurrence per piece.
func (b *OptionBuilder[T]) CommaSeparated() *OptionBuilder[T] {
	b.opt.Flags |= CommaSeparated
	return b
}

// Hidden excludes the option from help output.
func (b *OptionBuilder[T]) Hidden() *OptionBuilder[T] {
	b.opt.Flags |= Hidden
	return b
}

// ConsumeAfter forces all tokens after this positional to bind as
// positionals.
func (b *OptionBuilder[T]) ConsumeAfter() *OptionBuilder[T] {
	b.opt.Flags |= ConsumeAfter
	return b
}

// ArgName sets the value placeholder shown in help output.
func (b *OptionBuilder[T]) ArgName(name string) *OptionBuilder[T] {
	b.opt.ArgName = name
	return b
}

// Default seeds the value slot; it does not count as an occurrence.
func (b *OptionBuilder[T]) Default(v T) *OptionBuilder[T] {
	b.opt.Default = v
	return b
}

// Parser replaces the option's value parser.
func (b *OptionBuilder[T]) Parser(p ValueParser) *OptionBuilder[T] {
	b.opt.Parser = p
	return b
}

// Option exposes the descriptor for reading results after Parse.
func (b *OptionBuilder[T]) Option() *Option {
	return b.opt
}

// Back returns to the registry for continued chaining.
func (b *OptionBuilder[T]) Back() *Registry {
	return b.reg
}
