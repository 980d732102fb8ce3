package optreg

import (
	"strings"

	"github.com/optreg/go-optreg/internal/fuzzy"
	"github.com/optreg/go-optreg/internal/intern"
	"github.com/optreg/go-optreg/internal/pool"
)

// suggestionMaxDistance bounds fuzzy matching for unknown-option hints.
const suggestionMaxDistance = 2

// matcher is the per-parse disambiguation state machine. It scans the
// token stream once, left to right, classifying every token in strict
// priority order: dashdash, positional, exact alias, alias=value,
// sticky prefix, grouped short flags.
//
// A matcher lives for exactly one Parse call. It borrows the registry
// immutably except for the occurrence counters and value slots it
// updates through dispatch.
type matcher struct {
	reg    *Registry
	tokens []string

	i        int  // cursor into tokens
	dashdash bool // all further tokens bind as positionals
	pos      int  // cursor into the positional list
}

func (m *matcher) run() error {
	scratch := pool.GetSession()
	defer pool.PutSession(scratch)

	for m.i = 0; m.i < len(m.tokens); m.i++ {
		if err := m.step(m.tokens[m.i], scratch); err != nil {
			return err
		}
	}
	return nil
}

func (m *matcher) step(tok string, scratch *pool.Session) error {
	// Priority 1: the first bare "--" only flips the positional switch.
	if tok == "--" && !m.dashdash {
		m.dashdash = true
		return nil
	}

	// Priority 2: positional capture.
	if m.dashdash || tok == "-" || !strings.HasPrefix(tok, "-") {
		return m.positional(tok, scratch)
	}

	body := tok[1:]
	short := true
	if strings.HasPrefix(body, "-") {
		body = body[1:]
		short = false
	}

	// Exact alias match.
	if opt := m.reg.byAlias[body]; opt != nil {
		return m.dispatchBare(opt, body, scratch)
	}

	// name=value split at the first '='.
	if eq := strings.IndexByte(body, '='); eq != -1 {
		name := body[:eq]
		if opt := m.reg.byAlias[name]; opt != nil {
			rest := body[eq:]
			if opt.Formatting != FormatPrefix {
				// Prefix options keep the '='; everything else drops it.
				rest = rest[1:]
			}
			return m.dispatch(opt, name, rest, true, scratch)
		}
	}

	// Sticky prefix, longest alias first for determinism.
	if n := m.reg.maxPrefixLen; n > 0 {
		if n > len(body) {
			n = len(body)
		}
		for ; n >= 1; n-- {
			name := body[:n]
			opt := m.reg.byAlias[name]
			if opt == nil {
				continue
			}
			if opt.Formatting == FormatPrefix || opt.Formatting == FormatMayPrefix {
				return m.dispatch(opt, name, body[n:], true, scratch)
			}
		}
	}

	// Grouped one-character flags, single dash only. All characters must
	// resolve or the whole token fails; no partial grouping.
	if short {
		if handled, err := m.group(body, scratch); handled {
			return err
		}
	}

	return m.unknown(body)
}

// positional binds tok to the next unsaturated positional descriptor.
func (m *matcher) positional(tok string, scratch *pool.Session) error {
	positionals := m.reg.positionals
	for m.pos < len(positionals) && positionals[m.pos].saturated() {
		m.pos++
	}
	if m.pos >= len(positionals) {
		return newParseError(ErrUnhandledPositional, m.i,
			"unexpected positional argument: '%s'", tok)
	}

	opt := positionals[m.pos]
	if err := m.dispatch(opt, opt.PrimaryAlias(), tok, true, scratch); err != nil {
		return err
	}
	if opt.Flags&ConsumeAfter != 0 {
		m.dashdash = true
	}
	return nil
}

// group resolves every character of body to a one-character grouping
// alias. It reports handled=false when any character fails to resolve,
// leaving the caller to raise UnknownOption for the whole token.
func (m *matcher) group(body string, scratch *pool.Session) (handled bool, err error) {
	scratch.Names = scratch.Names[:0]
	for _, r := range body {
		name := intern.InternRune(r)
		opt := m.reg.byAlias[name]
		if opt == nil || opt.Formatting != FormatGrouping {
			return false, nil
		}
		scratch.Names = append(scratch.Names, name)
	}

	// Resolve fully before dispatching anything: a member needing a value
	// anywhere but last position poisons the whole token.
	for idx, name := range scratch.Names {
		if idx == len(scratch.Names)-1 {
			break
		}
		if m.reg.byAlias[name].Arg == ArgRequired {
			e := newParseError(ErrMustBeLastInGroup, m.i,
				"option '%s' requires a value and must be last in group '-%s'", name, body)
			e.Option = name
			return true, e
		}
	}

	for idx, name := range scratch.Names {
		opt := m.reg.byAlias[name]
		if idx == len(scratch.Names)-1 {
			// The final member behaves like an exact match and may steal
			// the next token.
			return true, m.dispatchBare(opt, name, scratch)
		}
		if err := m.dispatch(opt, name, "", false, scratch); err != nil {
			return true, err
		}
	}
	return true, nil
}

// dispatchBare handles an exact alias match with no attached value text.
// Options that require a value and are not prefix-formatted steal the
// next token.
func (m *matcher) dispatchBare(opt *Option, alias string, scratch *pool.Session) error {
	if opt.Arg == ArgRequired && opt.Formatting != FormatPrefix {
		if m.i+1 >= len(m.tokens) {
			e := newParseError(ErrMissingArgument, m.i,
				"option '%s' requires a value", alias)
			e.Option = alias
			return e
		}
		m.i++
		return m.dispatch(opt, alias, m.tokens[m.i], true, scratch)
	}
	if opt.Arg == ArgRequired {
		// Prefix-formatted, matched with nothing attached.
		e := newParseError(ErrMissingArgument, m.i,
			"option '%s' requires a value", alias)
		e.Option = alias
		return e
	}
	return m.dispatch(opt, alias, "", false, scratch)
}

// dispatch records one matched occurrence: policy check, optional comma
// splitting, then one parser feed per piece.
func (m *matcher) dispatch(opt *Option, alias, value string, hasValue bool, scratch *pool.Session) error {
	if opt.saturated() {
		e := newParseError(ErrOccurrenceNotAllowed, m.i,
			"option '%s' may appear at most once", alias)
		e.Option = alias
		return e
	}
	if hasValue && opt.Arg == ArgDisallowed {
		e := newParseError(ErrArgumentNotAllowed, m.i,
			"option '%s' does not take a value", alias)
		e.Option = alias
		return e
	}

	if opt.Flags&CommaSeparated != 0 && hasValue {
		scratch.Pieces = splitComma(scratch.Pieces[:0], value)
		for _, piece := range scratch.Pieces {
			if err := m.feed(opt, alias, piece, true); err != nil {
				return err
			}
		}
		return nil
	}
	return m.feed(opt, alias, value, hasValue)
}

// feed runs the parser for one occurrence and stores the result.
func (m *matcher) feed(opt *Option, alias, value string, hasValue bool) error {
	v, err := opt.Parser.Parse(alias, value, hasValue, opt.count)
	if err != nil {
		e := newParseError(ErrValueParseFailure, m.i,
			"invalid value for option '%s': %v", alias, err)
		e.Option = alias
		e.Cause = err
		return e
	}
	opt.cell.store(v)
	opt.count++
	return nil
}

// unknown raises UnknownOption with a fuzzy alias suggestion.
func (m *matcher) unknown(name string) error {
	aliases := make([]string, 0, len(m.reg.byAlias))
	for alias := range m.reg.byAlias {
		aliases = append(aliases, alias)
	}
	e := newParseError(ErrUnknownOption, m.i, "unknown option: '%s'", name)
	e.Option = name
	e.Suggestion = fuzzy.FindBestAlias(name, aliases, suggestionMaxDistance)
	return e
}

// splitComma appends the ','-separated pieces of s to dst. Empty pieces
// are preserved so "a,,b" feeds three occurrences.
func splitComma(dst []string, s string) []string {
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			dst = append(dst, s[start:i])
			start = i + 1
		}
	}
	return append(dst, s[start:])
}
