package optreg

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// AllowedValue is one entry of a parser's published value enumeration.
// Name is what the user types, Value is what gets stored.
type AllowedValue struct {
	Name        string
	Description string
	Value       any
}

// ValueParser converts option value text into a typed value.
//
// alias is the alias the user actually wrote, value is the attached text
// and hasValue distinguishes an empty value ("-o=") from no value at all
// ("-o"). occurrence is the option's current occurrence count, starting
// at 0 for the first parse.
//
// AllowedValues may publish an enumeration of accepted inputs; the help
// renderer expands it and the registry uses it as the alias set for
// unnamed options.
type ValueParser interface {
	Parse(alias, value string, hasValue bool, occurrence int) (any, error)
	AllowedValues() []AllowedValue
}

// ParseFunc adapts a plain function to the ValueParser interface. It
// publishes no allowed values.
type ParseFunc func(alias, value string, hasValue bool, occurrence int) (any, error)

func (f ParseFunc) Parse(alias, value string, hasValue bool, occurrence int) (any, error) {
	return f(alias, value, hasValue, occurrence)
}

func (f ParseFunc) AllowedValues() []AllowedValue { return nil }

// Built-in parsers

type stringValueParser struct{}

func (stringValueParser) Parse(_, value string, _ bool, _ int) (any, error) {
	return value, nil
}

func (stringValueParser) AllowedValues() []AllowedValue { return nil }

// StringParser returns the text verbatim. An absent value parses as "".
func StringParser() ValueParser { return stringValueParser{} }

type boolValueParser struct{}

func (boolValueParser) Parse(alias, value string, hasValue bool, _ int) (any, error) {
	if !hasValue {
		// Bare flag: presence means true.
		return true, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean '%s' for option '%s'", value, alias)
	}
	return b, nil
}

func (boolValueParser) AllowedValues() []AllowedValue { return nil }

// BoolParser accepts strconv.ParseBool forms; a bare occurrence is true.
func BoolParser() ValueParser { return boolValueParser{} }

type intValueParser struct{}

func (intValueParser) Parse(alias, value string, hasValue bool, _ int) (any, error) {
	if !hasValue || value == "" {
		return nil, fmt.Errorf("empty integer for option '%s'", alias)
	}
	// Base 0 keeps hex and octal input transparent to the user.
	n, err := strconv.ParseInt(value, 0, strconv.IntSize)
	if err != nil {
		return nil, fmt.Errorf("invalid integer '%s' for option '%s'", value, alias)
	}
	return int(n), nil
}

func (intValueParser) AllowedValues() []AllowedValue { return nil }

// IntParser parses decimal, hex (0x) and octal (0) integers.
func IntParser() ValueParser { return intValueParser{} }

type floatValueParser struct{}

func (floatValueParser) Parse(alias, value string, hasValue bool, _ int) (any, error) {
	if !hasValue || value == "" {
		return nil, fmt.Errorf("empty float for option '%s'", alias)
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid float '%s' for option '%s'", value, alias)
	}
	return f, nil
}

func (floatValueParser) AllowedValues() []AllowedValue { return nil }

// FloatParser parses float64 values.
func FloatParser() ValueParser { return floatValueParser{} }

type durationValueParser struct{}

func (durationValueParser) Parse(alias, value string, hasValue bool, _ int) (any, error) {
	if !hasValue || value == "" {
		return nil, fmt.Errorf("empty duration for option '%s'", alias)
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return nil, fmt.Errorf("invalid duration '%s' for option '%s'", value, alias)
	}
	return d, nil
}

func (durationValueParser) AllowedValues() []AllowedValue { return nil }

// DurationParser parses Go duration syntax ("1h30m").
func DurationParser() ValueParser { return durationValueParser{} }

type enumValueParser struct {
	values []AllowedValue
}

func (p enumValueParser) Parse(alias, value string, hasValue bool, _ int) (any, error) {
	// Named enum options match the attached value; unnamed enum options
	// are registered once per allowed value, so the alias itself selects.
	key := alias
	if hasValue {
		key = value
	}
	for _, av := range p.values {
		if av.Name == key {
			return av.Value, nil
		}
	}
	return nil, fmt.Errorf("invalid value '%s' for option '%s', valid values: %s", key, alias, p.names())
}

func (p enumValueParser) AllowedValues() []AllowedValue { return p.values }

func (p enumValueParser) names() string {
	var b strings.Builder
	for i, av := range p.values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(av.Name)
	}
	return b.String()
}

// EnumParser matches input against a fixed set of allowed values and
// stores the associated typed value. The enumeration is published to the
// help renderer and, for unnamed options, becomes the alias set.
func EnumParser(values ...AllowedValue) ValueParser {
	return enumValueParser{values: values}
}
