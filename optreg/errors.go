package optreg

import "fmt"

// ErrorKind categorizes registry and parse failures.
// Kinds drive caller-side reporting decisions; the engine never retries.
type ErrorKind string

const (
	// Registration errors - programmer mistakes, surfaced before any scan runs.
	ErrDuplicateAlias      ErrorKind = "duplicate_alias"
	ErrEmptyPositionalName ErrorKind = "empty_positional_name"
	ErrEmptyAliasNoValues  ErrorKind = "empty_alias_without_allowed_values"
	ErrGroupingAliasLength ErrorKind = "grouping_alias_length"

	// Parse errors - bad user input, reported per token.
	ErrUnknownOption        ErrorKind = "unknown_option"
	ErrUnhandledPositional  ErrorKind = "unhandled_positional"
	ErrMissingArgument      ErrorKind = "missing_argument"
	ErrArgumentNotAllowed   ErrorKind = "argument_not_allowed"
	ErrOccurrenceNotAllowed ErrorKind = "occurrence_not_allowed"
	ErrMustBeLastInGroup    ErrorKind = "must_be_last_in_group"
	ErrValueParseFailure    ErrorKind = "value_parse_failure"

	// Validation errors - post-scan constraint failures.
	ErrMissingRequiredOption    ErrorKind = "missing_required_option"
	ErrGroupConstraintViolation ErrorKind = "group_constraint_violation"
)

// RegistrationError reports a misconfigured option or group at Add time.
type RegistrationError struct {
	Kind  ErrorKind
	Alias string
}

func (e *RegistrationError) Error() string {
	switch e.Kind {
	case ErrDuplicateAlias:
		return "optreg: duplicate alias: " + e.Alias
	case ErrEmptyPositionalName:
		return "optreg: positional option has no name"
	case ErrEmptyAliasNoValues:
		return "optreg: unnamed option has no allowed values to use as aliases"
	case ErrGroupingAliasLength:
		return "optreg: grouping alias must be exactly one character: " + e.Alias
	default:
		return "optreg: invalid registration: " + e.Alias
	}
}

// ParseError reports a user-input failure found while scanning tokens or
// validating occurrence and group constraints afterwards.
type ParseError struct {
	Kind       ErrorKind
	Message    string
	Option     string // alias as written on the command line, if any
	Group      string // violated group name, for group constraint errors
	TokenIndex int    // index into the token slice where scanning stopped
	Suggestion string // fuzzy-matched alias for unknown option errors
	Cause      error  // parser rejection for value parse failures
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// newParseError builds a ParseError with a formatted message.
func newParseError(kind ErrorKind, tokenIndex int, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:       kind,
		Message:    fmt.Sprintf(format, args...),
		TokenIndex: tokenIndex,
	}
}
