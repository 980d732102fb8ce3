package optreg

import "strings"

// TokenizeFunc converts one command-line string into a token slice.
// TokenizeGNU and TokenizeWindows both satisfy it.
type TokenizeFunc func(line string) []string

// TokenizeGNU splits a command-line string with Unix shell conventions:
// whitespace delimits tokens, backslash escapes the next character,
// single quotes are literal runs, and double quotes allow backslash
// escapes of '\' and '"'.
func TokenizeGNU(line string) []string {
	var tokens []string
	var b strings.Builder
	inToken := false

	flush := func() {
		if inToken {
			tokens = append(tokens, b.String())
			b.Reset()
			inToken = false
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
		case c == '\\':
			inToken = true
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
			}
		case c == '\'':
			inToken = true
			for i++; i < len(runes) && runes[i] != '\''; i++ {
				b.WriteRune(runes[i])
			}
		case c == '"':
			inToken = true
			for i++; i < len(runes) && runes[i] != '"'; i++ {
				if runes[i] == '\\' && i+1 < len(runes) &&
					(runes[i+1] == '\\' || runes[i+1] == '"') {
					i++
				}
				b.WriteRune(runes[i])
			}
		default:
			inToken = true
			b.WriteRune(c)
		}
	}
	flush()
	return tokens
}

// TokenizeWindows splits a command-line string with the Windows argv
// conventions: 2n backslashes before a quote collapse to n and the quote
// toggles quoting, 2n+1 backslashes yield n plus a literal quote, and a
// doubled quote inside a quoted run emits one literal quote.
func TokenizeWindows(line string) []string {
	var tokens []string
	var b strings.Builder
	inToken := false
	inQuote := false

	flush := func() {
		if inToken {
			tokens = append(tokens, b.String())
			b.Reset()
			inToken = false
		}
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case !inQuote && (c == ' ' || c == '\t' || c == '\n' || c == '\r'):
			flush()
		case c == '\\':
			inToken = true
			backslashes := 0
			for i < len(runes) && runes[i] == '\\' {
				backslashes++
				i++
			}
			if i < len(runes) && runes[i] == '"' {
				for j := 0; j < backslashes/2; j++ {
					b.WriteRune('\\')
				}
				if backslashes%2 == 1 {
					b.WriteRune('"')
				} else {
					inQuote = !inQuote
				}
			} else {
				i-- // reprocess the non-backslash rune
				for j := 0; j < backslashes; j++ {
					b.WriteRune('\\')
				}
			}
		case c == '"':
			inToken = true
			if inQuote && i+1 < len(runes) && runes[i+1] == '"' {
				b.WriteRune('"')
				i++
			} else {
				inQuote = !inQuote
			}
		default:
			inToken = true
			b.WriteRune(c)
		}
	}
	flush()
	return tokens
}
