package optreg

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExpandResponseFiles replaces every "@file" token with the tokenized
// contents of that file, recursively. Nested response files resolve; a
// file including itself (directly or through a chain) fails. Tokens whose
// file cannot be read are left verbatim, so "@nosuchfile" can still reach
// a positional descriptor.
func ExpandResponseFiles(tokens []string, tokenize TokenizeFunc) ([]string, error) {
	if tokenize == nil {
		tokenize = TokenizeGNU
	}
	out := make([]string, 0, len(tokens))
	return expandResponse(out, tokens, tokenize, make(map[string]bool))
}

func expandResponse(out, tokens []string, tokenize TokenizeFunc, visiting map[string]bool) ([]string, error) {
	for _, tok := range tokens {
		if len(tok) < 2 || tok[0] != '@' {
			out = append(out, tok)
			continue
		}

		path := tok[1:]
		key := path
		if abs, err := filepath.Abs(path); err == nil {
			key = abs
		}
		if visiting[key] {
			return nil, fmt.Errorf("optreg: response file cycle through '%s'", path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			out = append(out, tok)
			continue
		}

		visiting[key] = true
		out, err = expandResponse(out, tokenize(string(data)), tokenize, visiting)
		if err != nil {
			return nil, err
		}
		delete(visiting, key)
	}
	return out, nil
}
