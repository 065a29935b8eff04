package cli

import (
	"errors"
	"unicode"
)

var errUnterminatedQuote = errors.New("unterminated quote")

// splitShellWords splits a script line into words, handling single quotes,
// double quotes and backslash escapes (outside single quotes). A quoted empty
// string is kept as an empty word.
func splitShellWords(s string) ([]string, error) {
	var out []string
	var cur []rune
	inSingle := false
	inDouble := false
	escaped := false
	quoted := false

	flush := func() {
		if len(cur) == 0 && !quoted {
			return
		}
		out = append(out, string(cur))
		cur = cur[:0]
		quoted = false
	}

	for _, r := range s {
		switch {
		case escaped:
			cur = append(cur, r)
			escaped = false
		case r == '\\' && !inSingle:
			escaped = true
		case r == '\'' && !inDouble:
			inSingle = !inSingle
			quoted = true
		case r == '"' && !inSingle:
			inDouble = !inDouble
			quoted = true
		case !inSingle && !inDouble && unicode.IsSpace(r):
			flush()
		default:
			cur = append(cur, r)
		}
	}
	if inSingle || inDouble || escaped {
		return nil, errUnterminatedQuote
	}
	flush()
	return out, nil
}
