package analyzer

import (
	"strings"
	"unicode"
)

// Normalize canonicalizes raw message text for matching. It is a pure,
// total function: any input, including empty, yields a valid (possibly
// empty) result and never an error.
//
// Rules:
//   - lowercase
//   - unicode apostrophe variants become ASCII ' so contractions like
//     "don't" survive as single tokens
//   - dashes, underscores and slashes become spaces so "self-harm" matches
//     the phrase "self harm"
//   - clause punctuation . ! ? ; , is kept (spaced as its own token) because
//     negation scope ends at a clause boundary
//   - all other punctuation and symbols are dropped so inserted characters
//     cannot evade whole-word matching
//   - whitespace collapses to single spaces
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range strings.ToLower(raw) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '\'' || r == '’' || r == '‘' || r == '`':
			b.WriteByte('\'')
		case r == '-' || r == '–' || r == '—' || r == '_' || r == '/':
			b.WriteByte(' ')
		case r == '.' || r == '!' || r == '?' || r == ';' || r == ',':
			// Space the punctuation out so it tokenizes on its own.
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		default:
			// Emoji, asterisks, zero-width characters and the rest are
			// dropped entirely rather than turned into spaces, so
			// "k*ill myself" still collapses onto the keyword.
			continue
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
