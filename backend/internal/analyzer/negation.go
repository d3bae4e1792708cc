package analyzer

import (
	"fmt"
	"regexp"

	"github.com/havenbridge/crisis-sentinel/backend/internal/lexicon"
)

// tokenRe splits normalized text into word tokens and clause punctuation
// tokens. Apostrophes stay inside words so "don't" is a single token.
var tokenRe = regexp.MustCompile(`[a-z0-9']+|[.!?;,]`)

// clausePivots end the backwards negation scan in addition to punctuation:
// a cue before one of these cannot reach a match after it.
var clausePivots = map[string]bool{
	"but":     true,
	"though":  true,
	"however": true,
}

// NegationResolver annotates keyword matches that sit inside the scope of a
// preceding negation cue. Only the individual match is suppressed; other
// matches in the same message are judged independently, so negation can
// remove one signal from the aggregate but never clear a message that still
// carries unnegated signals.
type NegationResolver struct {
	cues   [][]string // tokenized cues
	window int        // preceding tokens inspected per match
}

// DefaultNegationWindow is the number of preceding tokens scanned for a
// cue. Five tokens reaches constructions like "don't want to hurt myself"
// without letting a cue at the start of a long sentence suppress a match at
// its end.
const DefaultNegationWindow = 5

// NewNegationResolver builds a resolver from the lexicon's cue list. A
// window of 0 or less falls back to DefaultNegationWindow.
func NewNegationResolver(lex *lexicon.Lexicon, window int) *NegationResolver {
	if window <= 0 {
		window = DefaultNegationWindow
	}

	cues := make([][]string, 0, len(lex.NegationCues))
	for _, cue := range lex.NegationCues {
		toks := tokenRe.FindAllString(Normalize(cue), -1)
		if len(toks) > 0 {
			cues = append(cues, toks)
		}
	}

	return &NegationResolver{cues: cues, window: window}
}

type token struct {
	text  string
	start int
}

// Resolve returns the matches with Negated set where a cue was found in the
// bounded preceding window. The input slice is not modified.
func (r *NegationResolver) Resolve(matches []Match, text string) ([]Match, error) {
	if len(matches) == 0 {
		return matches, nil
	}

	locs := tokenRe.FindAllStringIndex(text, -1)
	tokens := make([]token, len(locs))
	for i, loc := range locs {
		tokens[i] = token{text: text[loc[0]:loc[1]], start: loc[0]}
	}

	out := make([]Match, len(matches))
	copy(out, matches)

	for i := range out {
		if !out[i].CheckNegation {
			continue
		}

		idx := -1
		for j, t := range tokens {
			if t.start == out[i].Start {
				idx = j
				break
			}
		}
		if idx < 0 {
			// The match offset does not line up with any token. The window
			// cannot be computed; report it so the caller can take the
			// conservative path (assume not negated). The error carries
			// offsets only, never message text.
			return out, fmt.Errorf("negation window: match for category %s at offset %d not aligned to a token", out[i].Category, out[i].Start)
		}

		out[i].Negated = r.negatedBefore(tokens, idx)
	}

	return out, nil
}

// negatedBefore scans backwards from the token preceding idx, at most
// r.window tokens, stopping at a clause boundary.
func (r *NegationResolver) negatedBefore(tokens []token, idx int) bool {
	limit := idx - r.window
	if limit < 0 {
		limit = 0
	}

	for j := idx - 1; j >= limit; j-- {
		t := tokens[j].text
		if len(t) == 1 && (t == "." || t == "!" || t == "?" || t == ";" || t == ",") {
			return false
		}
		if clausePivots[t] {
			return false
		}
		for _, cue := range r.cues {
			first := j - len(cue) + 1
			if first < 0 {
				continue
			}
			hit := true
			for k, c := range cue {
				if tokens[first+k].text != c {
					hit = false
					break
				}
			}
			if hit {
				return true
			}
		}
	}
	return false
}
