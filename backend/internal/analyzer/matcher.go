package analyzer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/havenbridge/crisis-sentinel/backend/internal/lexicon"
	"github.com/havenbridge/crisis-sentinel/backend/internal/risk"
)

// Matcher holds the compiled keyword tables. It is built once at startup
// from the lexicon and is safe for concurrent use: matching never mutates
// state.
type Matcher struct {
	categories []compiledCategory
}

type compiledCategory struct {
	name          string
	severity      risk.Level
	checkNegation bool
	re            *regexp.Regexp
}

// NewMatcher compiles one whole-word alternation per category. Patterns are
// normalized before compiling so lexicon entries match the same text shape
// the normalizer produces. Compilation failure is a configuration error and
// fatal to the caller.
func NewMatcher(lex *lexicon.Lexicon) (*Matcher, error) {
	m := &Matcher{categories: make([]compiledCategory, 0, len(lex.Categories))}

	for _, cat := range lex.Categories {
		severity, err := cat.SeverityLevel()
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", cat.Name, err)
		}

		patterns := make([]string, 0, len(cat.Patterns))
		for _, p := range cat.Patterns {
			norm := Normalize(p)
			if norm == "" {
				continue
			}
			patterns = append(patterns, regexp.QuoteMeta(norm))
		}
		if len(patterns) == 0 {
			return nil, fmt.Errorf("category %q: no usable patterns", cat.Name)
		}

		// Longer alternatives first so "going to end it" wins over "end it"
		// at the same position.
		sort.Slice(patterns, func(i, j int) bool {
			return len(patterns[i]) > len(patterns[j])
		})

		re, err := regexp.Compile(`\b(` + strings.Join(patterns, "|") + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", cat.Name, err)
		}

		m.categories = append(m.categories, compiledCategory{
			name:          cat.Name,
			severity:      severity,
			checkNegation: cat.CheckNegation,
			re:            re,
		})
	}

	return m, nil
}

// Match scans normalized text against every category independently. All
// hits are returned, including co-located hits from different categories;
// later phases aggregate severities, so nothing is suppressed here.
func (m *Matcher) Match(text string) ([]Match, error) {
	if text == "" {
		return nil, nil
	}

	var matches []Match
	for _, cat := range m.categories {
		for _, loc := range cat.re.FindAllStringIndex(text, -1) {
			matches = append(matches, Match{
				Category:      cat.name,
				Severity:      cat.severity,
				Span:          text[loc[0]:loc[1]],
				Start:         loc[0],
				End:           loc[1],
				CheckNegation: cat.checkNegation,
			})
		}
	}
	return matches, nil
}
