package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/havenbridge/crisis-sentinel/backend/internal/lexicon"
)

// ModifierDetector scans for the four contextual signal families. Families
// only amplify an existing keyword-derived severity; presence with no
// keyword match contributes nothing.
type ModifierDetector struct {
	families []compiledFamily
}

type compiledFamily struct {
	name string
	re   *regexp.Regexp
}

// NewModifierDetector compiles one whole-word alternation per family, in
// lexicon order so detection output is deterministic.
func NewModifierDetector(lex *lexicon.Lexicon) (*ModifierDetector, error) {
	d := &ModifierDetector{families: make([]compiledFamily, 0, len(lex.Modifiers))}

	for _, fam := range lex.Modifiers {
		patterns := make([]string, 0, len(fam.Patterns))
		for _, p := range fam.Patterns {
			norm := Normalize(p)
			if norm == "" {
				continue
			}
			patterns = append(patterns, regexp.QuoteMeta(norm))
		}
		if len(patterns) == 0 {
			return nil, fmt.Errorf("modifier family %q: no usable patterns", fam.Name)
		}

		re, err := regexp.Compile(`\b(` + strings.Join(patterns, "|") + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("modifier family %q: %w", fam.Name, err)
		}

		d.families = append(d.families, compiledFamily{name: fam.Name, re: re})
	}

	return d, nil
}

// Detect returns the names of the families present in the text. Each family
// is reported at most once no matter how many of its patterns hit.
func (d *ModifierDetector) Detect(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}

	var present []string
	for _, fam := range d.families {
		if fam.re.MatchString(text) {
			present = append(present, fam.name)
		}
	}
	return present, nil
}
