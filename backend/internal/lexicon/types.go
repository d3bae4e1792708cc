package lexicon

import (
	"fmt"

	"github.com/havenbridge/crisis-sentinel/backend/internal/risk"
)

// Category is one keyword category of the crisis lexicon. Categories are
// loaded once at startup and never mutated at runtime.
type Category struct {
	Name string `yaml:"name"`
	// Patterns are whole-word phrases in normalized form (lowercase,
	// single spaces, no punctuation besides apostrophes).
	Patterns []string `yaml:"patterns"`
	Severity string   `yaml:"severity"`
	// CheckNegation marks categories whose matches may be suppressed by a
	// preceding negation cue.
	CheckNegation bool `yaml:"check_negation"`
}

// SeverityLevel resolves the category's configured severity name.
func (c Category) SeverityLevel() (risk.Level, error) {
	return risk.Parse(c.Severity)
}

// ModifierFamily is one of the four contextual signal families. A present
// family amplifies an existing keyword-derived severity; it never creates
// risk on its own.
type ModifierFamily struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// EmotionLabel defines one emotional state the classifier can produce.
// Rank orders labels from neutral (0) upward by severity of distress, so a
// worsening trend is a non-decreasing rank sequence.
type EmotionLabel struct {
	Name     string             `yaml:"name"`
	Rank     int                `yaml:"rank"`
	Keywords map[string]float64 `yaml:"keywords"` // keyword -> intensity weight
}

// Lexicon is the full immutable rule set consumed by the analyzer. It is
// assembled once (defaults plus optional YAML overlay) before the service
// starts handling traffic.
type Lexicon struct {
	Version      string           `yaml:"version"`
	Categories   []Category       `yaml:"categories"`
	Modifiers    []ModifierFamily `yaml:"modifiers"`
	NegationCues []string         `yaml:"negation_cues"`
	Emotions     []EmotionLabel   `yaml:"emotions"`
}

// ConfigError marks a lexicon that cannot be used. It is fatal at startup;
// the assessor never guesses around missing tables.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("lexicon config error: %s", e.Reason)
}

// Validate checks the structural invariants the analyzer relies on.
func (l *Lexicon) Validate() error {
	if len(l.Categories) == 0 {
		return &ConfigError{Reason: "no keyword categories defined"}
	}
	seen := make(map[string]bool)
	for _, c := range l.Categories {
		if c.Name == "" {
			return &ConfigError{Reason: "category with empty name"}
		}
		if seen[c.Name] {
			return &ConfigError{Reason: fmt.Sprintf("duplicate category %q", c.Name)}
		}
		seen[c.Name] = true
		if len(c.Patterns) == 0 {
			return &ConfigError{Reason: fmt.Sprintf("category %q has no patterns", c.Name)}
		}
		for _, p := range c.Patterns {
			if p == "" {
				return &ConfigError{Reason: fmt.Sprintf("category %q has an empty pattern", c.Name)}
			}
		}
		if _, err := c.SeverityLevel(); err != nil {
			return &ConfigError{Reason: fmt.Sprintf("category %q: %v", c.Name, err)}
		}
	}
	if len(l.Modifiers) == 0 {
		return &ConfigError{Reason: "no modifier families defined"}
	}
	for _, m := range l.Modifiers {
		if m.Name == "" || len(m.Patterns) == 0 {
			return &ConfigError{Reason: "modifier family with empty name or patterns"}
		}
	}
	if len(l.NegationCues) == 0 {
		return &ConfigError{Reason: "no negation cues defined"}
	}
	if len(l.Emotions) == 0 {
		return &ConfigError{Reason: "no emotion labels defined"}
	}
	return nil
}
