package analyzer

import (
	"time"

	"github.com/havenbridge/crisis-sentinel/backend/internal/risk"
)

// Match is one keyword-category hit in a message. Matches are produced
// fresh per assessment and annotated in place by the negation resolver.
type Match struct {
	Category string     `json:"category"`
	Severity risk.Level `json:"severity"`
	// Span is the matched text in normalized form. It exists for the
	// negation resolver and for tests; it must never be logged.
	Span    string `json:"-"`
	Start   int    `json:"-"` // byte offset into the normalized text
	End     int    `json:"-"`
	Negated bool   `json:"negated"`
	// CheckNegation carries the category's opt-in flag to the resolver.
	CheckNegation bool `json:"-"`
}

// Modifier family names, fixed set. Detection reports a subset of these in
// this order.
const (
	ModifierSubstance = "substance"
	ModifierIsolation = "isolation"
	ModifierMeans     = "means"
	ModifierFinality  = "finality"
)

// EmotionalState is the per-message emotional classification. It is
// immutable once created; the history store appends copies.
type EmotionalState struct {
	Label     string    `json:"label"`
	Rank      int       `json:"rank"`      // 0 = neutral, higher = worse
	Intensity float64   `json:"intensity"` // 0.0 to 1.0
	Timestamp time.Time `json:"timestamp"`
}

// Negative reports whether the state is on the distressed side of the
// scale. Trend escalation only fires when the window ends in a negative
// state.
func (s EmotionalState) Negative() bool {
	return s.Rank >= rankSad
}

// rankSad is the threshold for a negative state; it mirrors the default
// lexicon's emotion ranks.
const rankSad = 3
