// Package assessor orchestrates the crisis risk pipeline: normalize, match,
// negate, derive base severity, apply contextual modifiers, apply the
// session emotional trend. The orchestration is fail-safe end to end: any
// internal fault yields a HIGH assessment, never a lower level and never a
// panic or error past Assess.
package assessor

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/havenbridge/crisis-sentinel/backend/internal/analyzer"
	"github.com/havenbridge/crisis-sentinel/backend/internal/history"
	"github.com/havenbridge/crisis-sentinel/backend/internal/risk"
)

// Matcher finds keyword-category hits in normalized text.
type Matcher interface {
	Match(text string) ([]analyzer.Match, error)
}

// Negator annotates matches that fall inside a negation scope.
type Negator interface {
	Resolve(matches []analyzer.Match, text string) ([]analyzer.Match, error)
}

// ModifierDetector reports which contextual signal families are present.
type ModifierDetector interface {
	Detect(text string) ([]string, error)
}

// Snapshot is a read-only view of one session's emotional history.
type Snapshot interface {
	Recent(n int) ([]analyzer.EmotionalState, error)
}

// SliceSnapshot adapts a plain state sequence (oldest first) to Snapshot.
type SliceSnapshot []analyzer.EmotionalState

// Recent returns the trailing n states.
func (s SliceSnapshot) Recent(n int) ([]analyzer.EmotionalState, error) {
	if n > 0 && len(s) > n {
		return s[len(s)-n:], nil
	}
	return s, nil
}

// Assessment is the single outcome of assessing one message. Only Level,
// Categories, Modifiers, TrendEscalated and Rationale are semantic; ID and
// Timestamp identify the call, so two assessments of identical input are
// interchangeable apart from them.
type Assessment struct {
	ID             string     `json:"id"`
	Level          risk.Level `json:"level"`
	Categories     []string   `json:"categories"`
	Modifiers      []string   `json:"modifiers"`
	TrendEscalated bool       `json:"trend_escalated"`
	Failed         bool       `json:"failed"`
	Rationale      string     `json:"rationale"`
	Timestamp      time.Time  `json:"timestamp"`
}

// maxContextualSteps caps how far contextual modifiers can raise severity
// above the base unnegated-match level.
const maxContextualSteps = 2

// DefaultMaxMessageBytes bounds the analyzed input. Longer messages are
// truncated, keeping every call a bounded single pass.
const DefaultMaxMessageBytes = 8 * 1024

// Assessor is the per-message state machine. It is stateless per call and
// safe for concurrent use: all mutable data lives on the stack, the tables
// behind the matcher and detectors are immutable after construction.
type Assessor struct {
	matcher     Matcher
	negator     Negator
	modifiers   ModifierDetector
	trendWindow int
	maxBytes    int
	logger      *log.Logger
	now         func() time.Time
	newID       func() string
}

// Config carries the assessor's tunables.
type Config struct {
	// TrendWindow is the number of trailing emotional states consulted for
	// sustained worsening. Values below history.DefaultTrendWindow are
	// clamped up to it; a shorter read window could never satisfy the
	// detector and would silently disable trend escalation.
	TrendWindow int
	// MaxMessageBytes truncates oversized input. Zero means
	// DefaultMaxMessageBytes.
	MaxMessageBytes int
}

// New wires an Assessor from its phase components.
func New(m Matcher, n Negator, d ModifierDetector, cfg Config, logger *log.Logger) *Assessor {
	trendWindow := cfg.TrendWindow
	if trendWindow < history.DefaultTrendWindow {
		trendWindow = history.DefaultTrendWindow
	}
	maxBytes := cfg.MaxMessageBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxMessageBytes
	}

	return &Assessor{
		matcher:     m,
		negator:     n,
		modifiers:   d,
		trendWindow: trendWindow,
		maxBytes:    maxBytes,
		logger:      logger,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
}

// Assess classifies one message. It never returns an error and never
// panics past this boundary: any fault in any phase resolves to HIGH with
// an error rationale.
func (a *Assessor) Assess(message, sessionID string, hist Snapshot) (out Assessment) {
	defer func() {
		if r := recover(); r != nil {
			a.logError("assessment panic session=%s: %v", sessionID, r)
			out = a.failSafe(fmt.Errorf("assessment panic: %v", r))
		}
	}()

	if len(message) > a.maxBytes {
		message = message[:a.maxBytes]
	}

	text := analyzer.Normalize(message)

	matches, err := a.matcher.Match(text)
	if err != nil {
		a.logError("match engine fault session=%s: %v", sessionID, err)
		return a.failSafe(fmt.Errorf("%w: %v", ErrMatchEngine, err))
	}

	resolved, err := a.negator.Resolve(matches, text)
	if err != nil {
		// Conservative direction: treat every match as unnegated.
		a.logError("%v session=%s, assuming not negated: %v", ErrNegationWindow, sessionID, err)
		resolved = matches
	}

	base, categories := deriveBaseSeverity(resolved)

	present, err := a.modifiers.Detect(text)
	if err != nil {
		a.logError("modifier computation fault session=%s: %v", sessionID, err)
		return a.failSafe(fmt.Errorf("%w: %v", ErrModifierComputation, err))
	}

	level := base
	var applied []string
	if base > risk.None && len(present) > 0 {
		steps := len(present)
		if steps > maxContextualSteps {
			steps = maxContextualSteps
		}
		level = base.Escalate(steps)
		applied = present
	}

	trendEscalated := false
	if hist != nil {
		window, err := hist.Recent(a.trendWindow)
		if err != nil {
			a.logError("%v session=%s, skipping trend: %v", ErrHistoryUnavailable, sessionID, err)
		} else if history.SustainedWorsening(window) {
			level = level.Escalate(1)
			trendEscalated = true
		}
	}

	return Assessment{
		ID:             a.newID(),
		Level:          level,
		Categories:     categories,
		Modifiers:      applied,
		TrendEscalated: trendEscalated,
		Rationale:      buildRationale(base, level, categories, applied, trendEscalated),
		Timestamp:      a.now().UTC(),
	}
}

// deriveBaseSeverity returns the highest severity among unnegated matches
// and the deduplicated unnegated category names in match order. Negation
// removes individual signals only; a message with other unnegated signals
// keeps them all.
func deriveBaseSeverity(matches []analyzer.Match) (risk.Level, []string) {
	base := risk.None
	seen := make(map[string]bool)
	var categories []string

	for _, m := range matches {
		if m.Negated {
			continue
		}
		base = risk.Max(base, m.Severity)
		if !seen[m.Category] {
			seen[m.Category] = true
			categories = append(categories, m.Category)
		}
	}

	return base, categories
}

// buildRationale explains the outcome using category and family names only;
// message text never appears here in a form suitable for logging, and the
// audit layer records names and levels exclusively.
func buildRationale(base, final risk.Level, categories, modifiers []string, trend bool) string {
	var parts []string

	if len(categories) == 0 {
		parts = append(parts, "no keyword matches")
	} else {
		parts = append(parts, "matched "+strings.Join(categories, ", "))
	}
	parts = append(parts, fmt.Sprintf("base severity %s", base))

	if len(modifiers) > 0 {
		parts = append(parts, "contextual modifiers: "+strings.Join(modifiers, ", "))
	}
	if trend {
		parts = append(parts, "sustained emotional worsening across session")
	}
	if final != base {
		parts = append(parts, fmt.Sprintf("escalated to %s", final))
	}

	return strings.Join(parts, "; ")
}

func (a *Assessor) failSafe(err error) Assessment {
	return Assessment{
		ID:        a.newID(),
		Level:     risk.High,
		Failed:    true,
		Rationale: fmt.Sprintf("assessment error, failing safe to high: %v", err),
		Timestamp: a.now().UTC(),
	}
}

func (a *Assessor) logError(format string, args ...interface{}) {
	if a.logger != nil {
		a.logger.Printf("[ERROR] "+format, args...)
	}
}
