package assessor

import "errors"

// Per-call fault classes. Each has a defined resolution; none of them ever
// reaches the caller as an error from Assess.
var (
	// ErrMatchEngine marks a keyword matching fault. Resolution: fail-safe
	// HIGH, because severity derivation itself is compromised.
	ErrMatchEngine = errors.New("match engine fault")

	// ErrModifierComputation marks a contextual modifier fault. Resolution:
	// fail-safe HIGH, same reasoning as the match engine.
	ErrModifierComputation = errors.New("modifier computation fault")

	// ErrNegationWindow marks a negation scope fault. Resolution: assume
	// not negated; failing to suppress a false positive is safer than
	// wrongly suppressing a true one.
	ErrNegationWindow = errors.New("negation window fault")

	// ErrHistoryUnavailable marks a history read fault. Resolution: skip
	// the trend adjustment and keep the keyword/context result.
	ErrHistoryUnavailable = errors.New("history unavailable")
)
