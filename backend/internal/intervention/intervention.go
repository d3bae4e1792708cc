// Package intervention maps a finished risk assessment onto the downstream
// workflow's response tier. The mapping is a fixed total function so its
// behavior is auditable at a glance; it performs no irreversible action
// itself.
package intervention

import (
	"github.com/havenbridge/crisis-sentinel/backend/internal/assessor"
	"github.com/havenbridge/crisis-sentinel/backend/internal/risk"
)

// Type is the response tier handed to the caller.
type Type string

const (
	None               Type = "none"
	GentleCheckIn      Type = "gentle_check_in"
	DirectConcern      Type = "direct_concern"
	CrisisResponse     Type = "crisis_response"
	EmergencyResources Type = "emergency_resources"
)

// Select chooses the tier for an assessment. High risk with contextual
// modifiers present is treated like critical: the amplifying context means
// the caller should lead with emergency resources rather than a scripted
// crisis reply. A failed (fail-safe) assessment always gets at least a
// crisis response.
func Select(a assessor.Assessment) Type {
	switch a.Level {
	case risk.Critical:
		return EmergencyResources
	case risk.High:
		if len(a.Modifiers) > 0 {
			return EmergencyResources
		}
		return CrisisResponse
	case risk.Medium:
		return DirectConcern
	case risk.Low:
		return GentleCheckIn
	default:
		return None
	}
}

// RequiresIntervention reports whether the caller must act on this
// assessment immediately.
func RequiresIntervention(a assessor.Assessment) bool {
	return a.Level >= risk.High
}

// RequiresFollowup reports whether the session should be flagged for a
// later check-in.
func RequiresFollowup(a assessor.Assessment) bool {
	return a.Level == risk.Low || a.Level == risk.Medium
}
