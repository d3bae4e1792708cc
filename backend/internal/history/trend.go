package history

import (
	"github.com/havenbridge/crisis-sentinel/backend/internal/analyzer"
)

// DefaultTrendWindow is the number of trailing states inspected for a
// sustained-worsening pattern.
const DefaultTrendWindow = 3

// SustainedWorsening reports whether the window shows a monotonically
// non-improving emotional rank with at least one strict worsening step,
// ending in a negative state. Short or flat windows never qualify, and an
// improving tail always disqualifies.
func SustainedWorsening(window []analyzer.EmotionalState) bool {
	if len(window) < DefaultTrendWindow {
		return false
	}

	worsened := false
	for i := 1; i < len(window); i++ {
		if window[i].Rank < window[i-1].Rank {
			return false
		}
		if window[i].Rank > window[i-1].Rank {
			worsened = true
		}
	}

	return worsened && window[len(window)-1].Negative()
}

// TrendLabel summarizes intensity movement over the window for response
// tone callers: "intensifying", "calming", "stable", or "emerging" when
// there is too little data.
func TrendLabel(window []analyzer.EmotionalState) string {
	if len(window) < 2 {
		return "emerging"
	}

	half := len(window) / 2
	earlier := avgIntensity(window[:half])
	recent := avgIntensity(window[half:])

	switch {
	case recent > earlier+0.2:
		return "intensifying"
	case recent < earlier-0.2:
		return "calming"
	default:
		return "stable"
	}
}

func avgIntensity(states []analyzer.EmotionalState) float64 {
	if len(states) == 0 {
		return 0
	}
	var sum float64
	for _, st := range states {
		sum += st.Intensity
	}
	return sum / float64(len(states))
}

// Summary condenses a session's emotional journey for end-of-session
// consumers.
type Summary struct {
	DominantLabel string  `json:"dominant_label"`
	AvgIntensity  float64 `json:"avg_intensity"`
	MaxIntensity  float64 `json:"max_intensity"`
	Count         int     `json:"count"`
	Trend         string  `json:"trend"`
}

// Summarize builds a Summary from a session's full recorded sequence.
func Summarize(states []analyzer.EmotionalState) Summary {
	if len(states) == 0 {
		return Summary{Trend: "emerging"}
	}

	counts := make(map[string]int)
	var sum, max float64
	for _, st := range states {
		counts[st.Label]++
		sum += st.Intensity
		if st.Intensity > max {
			max = st.Intensity
		}
	}

	dominant := states[0].Label
	for _, st := range states {
		if counts[st.Label] > counts[dominant] {
			dominant = st.Label
		}
	}

	return Summary{
		DominantLabel: dominant,
		AvgIntensity:  sum / float64(len(states)),
		MaxIntensity:  max,
		Count:         len(states),
		Trend:         TrendLabel(states),
	}
}
