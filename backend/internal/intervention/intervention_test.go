package intervention

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havenbridge/crisis-sentinel/backend/internal/assessor"
	"github.com/havenbridge/crisis-sentinel/backend/internal/risk"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		a    assessor.Assessment
		want Type
	}{
		{"none stays none", assessor.Assessment{Level: risk.None}, None},
		{"low gets a gentle check in", assessor.Assessment{Level: risk.Low}, GentleCheckIn},
		{"medium gets direct concern", assessor.Assessment{Level: risk.Medium}, DirectConcern},
		{"plain high gets crisis response", assessor.Assessment{Level: risk.High}, CrisisResponse},
		{
			"high with modifiers gets emergency resources",
			assessor.Assessment{Level: risk.High, Modifiers: []string{"means"}},
			EmergencyResources,
		},
		{"critical gets emergency resources", assessor.Assessment{Level: risk.Critical}, EmergencyResources},
		{
			"fail-safe outcome gets at least crisis response",
			assessor.Assessment{Level: risk.High, Failed: true},
			CrisisResponse,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Select(tt.a))
		})
	}
}

func TestRequiresIntervention(t *testing.T) {
	require.False(t, RequiresIntervention(assessor.Assessment{Level: risk.Medium}))
	require.True(t, RequiresIntervention(assessor.Assessment{Level: risk.High}))
	require.True(t, RequiresIntervention(assessor.Assessment{Level: risk.Critical}))
}

func TestRequiresFollowup(t *testing.T) {
	require.False(t, RequiresFollowup(assessor.Assessment{Level: risk.None}))
	require.True(t, RequiresFollowup(assessor.Assessment{Level: risk.Low}))
	require.True(t, RequiresFollowup(assessor.Assessment{Level: risk.Medium}))
	require.False(t, RequiresFollowup(assessor.Assessment{Level: risk.High}))
}
