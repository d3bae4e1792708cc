package responder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/havenbridge/crisis-sentinel/backend/internal/resources"
	"github.com/havenbridge/crisis-sentinel/backend/internal/risk"
)

func TestCrisisMessageLeadsWithVeteranResources(t *testing.T) {
	r := New(resources.DefaultDirectory(), true)

	msg := r.CrisisMessage("GB", risk.High)
	require.Contains(t, msg, "Combat Stress 24/7 Helpline")
	require.Contains(t, msg, "Samaritans")
	require.Contains(t, msg, "please call 999")

	// Veteran lines come before the general ones.
	require.Less(t, strings.Index(msg, "Combat Stress"), strings.Index(msg, "Samaritans"))
}

func TestCrisisMessageGeneralOnly(t *testing.T) {
	r := New(resources.DefaultDirectory(), false)

	msg := r.CrisisMessage("GB", risk.High)
	require.Contains(t, msg, "Samaritans")
	require.NotContains(t, msg, "Combat Stress")
}

func TestCrisisMessageCriticalFraming(t *testing.T) {
	r := New(resources.DefaultDirectory(), true)

	critical := r.CrisisMessage("US", risk.Critical)
	require.Contains(t, critical, "make sure you're safe")

	high := r.CrisisMessage("US", risk.High)
	require.Contains(t, high, "support is available")
	require.NotContains(t, high, "make sure you're safe")
}

func TestCrisisMessageUnknownCountryUsesInternationalLines(t *testing.T) {
	r := New(resources.DefaultDirectory(), true)

	msg := r.CrisisMessage("ZZ", risk.Critical)
	require.Contains(t, msg, "International Association for Suicide Prevention")
	require.Contains(t, msg, "your local emergency number")
}

func TestCrisisMessageVeteranPreferenceWithoutVeteranLines(t *testing.T) {
	r := New(resources.DefaultDirectory(), true)

	// Ireland has no veteran-specific entries; the general lines lead.
	msg := r.CrisisMessage("IE", risk.High)
	require.Contains(t, msg, "Samaritans Ireland")
	require.Contains(t, msg, "999 or 112")
}
