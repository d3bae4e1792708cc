// Package responder assembles the outward support message shown to a user
// after a high-risk assessment. It consumes the resource directory and the
// finished assessment; it has no influence on risk computation.
package responder

import (
	"strings"

	"github.com/havenbridge/crisis-sentinel/backend/internal/resources"
	"github.com/havenbridge/crisis-sentinel/backend/internal/risk"
)

// Responder produces a user-facing crisis message for a country and level.
type Responder interface {
	CrisisMessage(countryCode string, level risk.Level) string
}

// TemplateResponder renders plain-text messages from the directory,
// leading with population-specific resources when available.
type TemplateResponder struct {
	dir           *resources.Directory
	preferVeteran bool
}

// New creates a TemplateResponder over the given directory.
func New(dir *resources.Directory, preferVeteran bool) *TemplateResponder {
	return &TemplateResponder{dir: dir, preferVeteran: preferVeteran}
}

// CrisisMessage builds the message. Critical leads with an immediate-safety
// framing; lower levels use a softer offer of support.
func (r *TemplateResponder) CrisisMessage(countryCode string, level risk.Level) string {
	res := r.dir.ForCountry(countryCode)
	var lines []string

	if level >= risk.Critical {
		lines = append(lines, "I'm concerned about you right now and I want to make sure you're safe. Please reach out to one of these:")
	} else {
		lines = append(lines, "I want you to know that support is available if you need it:")
	}
	lines = append(lines, "")

	primary := res.GeneralCrisis
	var secondary []resources.Resource
	if r.preferVeteran && len(res.VeteranSpecific) > 0 {
		primary = res.VeteranSpecific
		secondary = res.GeneralCrisis
	}

	for _, entry := range take(primary, 2) {
		lines = append(lines, formatLine(entry, true))
	}
	if len(secondary) > 0 {
		lines = append(lines, "")
		for _, entry := range take(secondary, 1) {
			lines = append(lines, formatLine(entry, false))
		}
	}

	lines = append(lines, "")
	lines = append(lines, "If you are in immediate danger, please call "+res.Emergency+".")

	return strings.Join(lines, "\n")
}

func formatLine(r resources.Resource, full bool) string {
	line := "  " + r.Name
	if r.Phone != "" {
		line += " — " + r.Phone
	}
	if full {
		if r.Text != "" {
			line += " — " + r.Text
		}
		if r.Hours != "" {
			line += " (" + r.Hours + ")"
		}
	}
	return line
}

func take(rs []resources.Resource, n int) []resources.Resource {
	if len(rs) > n {
		return rs[:n]
	}
	return rs
}
