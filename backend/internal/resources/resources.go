// Package resources is the country-keyed crisis-resource directory. It is
// consulted only when assembling an outward message; it never influences
// risk computation.
//
// Numbers change. Verify entries before deployment and re-check them
// periodically; Verify exists for that review.
package resources

import "strings"

// Resource is one crisis line or service.
type Resource struct {
	Name  string `yaml:"name" json:"name"`
	Phone string `yaml:"phone,omitempty" json:"phone,omitempty"`
	Text  string `yaml:"text,omitempty" json:"text,omitempty"`
	Hours string `yaml:"hours,omitempty" json:"hours,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Notes string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// CountryResources partitions a country's entries into general lines and
// veteran-specific ones, plus the local emergency number.
type CountryResources struct {
	Country         string     `yaml:"country" json:"country"`
	Emergency       string     `yaml:"emergency" json:"emergency"`
	GeneralCrisis   []Resource `yaml:"general_crisis" json:"general_crisis"`
	VeteranSpecific []Resource `yaml:"veteran_specific" json:"veteran_specific"`
}

// Directory maps ISO 3166-1 alpha-2 country codes to resources. Built once
// at startup and read-only afterwards.
type Directory struct {
	countries map[string]CountryResources
	fallback  CountryResources
}

// ForCountry returns the resources for a country code (case-insensitive),
// falling back to the international directory entries for unknown codes.
func (d *Directory) ForCountry(code string) CountryResources {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if r, ok := d.countries[normalized]; ok {
		return r
	}
	return d.fallback
}

// Countries lists the configured country codes.
func (d *Directory) Countries() []string {
	out := make([]string, 0, len(d.countries))
	for code := range d.countries {
		out = append(out, code)
	}
	return out
}

// Verify dumps every configured phone line per country for manual review.
func (d *Directory) Verify() map[string][]string {
	out := make(map[string][]string)
	for code, c := range d.countries {
		var lines []string
		for _, r := range append(append([]Resource{}, c.VeteranSpecific...), c.GeneralCrisis...) {
			if r.Phone != "" {
				lines = append(lines, r.Name+": "+r.Phone)
			}
		}
		out[code+" - "+c.Country] = lines
	}
	return out
}

// DefaultDirectory returns the built-in directory. Last verified: February
// 2026.
func DefaultDirectory() *Directory {
	return &Directory{
		fallback: CountryResources{
			Country:   "Unknown",
			Emergency: "your local emergency number",
			GeneralCrisis: []Resource{
				{
					Name:  "International Association for Suicide Prevention",
					URL:   "https://www.iasp.info/resources/Crisis_Centres/",
					Notes: "Directory of crisis centres worldwide",
				},
				{
					Name:  "Findahelpline.com",
					URL:   "https://findahelpline.com",
					Notes: "Global directory of crisis helplines by country",
				},
			},
		},
		countries: map[string]CountryResources{
			"GB": {
				Country:   "United Kingdom",
				Emergency: "999",
				GeneralCrisis: []Resource{
					{Name: "Samaritans", Phone: "116 123", Hours: "24/7", URL: "https://www.samaritans.org", Notes: "Free to call, 24 hours a day"},
					{Name: "Crisis Text Line UK", Text: "Text SHOUT to 85258", Hours: "24/7", URL: "https://giveusashout.org", Notes: "Free, confidential text support"},
					{Name: "NHS 111", Phone: "111", Hours: "24/7", URL: "https://111.nhs.uk", Notes: "Option 2 for mental health crisis"},
				},
				VeteranSpecific: []Resource{
					{Name: "Combat Stress 24/7 Helpline", Phone: "0800 138 1619", Hours: "24/7", URL: "https://www.combatstress.org.uk", Notes: "Free, specifically for UK veterans"},
					{Name: "Veterans Gateway", Phone: "0808 802 1212", Text: "Text 81212", Hours: "24/7", URL: "https://www.veteransgateway.org.uk", Notes: "Connects veterans to relevant support services"},
					{Name: "Op COURAGE (NHS)", Phone: "Refer via GP or self-refer", Hours: "Office hours", URL: "https://www.nhs.uk/mental-health/veterans", Notes: "NHS specialist mental health service for veterans"},
				},
			},
			"US": {
				Country:   "United States",
				Emergency: "911",
				GeneralCrisis: []Resource{
					{Name: "988 Suicide and Crisis Lifeline", Phone: "988", Text: "Text 988", Hours: "24/7", URL: "https://988lifeline.org", Notes: "Call or text 988"},
					{Name: "Crisis Text Line", Text: "Text HOME to 741741", Hours: "24/7", URL: "https://www.crisistextline.org", Notes: "Free, confidential text support"},
				},
				VeteranSpecific: []Resource{
					{Name: "Veterans Crisis Line", Phone: "988 then press 1", Text: "Text 838255", Hours: "24/7", URL: "https://www.veteranscrisisline.net", Notes: "Dedicated support for veterans, service members, and families"},
					{Name: "Make the Connection", URL: "https://maketheconnection.net", Notes: "VA resource connecting veterans to mental health support"},
				},
			},
			"CA": {
				Country:   "Canada",
				Emergency: "911",
				GeneralCrisis: []Resource{
					{Name: "Talk Suicide Canada", Phone: "1-833-456-4566", Text: "Text 45645 (4pm-midnight ET)", Hours: "24/7 phone, limited text hours", URL: "https://talksuicide.ca", Notes: "National crisis line"},
					{Name: "Crisis Services Canada", Phone: "1-833-456-4566", Hours: "24/7", URL: "https://www.crisisservicescanada.ca", Notes: "Available nationwide"},
				},
				VeteranSpecific: []Resource{
					{Name: "Veterans Affairs Canada — OSI Crisis Line", Phone: "1-800-268-7708", Hours: "24/7", URL: "https://www.veterans.gc.ca", Notes: "Operational stress injury support for Canadian veterans and their families"},
				},
			},
			"AU": {
				Country:   "Australia",
				Emergency: "000",
				GeneralCrisis: []Resource{
					{Name: "Lifeline", Phone: "13 11 14", Text: "Text 0477 13 11 14", Hours: "24/7", URL: "https://www.lifeline.org.au", Notes: "Crisis support and suicide prevention"},
					{Name: "Beyond Blue", Phone: "1300 22 4636", Hours: "24/7", URL: "https://www.beyondblue.org.au", Notes: "Anxiety, depression and suicide prevention support"},
					{Name: "Suicide Call Back Service", Phone: "1300 659 467", Hours: "24/7", URL: "https://www.suicidecallbackservice.org.au", Notes: "Professional telephone and online counselling"},
				},
				VeteranSpecific: []Resource{
					{Name: "Open Arms — Veterans and Families Counselling", Phone: "1800 011 046", Hours: "24/7", URL: "https://www.openarms.gov.au", Notes: "Free, confidential counselling for current and former Australian Defence Force members and their families"},
				},
			},
			"IE": {
				Country:   "Ireland",
				Emergency: "999 or 112",
				GeneralCrisis: []Resource{
					{Name: "Samaritans Ireland", Phone: "116 123", Hours: "24/7", URL: "https://www.samaritans.org/ireland", Notes: "Free to call at any time"},
					{Name: "Pieta", Phone: "116 123", Text: "Text HELLO to 51444", Hours: "24/7", URL: "https://www.pieta.ie", Notes: "Suicide and self-harm crisis intervention"},
				},
			},
			"NZ": {
				Country:   "New Zealand",
				Emergency: "111",
				GeneralCrisis: []Resource{
					{Name: "Lifeline Aotearoa", Phone: "0800 543 354", Text: "Text 4357", Hours: "24/7", URL: "https://www.lifeline.org.nz", Notes: "Free crisis support"},
					{Name: "Suicide Crisis Helpline", Phone: "0508 828 865", Hours: "24/7", URL: "https://www.lifeline.org.nz", Notes: "Dedicated suicide crisis support"},
				},
				VeteranSpecific: []Resource{
					{Name: "Veterans Affairs New Zealand", Phone: "0800 483 8372", Hours: "Office hours", URL: "https://www.veteransaffairs.mil.nz", Notes: "Support services for New Zealand veterans"},
				},
			},
		},
	}
}
