package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForCountryKnownCodes(t *testing.T) {
	d := DefaultDirectory()

	gb := d.ForCountry("GB")
	require.Equal(t, "United Kingdom", gb.Country)
	require.Equal(t, "999", gb.Emergency)
	require.NotEmpty(t, gb.GeneralCrisis)
	require.NotEmpty(t, gb.VeteranSpecific)

	us := d.ForCountry("US")
	require.Equal(t, "911", us.Emergency)
}

func TestForCountryIsCaseInsensitive(t *testing.T) {
	d := DefaultDirectory()

	require.Equal(t, d.ForCountry("GB"), d.ForCountry("gb"))
	require.Equal(t, d.ForCountry("US"), d.ForCountry(" us "))
}

func TestForCountryUnknownFallsBack(t *testing.T) {
	d := DefaultDirectory()

	intl := d.ForCountry("ZZ")
	require.Equal(t, "Unknown", intl.Country)
	require.NotEmpty(t, intl.GeneralCrisis)
	require.Empty(t, intl.VeteranSpecific)
}

func TestCountriesListsAllConfigured(t *testing.T) {
	d := DefaultDirectory()
	require.ElementsMatch(t, []string{"GB", "US", "CA", "AU", "IE", "NZ"}, d.Countries())
}

func TestVerifyListsPhoneLines(t *testing.T) {
	d := DefaultDirectory()

	report := d.Verify()
	require.Len(t, report, 6)
	require.Contains(t, report["GB - United Kingdom"], "Samaritans: 116 123")
}

func TestLoadWithoutPathUsesBuiltins(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "999", d.ForCountry("GB").Emergency)
}

func TestLoadMissingFileUsesBuiltins(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "999", d.ForCountry("GB").Emergency)
}

func TestLoadOverlayReplacesCountry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.yaml")
	overlay := `
countries:
  de:
    country: Germany
    emergency: "112"
    general_crisis:
      - name: Telefonseelsorge
        phone: 0800 111 0 111
        hours: 24/7
  GB:
    country: United Kingdom
    emergency: "999"
    general_crisis:
      - name: Samaritans
        phone: "116 123"
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	d, err := Load(path)
	require.NoError(t, err)

	de := d.ForCountry("DE")
	require.Equal(t, "Germany", de.Country)
	require.Equal(t, "112", de.Emergency)

	// Replaced wholesale: the overlay entry has no veteran section.
	gb := d.ForCountry("GB")
	require.Empty(t, gb.VeteranSpecific)
	require.Len(t, gb.GeneralCrisis, 1)

	// Untouched countries keep the built-in data.
	require.Equal(t, "911", d.ForCountry("US").Emergency)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.yaml")
	require.NoError(t, os.WriteFile(path, []byte("countries: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsIncompleteEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resources.yaml")
	overlay := `
countries:
  FR:
    country: France
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing name or emergency number")
}
