package resources

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// directoryFile is the YAML overlay shape. Countries present in the file
// replace the built-in entry wholesale; absent countries keep the built-in
// data.
type directoryFile struct {
	Countries map[string]CountryResources `yaml:"countries"`
}

// Load builds the directory from the built-ins plus an optional YAML
// overlay. An empty path means built-ins only; a path that exists but does
// not parse is a hard error, since serving stale or wrong crisis numbers is
// worse than refusing to start.
func Load(path string) (*Directory, error) {
	dir := DefaultDirectory()
	if path == "" {
		return dir, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return dir, nil
		}
		return nil, fmt.Errorf("failed to read resource directory %s: %w", path, err)
	}

	var file directoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse resource directory %s: %w", path, err)
	}

	for code, entry := range file.Countries {
		if entry.Country == "" || entry.Emergency == "" {
			return nil, fmt.Errorf("resource directory %s: country %q missing name or emergency number", path, code)
		}
		dir.countries[strings.ToUpper(strings.TrimSpace(code))] = entry
	}

	return dir, nil
}
