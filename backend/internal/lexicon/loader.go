package lexicon

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader reads lexicon overlay files from a directory. Loading happens once
// at startup; the returned Lexicon is treated as immutable afterwards.
type Loader struct {
	dir    string
	logger *log.Logger
}

// NewLoader creates a loader rooted at dir. An empty dir means "built-in
// defaults only".
func NewLoader(dir string, logger *log.Logger) *Loader {
	return &Loader{dir: dir, logger: logger}
}

// Load returns the lexicon to run with. If the directory is unset or does
// not exist the built-in Default is used. A directory that exists but holds
// a broken lexicon is a hard error: the service must not start on guessed
// tables.
func (l *Loader) Load() (*Lexicon, error) {
	if l.dir == "" {
		l.logInfo("No lexicon directory configured, using built-in lexicon")
		return Default(), nil
	}

	if _, err := os.Stat(l.dir); os.IsNotExist(err) {
		l.logInfo("Lexicon directory %s does not exist, using built-in lexicon", l.dir)
		return Default(), nil
	}

	files, err := filepath.Glob(filepath.Join(l.dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list lexicon files: %w", err)
	}
	ymlFiles, err := filepath.Glob(filepath.Join(l.dir, "*.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list lexicon files: %w", err)
	}
	files = append(files, ymlFiles...)

	if len(files) == 0 {
		l.logInfo("No lexicon files in %s, using built-in lexicon", l.dir)
		return Default(), nil
	}

	// The first file wins; the directory is expected to hold one lexicon.
	lex, err := l.loadFile(files[0])
	if err != nil {
		return nil, err
	}
	if len(files) > 1 {
		l.logInfo("Multiple lexicon files found, loaded %s and ignored %d others", files[0], len(files)-1)
	}

	if err := lex.Validate(); err != nil {
		return nil, err
	}

	l.logInfo("Loaded lexicon %s (version %s): %d categories, %d modifier families",
		files[0], lex.Version, len(lex.Categories), len(lex.Modifiers))
	return lex, nil
}

func (l *Loader) loadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("failed to parse %s: %v", path, err)}
	}
	return &lex, nil
}

func (l *Loader) logInfo(format string, args ...interface{}) {
	if l.logger != nil {
		l.logger.Printf("[INFO] "+format, args...)
	}
}
