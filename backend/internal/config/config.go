package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration. It is loaded once from the
// environment before the service starts; the pipeline never consults the
// environment afterwards.
type Config struct {
	Server   ServerConfig
	Lexicon  LexiconConfig
	Assessor AssessorConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int64
}

// LexiconConfig holds rule-table loading settings.
type LexiconConfig struct {
	// Directory with YAML lexicon overlays; empty means built-in tables.
	Directory string
	// ResourcePath is an optional YAML overlay for the crisis-resource
	// directory.
	ResourcePath string
}

// AssessorConfig holds the documented pipeline tunables.
type AssessorConfig struct {
	// NegationWindow is the number of preceding tokens scanned for a
	// negation cue.
	NegationWindow int
	// TrendWindow is the number of trailing emotional states consulted for
	// sustained worsening.
	TrendWindow int
	// MaxMessageBytes truncates oversized messages before analysis.
	MaxMessageBytes int
	// PreferVeteranResources leads crisis messages with veteran-specific
	// lines when the country has them.
	PreferVeteranResources bool
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	AuditPath string // empty = stdout
}

// MetricsConfig holds metrics settings.
type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:    time.Duration(getEnvInt("SERVER_READ_TIMEOUT_SEC", 15)) * time.Second,
			WriteTimeout:   time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT_SEC", 30)) * time.Second,
			MaxRequestSize: int64(getEnvInt("SERVER_MAX_REQUEST_SIZE", 64*1024)),
		},
		Lexicon: LexiconConfig{
			Directory:    getEnv("LEXICON_DIR", ""),
			ResourcePath: getEnv("RESOURCE_DIRECTORY_PATH", ""),
		},
		Assessor: AssessorConfig{
			NegationWindow:         getEnvInt("NEGATION_WINDOW", 5),
			TrendWindow:            getEnvInt("TREND_WINDOW", 3),
			MaxMessageBytes:        getEnvInt("MAX_MESSAGE_BYTES", 8*1024),
			PreferVeteranResources: getEnvBool("PREFER_VETERAN_RESOURCES", true),
		},
		Logging: LoggingConfig{
			AuditPath: getEnv("AUDIT_LOG_PATH", ""),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvBool("METRICS_ENABLED", true),
		},
	}
}

// getEnv retrieves an environment variable with a fallback.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable with a fallback.
func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvBool retrieves a boolean environment variable with a fallback.
func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
