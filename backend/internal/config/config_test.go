package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("default read timeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.Assessor.NegationWindow != 5 {
		t.Errorf("default negation window = %d, want 5", cfg.Assessor.NegationWindow)
	}
	if cfg.Assessor.TrendWindow != 3 {
		t.Errorf("default trend window = %d, want 3", cfg.Assessor.TrendWindow)
	}
	if cfg.Assessor.MaxMessageBytes != 8*1024 {
		t.Errorf("default max message bytes = %d, want 8192", cfg.Assessor.MaxMessageBytes)
	}
	if !cfg.Assessor.PreferVeteranResources {
		t.Error("veteran resources should be preferred by default")
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should be enabled by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("NEGATION_WINDOW", "7")
	t.Setenv("PREFER_VETERAN_RESOURCES", "false")
	t.Setenv("LEXICON_DIR", "/etc/sentinel/lexicon")

	cfg := Load()
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Assessor.NegationWindow != 7 {
		t.Errorf("negation window = %d, want 7", cfg.Assessor.NegationWindow)
	}
	if cfg.Assessor.PreferVeteranResources {
		t.Error("veteran preference should be off")
	}
	if cfg.Lexicon.Directory != "/etc/sentinel/lexicon" {
		t.Errorf("lexicon dir = %q", cfg.Lexicon.Directory)
	}
}

func TestLoadIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("METRICS_ENABLED", "sometimes")

	cfg := Load()
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want fallback 8080", cfg.Server.Port)
	}
	if !cfg.Metrics.Enabled {
		t.Error("metrics should fall back to enabled")
	}
}
