package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValidatesWithMocks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.UseMocks = true

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config with mocks failed validation: %v", err)
	}
}

func TestValidateRequiresEndpointWithoutMocks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.UseMocks = false
	cfg.Catalog.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing endpoint")
	}
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.UseMocks = true
	cfg.General.LogLevel = "loud"

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "log_level") {
		t.Errorf("expected log_level error, got %v", err)
	}
}

func TestLoadFromReaderOverridesDefaults(t *testing.T) {
	input := `
[general]
log_level = "debug"

[catalog]
endpoint = "https://shop.example.com/api"
timeout = "3s"
cache_ttl = "1h"

[ui]
theme = "mono"
mouse = false
`
	cfg, err := LoadFromReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.General.LogLevel)
	}
	if cfg.Catalog.Endpoint != "https://shop.example.com/api" {
		t.Errorf("Endpoint = %q", cfg.Catalog.Endpoint)
	}
	if cfg.Catalog.Timeout.Duration != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Catalog.Timeout.Duration)
	}
	if cfg.Catalog.CacheTTL.Duration != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.Catalog.CacheTTL.Duration)
	}
	if cfg.UI.Theme != "mono" {
		t.Errorf("Theme = %q, want mono", cfg.UI.Theme)
	}
	if cfg.UI.Mouse {
		t.Error("Mouse = true, want false")
	}
	// Untouched sections keep their defaults.
	if cfg.UI.ImageProtocol != "auto" {
		t.Errorf("ImageProtocol = %q, want default auto", cfg.UI.ImageProtocol)
	}
}

func TestLoadFromReaderRejectsBadDuration(t *testing.T) {
	input := `
[catalog]
timeout = "soon"
`
	if _, err := LoadFromReader(strings.NewReader(input)); err == nil {
		t.Error("expected error for unparseable duration")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("VITRINE_ENDPOINT", "https://env.example.com")
	t.Setenv("VITRINE_THEME", "nord")

	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Catalog.Endpoint != "https://env.example.com" {
		t.Errorf("Endpoint = %q, want env override", cfg.Catalog.Endpoint)
	}
	if cfg.UI.Theme != "nord" {
		t.Errorf("Theme = %q, want nord", cfg.UI.Theme)
	}
}

func TestDurationMarshalRoundTrip(t *testing.T) {
	d := Duration{90 * time.Second}
	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}

	var back Duration
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q): %v", text, err)
	}
	if back.Duration != d.Duration {
		t.Errorf("round trip %v -> %q -> %v", d.Duration, text, back.Duration)
	}
}

func TestNegativeDurationRejected(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("-5s")); err == nil {
		t.Error("expected error for negative duration")
	}
}
