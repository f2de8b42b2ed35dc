// Package config defines the vitrine configuration schema and TOML loading.
// Files are searched in the XDG config directory; every field has a default
// so an empty or missing file still yields a runnable setup.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration document.
type Config struct {
	General GeneralConfig `toml:"general"`
	Catalog CatalogConfig `toml:"catalog"`
	UI      UIConfig      `toml:"ui"`
}

// GeneralConfig holds process-level settings.
type GeneralConfig struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFile, when set, receives a copy of the log stream in addition to
	// stderr.
	LogFile string `toml:"log_file"`

	// CacheDir is where the catalog cache lives on disk.
	CacheDir string `toml:"cache_dir"`
}

// CatalogConfig controls where product data comes from.
type CatalogConfig struct {
	// Endpoint is the base URL of the catalog API. Required unless
	// UseMocks is set.
	Endpoint string `toml:"endpoint"`

	// Timeout bounds each catalog HTTP request.
	Timeout Duration `toml:"timeout"`

	// CacheTTL is how long a fetched catalog stays fresh on disk.
	CacheTTL Duration `toml:"cache_ttl"`

	// UseMocks serves the bundled fixture catalog instead of the network.
	UseMocks bool `toml:"use_mocks"`
}

// UIConfig controls presentation.
type UIConfig struct {
	Theme         string `toml:"theme"`
	Mouse         bool   `toml:"mouse"`
	ImagePreviews bool   `toml:"image_previews"`

	// ImageProtocol is one of auto, kitty, sixel, iterm2, halfblock, none.
	ImageProtocol string `toml:"image_protocol"`
}

// Validate checks the configuration for values that would fail at runtime.
func (c *Config) Validate() error {
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log_level %q is not one of debug, info, warn, error", c.General.LogLevel)
	}

	if !c.Catalog.UseMocks && c.Catalog.Endpoint == "" {
		return fmt.Errorf("config: catalog.endpoint is required unless use_mocks is set")
	}
	if c.Catalog.Timeout.Duration <= 0 {
		return fmt.Errorf("config: catalog.timeout must be positive, got %v", c.Catalog.Timeout.Duration)
	}

	switch c.UI.ImageProtocol {
	case "auto", "kitty", "sixel", "iterm2", "halfblock", "none":
	default:
		return fmt.Errorf("config: ui.image_protocol %q is not one of auto, kitty, sixel, iterm2, halfblock, none", c.UI.ImageProtocol)
	}
	return nil
}

// Duration wraps time.Duration so TOML values can be written as "10s" or
// "15m". Negative durations are rejected.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if parsed < 0 {
		return fmt.Errorf("duration must not be negative, got %s", text)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
