// Package config loads foyer configuration from a YAML file with
// FOYER_* environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config is the top-level foyer configuration, corresponding to
// ~/.config/foyer/config.yml.
type Config struct {
	// ContentURL is where the page's content document lives.
	ContentURL string `yaml:"content_url" koanf:"content_url"`
	// EagerImages is how many leading items (document order, across
	// all sections) have their images fetched before the page reveals.
	EagerImages int `yaml:"eager_images" koanf:"eager_images"`
	// HandoffWaitMS bounds the wait for the Steam client to accept a
	// deep link before falling back to the browser.
	HandoffWaitMS int `yaml:"handoff_wait_ms" koanf:"handoff_wait_ms"`
	// ImageWaitMS bounds how long the reveal waits for eager images.
	ImageWaitMS int `yaml:"image_wait_ms" koanf:"image_wait_ms"`
	// PrefsPath overrides the preferences file location.
	PrefsPath string `yaml:"prefs_path" koanf:"prefs_path"`
}

const defaultConfigPath = "~/.config/foyer/config.yml"

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ContentURL:    "https://example.com/content.json",
		EagerImages:   2,
		HandoffWaitMS: 150,
		ImageWaitMS:   2000,
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOYER_CONTENT_URL and friends). A
// missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(resolved); err == nil {
		if err := k.Load(file.Provider(resolved), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", resolved, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", resolved, err)
	}

	// FOYER_CONTENT_URL -> content_url, etc.
	if err := k.Load(env.Provider("FOYER_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOYER_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", resolved, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ContentURL) == "" {
		return fmt.Errorf("content_url is required")
	}
	if c.EagerImages < 0 {
		return fmt.Errorf("eager_images must not be negative")
	}
	if c.HandoffWaitMS <= 0 {
		return fmt.Errorf("handoff_wait_ms must be positive")
	}
	if c.ImageWaitMS <= 0 {
		return fmt.Errorf("image_wait_ms must be positive")
	}
	return nil
}

func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if strings.TrimSpace(cfg.ContentURL) == "" {
		cfg.ContentURL = def.ContentURL
	}
	if cfg.EagerImages < 0 {
		cfg.EagerImages = def.EagerImages
	}
	if cfg.HandoffWaitMS <= 0 {
		cfg.HandoffWaitMS = def.HandoffWaitMS
	}
	if cfg.ImageWaitMS <= 0 {
		cfg.ImageWaitMS = def.ImageWaitMS
	}
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultConfigPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
