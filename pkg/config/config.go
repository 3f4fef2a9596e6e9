// Package config loads the client configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds everything the client needs to reach the backend.
type Config struct {
	// BaseURL is the backend origin, e.g. https://zac.example.nl.
	BaseURL string `yaml:"base_url"`

	// SessionID and CSRFToken are the cookie values of an
	// authenticated browser session.
	SessionID string `yaml:"session_id"`
	CSRFToken string `yaml:"csrf_token"`

	// Bronorganisatie is the default issuing organisation (RSIN) used
	// when a case is addressed by identificatie alone.
	Bronorganisatie string `yaml:"bronorganisatie"`

	// Locale selects display formatting; defaults to nl-NL.
	Locale string `yaml:"locale"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "zac", "config.yml")
	}
	return filepath.Join(home, ".config", "zac", "config.yml")
}

// Load reads a config file. A missing file is an error; use
// LoadOrDefault when absence is acceptable.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("config %s: base_url is required", path)
	}
	return &cfg, nil
}

// LoadOrDefault reads the config at path, falling back to defaults
// (and the ZAC_BASE_URL environment variable) when the file is absent.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := &Config{BaseURL: os.Getenv("ZAC_BASE_URL")}
		cfg.applyDefaults()
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("no config at %s and ZAC_BASE_URL not set", path)
		}
		return cfg, nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Locale == "" {
		c.Locale = "nl-NL"
	}
}
