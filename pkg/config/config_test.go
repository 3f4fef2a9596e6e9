package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte("base_url: https://zac.example.nl\nsession_id: abc\ncsrf_token: xyz\nbronorganisatie: \"123456782\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "https://zac.example.nl" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.SessionID != "abc" || cfg.CSRFToken != "xyz" {
		t.Errorf("session = %q/%q, want abc/xyz", cfg.SessionID, cfg.CSRFToken)
	}
	if cfg.Locale != "nl-NL" {
		t.Errorf("Locale = %q, want default nl-NL", cfg.Locale)
	}
}

func TestLoad_RequiresBaseURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("locale: nl-NL\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for config without base_url")
	}
}

func TestLoadOrDefault_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("ZAC_BASE_URL", "https://zac.example.nl")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("LoadOrDefault returned error: %v", err)
	}
	if cfg.BaseURL != "https://zac.example.nl" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
}

func TestLoadOrDefault_MissingFileAndEnv(t *testing.T) {
	t.Setenv("ZAC_BASE_URL", "")

	if _, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected error when neither config nor ZAC_BASE_URL exist")
	}
}
