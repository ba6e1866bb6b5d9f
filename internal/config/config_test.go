package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/eatnsplit/internal/models"
)

// chdirTemp runs the test from an empty directory so no stray .env is picked up
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.PlaceholderImage != models.PlaceholderImage {
		t.Errorf("PlaceholderImage = %s, want %s", cfg.PlaceholderImage, models.PlaceholderImage)
	}
	if cfg.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %s, want empty", cfg.MetricsAddr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := chdirTemp(t)

	yamlPath := filepath.Join(dir, "eatnsplit.yaml")
	yamlData := "log_level: debug\nmetrics_addr: \":9000\"\nplaceholder_image: https://example.com/a\n"
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0644); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("EATNSPLIT_METRICS_ADDR=:9100\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Setenv("EATNSPLIT_PLACEHOLDER_IMAGE", "https://example.com/env")
	// godotenv never overrides a set variable, even an empty one; Setenv registers cleanup, then unset
	t.Setenv("EATNSPLIT_METRICS_ADDR", "")
	os.Unsetenv("EATNSPLIT_METRICS_ADDR")

	cfg, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug (from yaml)", cfg.LogLevel)
	}
	if cfg.MetricsAddr != ":9100" {
		t.Errorf("MetricsAddr = %s, want :9100 (from .env)", cfg.MetricsAddr)
	}
	if cfg.PlaceholderImage != "https://example.com/env" {
		t.Errorf("PlaceholderImage = %s, want env override", cfg.PlaceholderImage)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	chdirTemp(t)

	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("log_level: [unclosed"), 0644); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"empty image", func(c *Config) { c.PlaceholderImage = "" }, true},
		{"relative image", func(c *Config) { c.PlaceholderImage = "avatars/48" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	cfg := Default()
	cfg.LogLevel = "loud"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidLogLevel) {
		t.Errorf("expected ErrInvalidLogLevel, got %v", err)
	}
}
