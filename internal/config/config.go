// Package config loads eatnsplit settings.
//
// Precedence, lowest first: defaults, YAML file, .env file, environment
// (EATNSPLIT_*). Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/eatnsplit/internal/models"
	"github.com/mmynk/eatnsplit/pkg/logging"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds runtime settings.
type Config struct {
	LogLevel         string `yaml:"log_level"`
	LogFile          string `yaml:"log_file"`
	MetricsAddr      string `yaml:"metrics_addr"` // empty disables the endpoint
	PlaceholderImage string `yaml:"placeholder_image"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		LogFile:          filepath.Join(os.TempDir(), "eatnsplit.log"),
		PlaceholderImage: models.PlaceholderImage,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), an optional .env in the working directory, and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg.LogLevel = getEnv("EATNSPLIT_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("EATNSPLIT_LOG_FILE", cfg.LogFile)
	cfg.MetricsAddr = getEnv("EATNSPLIT_METRICS_ADDR", cfg.MetricsAddr)
	cfg.PlaceholderImage = getEnv("EATNSPLIT_PLACEHOLDER_IMAGE", cfg.PlaceholderImage)

	return cfg, nil
}

// Validate checks the log level and placeholder image URI.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogLevel, err)
	}
	if c.PlaceholderImage == "" {
		return fmt.Errorf("placeholder image cannot be empty")
	}
	u, err := url.Parse(c.PlaceholderImage)
	if err != nil {
		return fmt.Errorf("invalid placeholder image: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("placeholder image must be an absolute URL: %s", c.PlaceholderImage)
	}
	return nil
}
