// Package config loads dashboard configuration from the environment and
// optional .env files.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"accredash/internal/domain"
)

// DefaultEnvFiles are loaded, when present, before the environment is parsed.
var DefaultEnvFiles = []string{".env", ".env.local"}

// Config holds the parsed dashboard configuration.
type Config struct {
	APIURL         string `env:"ACCREDASH_API_URL" envDefault:"http://localhost:8080/api"`
	AssetsURL      string `env:"ACCREDASH_ASSETS_URL"`
	APIToken       string `env:"ACCREDASH_API_TOKEN"`
	HomeDepartment string `env:"ACCREDASH_HOME_DEPARTMENT" envDefault:"CCS"`
	ExportDir      string `env:"ACCREDASH_EXPORT_DIR"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogPath  string `env:"LOG_PATH"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"accredash"`
}

// LoadEnvFiles loads the env files that exist and returns how many were read.
// Variables already set in the environment win over file contents.
func LoadEnvFiles(files []string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if info, err := os.Stat(f); err == nil && !info.IsDir() {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return 0, fmt.Errorf("load env files: %w", err)
	}
	return len(existing), nil
}

// Load reads env files, parses the environment and validates the result.
func Load(envFiles ...string) (*Config, error) {
	if _, err := LoadEnvFiles(envFiles); err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() error {
	if c.AssetsURL == "" {
		c.AssetsURL = c.APIURL
	}
	if c.ExportDir != "" && c.LogPath != "" {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home dir: %w", err)
	}
	base := filepath.Join(home, ".accredash")
	if c.ExportDir == "" {
		c.ExportDir = filepath.Join(base, "exports")
	}
	if c.LogPath == "" {
		c.LogPath = filepath.Join(base, "accredash.log")
	}
	return nil
}

// Validate rejects malformed URLs, unknown departments and log levels.
func (c *Config) Validate() error {
	if err := validateURL("ACCREDASH_API_URL", c.APIURL); err != nil {
		return err
	}
	if err := validateURL("ACCREDASH_ASSETS_URL", c.AssetsURL); err != nil {
		return err
	}
	c.HomeDepartment = strings.ToUpper(strings.TrimSpace(c.HomeDepartment))
	if !domain.HasDepartment(c.HomeDepartment) {
		return fmt.Errorf("invalid ACCREDASH_HOME_DEPARTMENT=%q (expected one of %s)",
			c.HomeDepartment, strings.Join(domain.Departments(), ", "))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid %s=%q (expected absolute http(s) URL)", name, raw)
	}
	return nil
}
