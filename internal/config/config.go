// Package config loads the checkrun configuration: built-in defaults,
// overridden by the user file, overridden by the project file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration structure.
type Config struct {
	// Package names the checked package; it appears in the "Check <package>"
	// scope and as the isolated build-cache subdirectory.
	Package string `yaml:"package"`
	// FormatFiles lists the repository metadata files the format verifier
	// checks, in order.
	FormatFiles []string `yaml:"format_files"`
	// GovulncheckVersion pins the dependency-audit tool installed before the
	// audit runs.
	GovulncheckVersion string `yaml:"govulncheck_version"`
	LogLevel           string `yaml:"log_level"`
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("package is required")
	}
	if c.GovulncheckVersion == "" {
		return fmt.Errorf("govulncheck_version is required")
	}
	return nil
}

// Load resolves config from project → user → defaults.
func Load() (*Config, error) {
	cfg := defaults()

	// user-level config
	home, err := os.UserHomeDir()
	if err == nil {
		userPath := filepath.Join(home, ".checkrun", "config.yaml")
		if err := mergeFile(cfg, userPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading user config: %w", err)
		}
	}

	// project-level config (highest priority)
	if err := mergeFile(cfg, ".checkrun.yaml"); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return cfg, nil
}

func mergeFile(dst *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, dst)
}

func defaults() *Config {
	return &Config{
		Package: "checkrun",
		FormatFiles: []string{
			".golangci.yml",
			".github/workflows/ci.yml",
			".github/dependabot.yml",
		},
		GovulncheckVersion: "v1.1.4",
		LogLevel:           "info",
	}
}
