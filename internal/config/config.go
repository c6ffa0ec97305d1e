// Package config loads optional defaults for the CLI from a yaml file.
// Flags always win over the file; the file wins over built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Translation
	Provider     string `yaml:"provider"`
	Model        string `yaml:"model"`
	ChunkSize    int    `yaml:"chunk_size"`
	Workers      int    `yaml:"workers"`
	Instructions string `yaml:"instructions"`

	// Oracle call deadline, e.g. "2m" or "90s"
	Timeout string `yaml:"timeout"`

	// External command oracle
	Oracle struct {
		Command string   `yaml:"command"`
		Args    []string `yaml:"args"`
	} `yaml:"oracle"`
}

func Default() *Config {
	c := &Config{}
	c.Provider = "gemini"
	c.ChunkSize = 50
	c.Workers = 1
	c.Timeout = "2m"
	return c
}

// default config file location, e.g. ~/.config/subtran/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config directory: %w", err)
	}
	return filepath.Join(dir, "subtran", "config.yaml"), nil
}

// Load reads the config file at path. A missing file is not an error;
// built-in defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// parsed oracle call deadline; empty means no deadline
func (c *Config) OracleTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", c.Timeout)
	}
	return d, nil
}
