package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"shapeshift/internal/document"
)

// LogEnv names the environment variable holding the default log level.
const LogEnv = "SHAPESHIFT_LOG"

// Config holds the settings of one run. It is read from an optional YAML
// file; command line flags override it.
type Config struct {
	Data     string `yaml:"data"`
	Spec     string `yaml:"spec"`
	Extra    string `yaml:"extra,omitempty"`
	Out      string `yaml:"out,omitempty"`
	Format   string `yaml:"format,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	Strict   bool   `yaml:"strict,omitempty"`
}

// LoadConfig loads and parses a YAML config file from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML data into a Config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields and checks the
// enumerated ones.
func applyDefaults(cfg *Config) error {
	if cfg.Format == "" {
		cfg.Format = string(document.FormatJSON)
	}

	format, err := document.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	cfg.Format = string(format)

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv(LogEnv)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if hclog.LevelFromString(cfg.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	return nil
}
