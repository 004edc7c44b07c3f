package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "spendwise.yaml"

// Environment variables that override file settings.
const (
	EnvRoot     = "SPENDWISE_ROOT"
	EnvFormat   = "SPENDWISE_FORMAT"
	EnvUser     = "SPENDWISE_USER"
	EnvLogLevel = "SPENDWISE_LOG_LEVEL"
)

// Config represents the top-level spendwise.yaml configuration.
type Config struct {
	Storage    StorageConfig `yaml:"storage"`
	User       UserConfig    `yaml:"user"`
	Display    DisplayConfig `yaml:"display"`
	Input      InputConfig   `yaml:"input"`
	Categories []string      `yaml:"categories,omitempty"`
	Log        LogConfig     `yaml:"log"`
}

// StorageConfig selects where and how ledgers are kept.
type StorageConfig struct {
	Root   string `yaml:"root"`
	Format string `yaml:"format"` // csv, yaml or sqlite
}

// UserConfig holds the user assumed when --user is not given.
type UserConfig struct {
	Default string `yaml:"default,omitempty"`
}

// DisplayConfig controls terminal output.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// InputConfig holds checks applied to new expenses before they are stored.
type InputConfig struct {
	MinAmount float64 `yaml:"min_amount"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Load reads a spendwise.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault reads path, returning defaults if the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Root:   "data",
			Format: "csv",
		},
		Display: DisplayConfig{
			Currency: "₹",
		},
		Input: InputConfig{
			MinAmount: 1.0,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadDotEnv loads variables from a .env file when one exists. Variables
// already set in the environment win.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

// ApplyEnv overrides cfg with SPENDWISE_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvRoot)); v != "" {
		cfg.Storage.Root = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFormat)); v != "" {
		cfg.Storage.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvUser)); v != "" {
		cfg.User.Default = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	var errs []string
	if strings.TrimSpace(c.Storage.Root) == "" {
		errs = append(errs, "storage.root must not be empty")
	}
	switch strings.ToLower(c.Storage.Format) {
	case "csv", "yaml", "yml", "sqlite":
	default:
		errs = append(errs, fmt.Sprintf("storage.format %q must be csv, yaml or sqlite", c.Storage.Format))
	}
	if c.Input.MinAmount < 0 {
		errs = append(errs, "input.min_amount must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}
