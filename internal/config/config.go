// ABOUTME: Configuration loading and parsing for the push-notify console
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeout is the uniform request timeout applied to every API call.
const DefaultTimeout = 30 * time.Second

// Config represents the complete console configuration
type Config struct {
	API     APIConfig     `yaml:"api"`
	State   StateConfig   `yaml:"state"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig holds the REST boundary configuration
type APIConfig struct {
	// BaseURL is the server's API root, e.g. http://localhost:8080/api/v1
	BaseURL string `yaml:"base_url"`

	Timeout time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	TimeoutRaw string `yaml:"timeout"`
}

// StateConfig holds the local state database configuration
type StateConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api/v1",
			Timeout: DefaultTimeout,
		},
		State: StateConfig{
			Path: filepath.Join(home, ".push-admin", "state.db"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
// Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := parseDurations(cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.State.Path == "" {
		return fmt.Errorf("state.path is required")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	return nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	if cfg.API.TimeoutRaw != "" {
		timeout, err := time.ParseDuration(cfg.API.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing timeout %q: %w", cfg.API.TimeoutRaw, err)
		}
		cfg.API.Timeout = timeout
	}
	return nil
}
