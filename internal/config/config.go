// Package config provides configuration loading and validation for the dashboard.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/jobtracker/internal/schemas"
	schemafiles "github.com/jonathan/jobtracker/schemas"
)

// Defaults used when neither the config file nor the environment sets a value.
const (
	DefaultPort           = 8080
	DefaultParseDelay     = 1500 * time.Millisecond
	DefaultMaxUploadBytes = int64(10 << 20)
)

// Duration is a time.Duration that reads and writes as a Go duration string ("1500ms").
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"1500ms\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	// Zero would be indistinguishable from unset and silently become the default.
	if parsed <= 0 {
		return fmt.Errorf("invalid duration %q: must be positive", s)
	}
	*d = Duration(parsed)
	return nil
}

// Config represents the dashboard configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from the environment or defaults.
type Config struct {
	Port           int      `json:"port,omitempty"`             // HTTP listen port
	ParseDelay     Duration `json:"parse_delay,omitempty"`      // Mock resume parse latency
	Dataset        string   `json:"dataset,omitempty"`          // Path to a job catalog JSON file
	MaxUploadBytes int64    `json:"max_upload_bytes,omitempty"` // Largest accepted resume upload
	Verbose        bool     `json:"verbose,omitempty"`          // Print detailed debug information
}

var fileSchema = schemas.MustCompile(schemafiles.Config, schemafiles.MustRead(schemafiles.Config))

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:           DefaultPort,
		ParseDelay:     Duration(DefaultParseDelay),
		MaxUploadBytes: DefaultMaxUploadBytes,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("failed to parse config JSON: %s", path)
	}
	if err := fileSchema.Validate(data); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Resolve builds the effective configuration: the file at path (if any),
// then environment variables, then defaults.
func Resolve(path string) (Config, error) {
	var cfg Config
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(FromEnv()).MergeWithDefaults(Defaults())
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.ParseDelay < 0 {
		return fmt.Errorf("config error: 'parse_delay' must be positive")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}

	if c.Dataset != "" {
		if _, err := os.Stat(c.Dataset); os.IsNotExist(err) {
			return fmt.Errorf("config error: dataset file not found: %s", c.Dataset)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c Config) MergeWithDefaults(defaults Config) Config {
	result := c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.ParseDelay == 0 {
		result.ParseDelay = defaults.ParseDelay
	}
	if result.Dataset == "" {
		result.Dataset = defaults.Dataset
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}

	// Bool fields: cannot distinguish unset from false, so a true anywhere wins
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

// Delay returns the parse delay as a time.Duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.ParseDelay)
}
