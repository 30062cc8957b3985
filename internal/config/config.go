// Package config loads gotet's optional YAML settings.
//
// Config file locations (priority order):
//  1. the --config flag
//  2. $GOTET_CONFIG
//  3. ./gotet.yaml
//
// Without a file the defaults apply.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/philipparndt/gotet/pkg/geometry"
	"gopkg.in/yaml.v3"
)

const (
	// EnvVar names the environment variable holding a config path
	EnvVar = "GOTET_CONFIG"
	// LocalFile is the config file looked up in the working directory
	LocalFile = "gotet.yaml"

	DefaultPrecision     = 6
	DefaultOpposite      = 3
	DefaultWatchDebounce = 200 * time.Millisecond
)

// Config holds output and evaluation settings
type Config struct {
	Precision     int      `yaml:"precision"`
	Opposite      int      `yaml:"opposite"`
	WatchDebounce Duration `yaml:"watch_debounce"`
	Tolerance     float64  `yaml:"tolerance"`
}

// Duration wraps time.Duration for YAML marshaling as a string
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the time.Duration value
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// DefaultConfig returns the settings used when no file is found, and the
// base that a config file's keys are decoded over.
func DefaultConfig() *Config {
	return &Config{
		Precision:     DefaultPrecision,
		Opposite:      DefaultOpposite,
		WatchDebounce: Duration(DefaultWatchDebounce),
		Tolerance:     geometry.DegenerateEpsilon,
	}
}

// FindConfigPath returns the first existing config file, or "" when
// none exists. An explicit path is returned as is.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvVar); env != "" {
		return env
	}
	if _, err := os.Stat(LocalFile); err == nil {
		return LocalFile
	}
	return ""
}

// Load finds and loads the config file, or returns defaults if none found
func Load(explicit string) (*Config, string, error) {
	path := FindConfigPath(explicit)
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	// Keys missing from the file keep their defaults; explicit zero
	// values are kept as written.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// Write encodes the config as YAML
func (c *Config) Write(w io.Writer) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := c.Write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Validate checks ranges that the commands rely on
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("precision must be between 0 and 17, got %d", c.Precision)
	}
	if _, err := geometry.FaceIndices(c.Opposite); err != nil {
		return fmt.Errorf("config opposite: %w", err)
	}
	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative")
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative")
	}
	return nil
}
