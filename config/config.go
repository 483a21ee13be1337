package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fahadshabir/poster/errors"
	"github.com/fahadshabir/poster/postal"
)

// Duplicate-label policy names accepted in configuration.
const (
	PolicyLast  = "last"
	PolicyFirst = "first"
)

// Config represents the complete application configuration.
type Config struct {
	Version string       `json:"version" yaml:"version"`
	Engine  EngineConfig `json:"engine" yaml:"engine"`
	Batch   BatchConfig  `json:"batch" yaml:"batch"`
	NATS    NATSConfig   `json:"nats,omitempty" yaml:"nats,omitempty"`
	Log     LogConfig    `json:"log" yaml:"log"`
}

// EngineConfig locates and hints the address engine.
type EngineConfig struct {
	// DataDir is where the engine's model data lives. Empty means the
	// engine's compiled-in default.
	DataDir string `json:"data_dir,omitempty" yaml:"data_dir,omitempty"`
	// Languages restricts expansion to the given language codes.
	Languages []string `json:"languages,omitempty" yaml:"languages,omitempty"`
	// Country is an optional ISO country-code parsing hint.
	Country string `json:"country,omitempty" yaml:"country,omitempty"`
}

// BatchConfig tunes batch processing.
type BatchConfig struct {
	// CheckpointInterval is how many elements run between cooperative
	// cancellation checks. Zero means the default of 10000.
	CheckpointInterval int `json:"checkpoint_interval,omitempty" yaml:"checkpoint_interval,omitempty"`
	// DuplicatePolicy is "last" (default) or "first".
	DuplicatePolicy string `json:"duplicate_policy,omitempty" yaml:"duplicate_policy,omitempty"`
}

// NATSConfig defines the optional request-reply surface.
type NATSConfig struct {
	Enabled       bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	URL           string `json:"url,omitempty" yaml:"url,omitempty"`
	SubjectPrefix string `json:"subject_prefix,omitempty" yaml:"subject_prefix,omitempty"`
}

// LogConfig defines logging behavior.
type LogConfig struct {
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Batch: BatchConfig{
			CheckpointInterval: postal.DefaultCheckpointInterval,
			DuplicatePolicy:    PolicyLast,
		},
		NATS: NATSConfig{
			URL:           "nats://127.0.0.1:4222",
			SubjectPrefix: "poster",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a configuration file, JSON or YAML by extension, on top of
// the defaults, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapInvalid(err, "config", "Load", "read config file")
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapInvalid(err, "config", "Load", "parse YAML")
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapInvalid(err, "config", "Load", "parse JSON")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Batch.CheckpointInterval < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: checkpoint_interval must not be negative", errors.ErrInvalidConfig),
			"config", "Validate", "check batch settings")
	}

	switch c.Batch.DuplicatePolicy {
	case "", PolicyLast, PolicyFirst:
	default:
		return errors.WrapInvalid(
			fmt.Errorf("%w: duplicate_policy must be %q or %q", errors.ErrInvalidConfig, PolicyLast, PolicyFirst),
			"config", "Validate", "check batch settings")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.WrapInvalid(
			fmt.Errorf("%w: unknown log level %q", errors.ErrInvalidConfig, c.Log.Level),
			"config", "Validate", "check log settings")
	}

	switch c.Log.Format {
	case "", "json", "text":
	default:
		return errors.WrapInvalid(
			fmt.Errorf("%w: unknown log format %q", errors.ErrInvalidConfig, c.Log.Format),
			"config", "Validate", "check log settings")
	}

	if c.NATS.Enabled && c.NATS.URL == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: nats.url", errors.ErrMissingConfig),
			"config", "Validate", "check nats settings")
	}

	return nil
}

// DuplicatePolicy resolves the configured policy name.
func (c *Config) DuplicatePolicy() postal.DuplicatePolicy {
	if c.Batch.DuplicatePolicy == PolicyFirst {
		return postal.FirstLabelWins
	}
	return postal.LastLabelWins
}
