package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahadshabir/poster/errors"
	"github.com/fahadshabir/poster/postal"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, postal.DefaultCheckpointInterval, cfg.Batch.CheckpointInterval)
	assert.Equal(t, postal.LastLabelWins, cfg.DuplicatePolicy())
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"engine": {"languages": ["en"], "country": "us"},
		"batch": {"checkpoint_interval": 500, "duplicate_policy": "first"},
		"log": {"level": "debug", "format": "text"}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, cfg.Engine.Languages)
	assert.Equal(t, 500, cfg.Batch.CheckpointInterval)
	assert.Equal(t, postal.FirstLabelWins, cfg.DuplicatePolicy())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
engine:
  country: gb
batch:
  duplicate_policy: last
nats:
  enabled: true
  url: nats://localhost:4222
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gb", cfg.Engine.Country)
	assert.True(t, cfg.NATS.Enabled)
	// Defaults survive partial files.
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.json", "{nope"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default is valid", func(*Config) {}, true},
		{"negative checkpoint interval", func(c *Config) { c.Batch.CheckpointInterval = -1 }, false},
		{"unknown duplicate policy", func(c *Config) { c.Batch.DuplicatePolicy = "middle" }, false},
		{"unknown log level", func(c *Config) { c.Log.Level = "verbose" }, false},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }, false},
		{"nats enabled without url", func(c *Config) { c.NATS.Enabled = true; c.NATS.URL = "" }, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, errors.IsInvalid(err))
			}
		})
	}
}
