// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
resample:
  target_rate: 16000
  block_size: 512

output:
  bit_depth: 16
  channels: 1

logging:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 16000, cfg.Resample.TargetRate)
	assert.Equal(t, 512, cfg.Resample.BlockSize)
	assert.Equal(t, 16, cfg.Output.BitDepth)
	assert.Equal(t, 1, cfg.Output.Channels)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
}

func TestDefaultValues(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfig(t, `{}`))
	require.NoError(t, err)

	assert.Equal(t, DefaultTargetRate, cfg.Resample.TargetRate)
	assert.Equal(t, DefaultBlockSize, cfg.Resample.BlockSize)
	assert.Equal(t, DefaultBitDepth, cfg.Output.BitDepth)
	assert.Equal(t, DefaultChannels, cfg.Output.Channels)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "resample: [not, a, map"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative target rate", func(c *Config) { c.Resample.TargetRate = -8000 }},
		{"negative block size", func(c *Config) { c.Resample.BlockSize = -1 }},
		{"8-bit output", func(c *Config) { c.Output.BitDepth = 8 }},
		{"no channels", func(c *Config) { c.Output.Channels = -2 }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}
