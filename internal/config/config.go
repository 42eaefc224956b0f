// SPDX-License-Identifier: EPL-2.0

// Package config loads the linresample command configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTargetRate = 22050
	DefaultBlockSize  = 256
	DefaultBitDepth   = 24
	DefaultChannels   = 2
	DefaultLogLevel   = "info"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Resample struct {
		TargetRate int `yaml:"target_rate"`
		BlockSize  int `yaml:"block_size"`
	} `yaml:"resample"`

	Output struct {
		BitDepth int `yaml:"bit_depth"`
		Channels int `yaml:"channels"`
	} `yaml:"output"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Default returns a configuration with every field at its default.
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	config.applyDefaults()

	return config, nil
}

// Set defaults if not specified
func (c *Config) applyDefaults() {
	if c.Resample.TargetRate == 0 {
		c.Resample.TargetRate = DefaultTargetRate
	}
	if c.Resample.BlockSize == 0 {
		c.Resample.BlockSize = DefaultBlockSize
	}
	if c.Output.BitDepth == 0 {
		c.Output.BitDepth = DefaultBitDepth
	}
	if c.Output.Channels == 0 {
		c.Output.Channels = DefaultChannels
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

func (c *Config) Validate() error {
	if c.Resample.TargetRate <= 0 {
		return fmt.Errorf("%w: target_rate %d must be positive", ErrInvalidConfig, c.Resample.TargetRate)
	}
	if c.Resample.BlockSize <= 0 {
		return fmt.Errorf("%w: block_size %d must be positive", ErrInvalidConfig, c.Resample.BlockSize)
	}
	switch c.Output.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: bit_depth %d, want 16, 24 or 32", ErrInvalidConfig, c.Output.BitDepth)
	}
	if c.Output.Channels < 1 {
		return fmt.Errorf("%w: channels %d must be at least 1", ErrInvalidConfig, c.Output.Channels)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel parses Logging.Level for logrus.
func (c *Config) LogLevel() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.Logging.Level)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return level, nil
}
