// SPDX-License-Identifier: EPL-2.0

// Package config loads CLI settings from an optional YAML file and
// AUDTRIM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "AUDTRIM"
	FileName  = "audtrim"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	LogLevel      string  `mapstructure:"log_level" yaml:"log_level"`
	LogFormat     string  `mapstructure:"log_format" yaml:"log_format"`
	MaxAssetBytes int64   `mapstructure:"max_asset_bytes" yaml:"max_asset_bytes"`
	Predict       Predict `mapstructure:"predict" yaml:"predict"`
}

type Predict struct {
	URL     string        `mapstructure:"url" yaml:"url"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
	// SampleRate resamples the exported clip before upload; 0 sends it as is.
	SampleRate int `mapstructure:"sample_rate" yaml:"sample_rate"`
}

// SetDefaults registers every key so environment overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("max_asset_bytes", int64(100<<20))
	v.SetDefault("predict.url", "http://localhost:5000")
	v.SetDefault("predict.timeout", 60*time.Second)
	v.SetDefault("predict.sample_rate", 0)
}

// Load reads path when given, otherwise looks for audtrim.yaml in the
// working directory and in $HOME/.config/audtrim. A missing file in the
// search path is not an error; a missing explicit path is.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q, want text or json", ErrInvalid, c.LogFormat)
	}

	if c.MaxAssetBytes <= 0 {
		return fmt.Errorf("%w: max_asset_bytes must be positive, got %d", ErrInvalid, c.MaxAssetBytes)
	}

	if c.Predict.URL == "" {
		return fmt.Errorf("%w: predict.url is empty", ErrInvalid)
	}

	if c.Predict.Timeout <= 0 {
		return fmt.Errorf("%w: predict.timeout must be positive, got %s", ErrInvalid, c.Predict.Timeout)
	}

	if c.Predict.SampleRate < 0 {
		return fmt.Errorf("%w: predict.sample_rate must not be negative, got %d", ErrInvalid, c.Predict.SampleRate)
	}

	return nil
}
