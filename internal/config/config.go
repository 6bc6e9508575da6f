// Package config loads the configuration of the sweeper command.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all sweeper configuration.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Agent AgentConfig `yaml:"agent"`
	Log   LogConfig   `yaml:"log"`
}

// BoardConfig tells which board to play on.
type BoardConfig struct {
	Path string `yaml:"path" env:"SWEEPER_BOARD"`
}

// AgentConfig configures the knowledge agent.
type AgentConfig struct {
	// Seed of the random moves. 0 means a new seed for each run.
	Seed uint64 `yaml:"seed" env:"SWEEPER_SEED"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level       string `yaml:"level" env:"SWEEPER_LOG_LEVEL" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development" env:"SWEEPER_LOG_DEVELOPMENT"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the configuration from the YAML file at path, if path is not empty,
// then applies the overrides found in the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config %q: %w", path, err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks that all fields have acceptable values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
