// Package config loads fpgabuild settings.
//
// Sources are applied in order, later ones winning:
//
//  1. built-in defaults
//  2. a YAML file (--config)
//  3. variables from ./.env, when present
//  4. FPGABUILD_* environment variables, e.g. FPGABUILD_SERVER_ADDRESS,
//     FPGABUILD_LOG_LEVEL, FPGABUILD_DEFAULTS_TOOLCHAIN,
//     FPGABUILD_COEFFICIENTS_SYNTHESIS
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/ja7ad/fpgabuild/pkg/estimate"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FPGABUILD"

// Config is the complete fpgabuild configuration.
type Config struct {
	Server       ServerConfig          `yaml:"server"`
	Log          LogConfig             `yaml:"log"`
	Defaults     estimate.Input        `yaml:"defaults"`
	Coefficients estimate.Coefficients `yaml:"coefficients"`
}

// ServerConfig controls the HTTP server started by "fpgabuild serve".
type ServerConfig struct {
	Address         string        `yaml:"address" envconfig:"ADDRESS"`
	Mode            string        `yaml:"mode" envconfig:"MODE"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// Default returns the built-in settings. Coefficients are left zero so the
// estimator falls back to its own defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Address:         ":8080",
			Mode:            "release",
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Defaults: estimate.DefaultInput(),
	}
}

// Load builds the configuration. An empty path skips the YAML file; a
// missing .env file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise fail late.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format must be text or json, got %q", c.Log.Format)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode must be debug, release or test, got %q", c.Server.Mode)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: server.shutdown_timeout must be > 0")
	}
	return nil
}
