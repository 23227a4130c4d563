package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-tui-counter/internal/logger"
	"github.com/grindlemire/go-tui-counter/internal/view"
)

// Config holds the counter's runtime settings.
type Config struct {
	// PollTimeout bounds how long each loop iteration waits for input.
	PollTimeout time.Duration `yaml:"poll_timeout" env:"COUNTER_POLL_TIMEOUT"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"COUNTER_LOG_LEVEL"`
	// LogFile receives log output. Empty disables logging; stdout is taken by the UI.
	LogFile string `yaml:"log_file" env:"COUNTER_LOG_FILE"`
}

const (
	// DefaultPollTimeout is the bounded input wait of one loop iteration.
	DefaultPollTimeout = view.DefaultPollTimeout

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// ErrInvalidLogLevel is returned for an unrecognised log level.
	ErrInvalidLogLevel = errors.New("unknown log level")
)

// Default returns a Config with every field at its default.
func Default() *Config {
	return &Config{
		PollTimeout: DefaultPollTimeout,
		LogLevel:    DefaultLogLevel,
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is not empty), then environment variables. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		contents, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("read settings: %w", err)
		}

		if err := yaml.Unmarshal(contents, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal settings: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fills empty fields with defaults and rejects invalid values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	// Zero means unset.
	if cfg.PollTimeout == 0 {
		cfg.PollTimeout = DefaultPollTimeout
	}

	if cfg.PollTimeout < 0 {
		return fmt.Errorf("%w: %s", view.ErrInvalidPollTimeout, cfg.PollTimeout)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.LogLevel)
	}

	return nil
}
