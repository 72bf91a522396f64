// Package config loads server settings from BRIDGE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"battlebridge/internal/app/schema"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr               string        `env:"BRIDGE_ADDR" envDefault:":8080"`
	SchemaVersion      string        `env:"BRIDGE_SCHEMA_VERSION" envDefault:"v4"`
	ActionsEnabled     bool          `env:"BRIDGE_ACTIONS_ENABLED" envDefault:"false"`
	DBDSN              string        `env:"BRIDGE_DB_DSN"`
	MigrationsDir      string        `env:"BRIDGE_MIGRATIONS_DIR"`
	RecordObservations bool          `env:"BRIDGE_RECORD_OBSERVATIONS" envDefault:"false"`
	MCPStdio           bool          `env:"BRIDGE_MCP_STDIO" envDefault:"false"`
	LogLevel           string        `env:"BRIDGE_LOG_LEVEL" envDefault:"info"`
	TickInterval       time.Duration `env:"BRIDGE_TICK_INTERVAL" envDefault:"250ms"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: BRIDGE_TICK_INTERVAL must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if _, err := c.HlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) Version() schema.Version {
	return schema.ParseVersion(c.SchemaVersion)
}

func (c Config) HlogLevel() (hlog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "trace":
		return hlog.LevelTrace, nil
	case "debug":
		return hlog.LevelDebug, nil
	case "", "info":
		return hlog.LevelInfo, nil
	case "notice":
		return hlog.LevelNotice, nil
	case "warn", "warning":
		return hlog.LevelWarn, nil
	case "error":
		return hlog.LevelError, nil
	case "fatal":
		return hlog.LevelFatal, nil
	default:
		return hlog.LevelInfo, fmt.Errorf("%w: unknown BRIDGE_LOG_LEVEL %q", ErrInvalidConfig, c.LogLevel)
	}
}
