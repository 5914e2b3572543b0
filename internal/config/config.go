package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/livinlefevreloca/chrono/internal/db"
	"github.com/livinlefevreloca/chrono/lib/chrono"
)

// Config represents the application configuration
type Config struct {
	Engine  EngineConfig  `toml:"engine"`
	Journal JournalConfig `toml:"journal"`
	Logging LoggingConfig `toml:"logging"`
}

// EngineConfig controls how requests are resolved
type EngineConfig struct {
	// Context is the direction used by "this" when a request gives none
	Context string `toml:"context"`
	// Now pins the reference instant ("2006-08-16 14:00:00"). Empty means the wall clock.
	Now string `toml:"now"`
}

// JournalConfig controls the SQLite resolution journal. The connection
// settings sit directly in the [journal] table.
type JournalConfig struct {
	Enabled bool `toml:"enabled"`
	db.Config
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Context: "future",
		},
		Journal: JournalConfig{
			Enabled: false,
			Config: db.Config{
				Driver:          "sqlite3",
				DSN:             "chrono.db",
				MaxOpenConns:    4,
				MaxIdleConns:    2,
				ConnMaxLifetime: 5 * time.Minute,
				ConnMaxIdleTime: 5 * time.Minute,
				SkipMigrations:  false,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadFromFile loads configuration from a TOML file on top of the defaults
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key: %s", undecoded[0])
	}

	return config, nil
}

// LoadConfig loads configuration with the following precedence:
// 1. Default values
// 2. Config file (if specified)
// 3. Command-line flags (handled by caller)
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}
	return LoadFromFile(configPath)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Engine validation
	if _, err := c.Engine.ContextDirection(); err != nil {
		return fmt.Errorf("engine context: %w", err)
	}
	if _, _, err := c.Engine.FixedNow(); err != nil {
		return fmt.Errorf("engine now: %w", err)
	}

	// Journal validation
	if c.Journal.Enabled {
		if c.Journal.Driver == "" {
			return fmt.Errorf("journal driver must be specified")
		}
		if c.Journal.Driver != "sqlite3" {
			return fmt.Errorf("unsupported journal driver: %s (must be sqlite3)", c.Journal.Driver)
		}
		if c.Journal.DSN == "" {
			return fmt.Errorf("journal DSN must be specified")
		}
		if c.Journal.MaxOpenConns < 0 || c.Journal.MaxIdleConns < 0 {
			return fmt.Errorf("journal connection limits must not be negative")
		}
	}

	// Logging validation
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logging.Format)
	}

	return nil
}

// ContextDirection parses the configured "this" context
func (e EngineConfig) ContextDirection() (chrono.Direction, error) {
	return chrono.ParseDirection(e.Context)
}

// FixedNow parses the pinned reference instant. ok is false when none is set.
func (e EngineConfig) FixedNow() (now chrono.Instant, ok bool, err error) {
	if e.Now == "" {
		return chrono.Instant{}, false, nil
	}
	now, err = chrono.ParseInstant(e.Now)
	if err != nil {
		return chrono.Instant{}, false, err
	}
	return now, true, nil
}

// SlogLevel maps the configured level onto slog. Unknown levels map to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
