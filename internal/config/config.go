// Package config loads the optional TOML configuration file and
// applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Storage configures durable local state.
type Storage struct {
	// DBPath overrides the default database location.
	DBPath string `toml:"db_path"`
}

// Logging configures the application log file.
type Logging struct {
	// Level is one of "debug", "info", "warn", "error". Default: "info".
	Level string `toml:"level"`
	// File overrides the default log file location under
	// $XDG_STATE_HOME.
	File string `toml:"file"`
}

// Access configures subscription gating.
type Access struct {
	// FreeLessons is the highest lesson order a free account can open.
	// Default: 2.
	FreeLessons int `toml:"free_lessons"`
}

// Tutor configures the AI tutor backend. Values here lose to the
// ANGLOLINGUA_* environment variables.
type Tutor struct {
	// Provider is one of "gemini", "openai", "anthropic", "mock",
	// "none". Empty means auto-discover from API key env vars.
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	// TimeoutSeconds bounds a single tutor request. Default: 30.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// Config encapsulates all configuration values.
type Config struct {
	Storage Storage `toml:"storage"`
	Logging Logging `toml:"logging"`
	Access  Access  `toml:"access"`
	Tutor   Tutor   `toml:"tutor"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Logging: Logging{Level: "info"},
		Access:  Access{FreeLessons: 2},
		Tutor:   Tutor{TimeoutSeconds: 30},
	}
}

// DefaultConfigPath returns the default configuration file location:
// $XDG_CONFIG_HOME/anglolingua/config.toml, falling back to
// ~/.config/anglolingua/config.toml.
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "anglolingua", "config.toml"), nil
}

// Load parses the configuration file at path (or the default location
// when path is empty), applies environment overrides, and validates.
// A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
	}

	file, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ANGLOLINGUA_DB"); v != "" {
		c.Storage.DBPath = v
	}
	if v := os.Getenv("ANGLOLINGUA_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ANGLOLINGUA_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("ANGLOLINGUA_FREE_LESSONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Access.FreeLessons = n
		}
	}
	if v := os.Getenv("ANGLOLINGUA_TUTOR_PROVIDER"); v != "" {
		c.Tutor.Provider = v
	}
}

// Validate ensures the configuration is usable.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.Access.FreeLessons < 0 {
		return errors.New("access.free_lessons must not be negative")
	}
	if c.Tutor.TimeoutSeconds <= 0 {
		return errors.New("tutor.timeout_seconds must be positive")
	}
	return nil
}
