// Package config loads wordladder settings from a .env file and the
// environment. Command-line flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvDict      = "WORDLADDER_DICT"
	EnvLength    = "WORDLADDER_LENGTH"
	EnvWorkers   = "WORDLADDER_WORKERS"
	EnvCacheSize = "WORDLADDER_CACHE_SIZE"
	EnvLogLevel  = "WORDLADDER_LOG_LEVEL"
)

// Defaults used when neither flag nor environment sets a value.
const (
	DefaultDict      = "/usr/share/dict/words"
	DefaultLength    = 3
	DefaultWorkers   = 1
	DefaultCacheSize = 128
	DefaultLogLevel  = "info"
)

var errInvalid = errors.New("config: invalid value")

// Config holds the settings for one wordladder run.
type Config struct {
	DictPath  string
	Length    int
	Workers   int
	CacheSize int
	LogLevel  string
}

// Load reads an optional .env in the working directory, then the
// environment. Values that fail to parse are errors, not silent defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DictPath: firstNonEmpty(strings.TrimSpace(os.Getenv(EnvDict)), DefaultDict),
		LogLevel: firstNonEmpty(strings.TrimSpace(os.Getenv(EnvLogLevel)), DefaultLogLevel),
	}
	var err error
	if cfg.Length, err = intEnv(EnvLength, DefaultLength); err != nil {
		return nil, err
	}
	if cfg.Workers, err = intEnv(EnvWorkers, DefaultWorkers); err != nil {
		return nil, err
	}
	if cfg.CacheSize, err = intEnv(EnvCacheSize, DefaultCacheSize); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges after flags have been applied.
func (c *Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: length must be > 0, got %d", errInvalid, c.Length)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", errInvalid, c.Workers)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: cache size must be >= 0, got %d", errInvalid, c.CacheSize)
	}
	if c.DictPath == "" {
		return fmt.Errorf("%w: dictionary path is empty", errInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel (debug, info, warn, error).
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", errInvalid, c.LogLevel)
	}
	return lvl, nil
}

func intEnv(name string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", errInvalid, name, raw)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
