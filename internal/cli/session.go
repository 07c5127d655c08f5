package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/dictfile"
	"github.com/katalvlaran/wordladder/ladder"
)

// loadConfig merges explicitly set flags over the environment configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dict") {
		if cfg.DictPath, err = flags.GetString("dict"); err != nil {
			return nil, fmt.Errorf("failed to read --dict flag: %w", err)
		}
	}
	if flags.Changed("length") {
		if cfg.Length, err = flags.GetInt("length"); err != nil {
			return nil, fmt.Errorf("failed to read --length flag: %w", err)
		}
	}
	if flags.Changed("workers") {
		if cfg.Workers, err = flags.GetInt("workers"); err != nil {
			return nil, fmt.Errorf("failed to read --workers flag: %w", err)
		}
	}
	if flags.Changed("cache-size") {
		if cfg.CacheSize, err = flags.GetInt("cache-size"); err != nil {
			return nil, fmt.Errorf("failed to read --cache-size flag: %w", err)
		}
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
			return nil, fmt.Errorf("failed to read --log-level flag: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openSession loads the dictionary named by the configuration and builds a session.
func openSession(cmd *cobra.Command) (*ladder.Session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	lines, err := dictfile.Load(cfg.DictPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("dictionary loaded", "path", cfg.DictPath, "lines", len(lines))

	return ladder.New(lines, cfg.Length,
		ladder.WithLogger(logger),
		ladder.WithWorkers(cfg.Workers),
		ladder.WithCacheSize(cfg.CacheSize),
	)
}
