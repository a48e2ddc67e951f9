// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) initializer to build a Config with defaults.
// - Load layers a YAML file and SCOUT_ environment variables on top.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"context"
	"fmt"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DataPath points at a JSON dataset file. Empty selects the embedded dataset.
	DataPath string `koanf:"data_path"`

	// SearchLimit caps each list returned by a search.
	SearchLimit int `koanf:"search_limit"`

	// LeaderboardLimit is the size of a leaderboard when no limit is requested.
	LeaderboardLimit int `koanf:"leaderboard_limit"`

	// MaxLeaderboardLimit caps GET /leaderboard?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// FeaturedCount is the number of players shown on the homepage; 0 shows all.
	FeaturedCount int `koanf:"featured_count"`

	// DebounceWindowMS is the quiet period for coalescing typed queries.
	DebounceWindowMS int `koanf:"debounce_window_ms"`

	// MetricsNamespace and MetricsSubsystem prefix every metric name.
	MetricsNamespace string `koanf:"metrics_namespace"`
	MetricsSubsystem string `koanf:"metrics_subsystem"`

	// MetricsLabels are constant labels added to every metric.
	MetricsLabels map[string]string `koanf:"metrics_labels"`
}

// New creates a Config with defaults. Context is accepted first to satisfy the
// project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		DataPath:            "",
		SearchLimit:         10,
		LeaderboardLimit:    10,
		MaxLeaderboardLimit: 50,
		FeaturedCount:       0,
		DebounceWindowMS:    300,
		MetricsNamespace:    "scout",
		MetricsSubsystem:    "hub",
	}
}

// DebounceWindow returns DebounceWindowMS as a duration.
func (c *Config) DebounceWindow() time.Duration {
	return time.Duration(c.DebounceWindowMS) * time.Millisecond
}

// Validate checks that the values are usable together.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.SearchLimit <= 0:
		return fmt.Errorf("%w: search_limit must be positive, got %d", ErrInvalidConfig, c.SearchLimit)
	case c.LeaderboardLimit <= 0:
		return fmt.Errorf("%w: leaderboard_limit must be positive, got %d", ErrInvalidConfig, c.LeaderboardLimit)
	case c.MaxLeaderboardLimit < c.LeaderboardLimit:
		return fmt.Errorf("%w: max_leaderboard_limit %d is below leaderboard_limit %d",
			ErrInvalidConfig, c.MaxLeaderboardLimit, c.LeaderboardLimit)
	case c.FeaturedCount < 0:
		return fmt.Errorf("%w: featured_count must not be negative, got %d", ErrInvalidConfig, c.FeaturedCount)
	case c.MetricsNamespace == "":
		return fmt.Errorf("%w: metrics_namespace must not be empty", ErrInvalidConfig)
	case c.DebounceWindowMS <= 0:
		return fmt.Errorf("%w: debounce_window_ms must be positive, got %d", ErrInvalidConfig, c.DebounceWindowMS)
	}
	return nil
}
