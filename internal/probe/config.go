package probe

import "time"

// Defaults for a probe run.
const (
	DefaultBaseURL = "http://localhost:9080"
	DefaultTimeout = 10 * time.Second
)

// Config holds configuration for a probe run.
type Config struct {
	BaseURL string        // Base URL of the service
	Timeout time.Duration // HTTP request timeout
	Queries []string      // Search queries fetched alongside the leaderboards
}

// DefaultConfig returns a config aimed at a local server with the reference queries.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
		Queries: []string{"boston", "guard", "los angeles"},
	}
}

func (c *Config) normalize() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}
