package config

import "errors"

// ErrLoadConfig wraps file and env provider failures; ErrInvalidConfig wraps
// Validate failures.
var (
	ErrInvalidConfig = errors.New("config: invalid value")
	ErrLoadConfig    = errors.New("config: load failed")
)
