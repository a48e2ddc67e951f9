package repository

import "errors"

// Sentinel kinds for dataset errors.
var (
	ErrDataUnavailable = errors.New("data unavailable")
	ErrDuplicateID     = errors.New("duplicate id")
)

// User-facing messages recorded when a load fails.
const (
	PlayersUnavailableMessage = "Unable to load player data. Please refresh the page."
	TeamsUnavailableMessage   = "Unable to load team data. Please refresh the page."
)
