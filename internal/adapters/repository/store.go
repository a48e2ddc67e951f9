// Package repository holds the player and team collections that search and
// ranking read from.
package repository

import (
	"context"

	"github.com/okian/scouthub/internal/domain/model"
)

// Store provides load-once, read-only access to players and teams.
type Store interface {
	// LoadPlayers loads players from the source on first call and returns the
	// cached collection afterwards. A failed load yields an empty collection and
	// sets ErrorMessage; it never returns an error.
	LoadPlayers(ctx context.Context) []model.Player
	// LoadTeams is the team counterpart of LoadPlayers.
	LoadTeams(ctx context.Context) []model.Team

	// Player returns the player with id, or false if none matches.
	Player(id string) (model.Player, bool)
	// Team returns the team with id, or false if none matches.
	Team(id string) (model.Team, bool)

	// Players returns every player in load order (empty before load).
	Players() []model.Player
	// Teams returns every team in load order (empty before load).
	Teams() []model.Team

	// ErrorMessage returns the user-facing message of the last failed load.
	ErrorMessage() string
}
