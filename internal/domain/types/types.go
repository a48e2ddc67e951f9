// Package types contains common types used across the application
package types

import "github.com/okian/scouthub/internal/domain/model"

// Entry represents a leaderboard row
type Entry struct {
	Rank    int     `json:"rank"`
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Leaderboard is one ranked list of players or teams for a single stat.
type Leaderboard struct {
	Title      string  `json:"title"`
	Collection string  `json:"collection"`
	Stat       string  `json:"stat"`
	Direction  string  `json:"direction"`
	Entries    []Entry `json:"entries"`
}

// PlayerProfile is a player with their team, when the team is known.
type PlayerProfile struct {
	Player model.Player `json:"player"`
	Team   *model.Team  `json:"team,omitempty"`
}

// TeamProfile is a team with its win-loss record and resolved roster.
type TeamProfile struct {
	Team   model.Team     `json:"team"`
	Record string         `json:"record"`
	Roster []model.Player `json:"roster"`
}
