// Package search matches free-text queries against players and teams.
package search

import (
	"strings"

	"github.com/okian/scouthub/internal/domain/model"
)

// DefaultLimit caps each result list.
const DefaultLimit = 10

// Source provides the collections to search. Implementations must return
// collections in a stable order.
type Source interface {
	Players() []model.Player
	Teams() []model.Team
}

// Results holds the matches for one query. Both lists are never nil.
type Results struct {
	Players []model.Player `json:"players"`
	Teams   []model.Team   `json:"teams"`
}

// Empty reports whether neither list has a match.
func (r Results) Empty() bool { return len(r.Players) == 0 && len(r.Teams) == 0 }

// Engine runs substring searches over a Source.
type Engine struct {
	source Source
	limit  int
}

// NewEngine creates an engine over source.
func NewEngine(source Source, opts ...Option) *Engine {
	e := &Engine{source: source, limit: DefaultLimit}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Limit returns the per-list cap.
func (e *Engine) Limit() int { return e.limit }

// Normalize trims surrounding whitespace and lower-cases q.
func Normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// MatchPlayer reports whether the normalized query occurs in the player's
// name, team or position.
func MatchPlayer(p model.Player, normalized string) bool {
	return contains(p.Name, normalized) ||
		contains(p.Team, normalized) ||
		contains(p.Position, normalized)
}

// MatchTeam reports whether the normalized query occurs in the team's name or city.
func MatchTeam(t model.Team, normalized string) bool {
	return contains(t.Name, normalized) || contains(t.City, normalized)
}

func contains(field, normalized string) bool {
	return strings.Contains(strings.ToLower(field), normalized)
}

// Search returns matching players and teams for q.
func (e *Engine) Search(q string) Results {
	return Results{
		Players: e.SearchPlayers(q),
		Teams:   e.SearchTeams(q),
	}
}

// SearchPlayers returns up to Limit players matching q, in source order.
func (e *Engine) SearchPlayers(q string) []model.Player {
	normalized := Normalize(q)
	out := []model.Player{}
	if normalized == "" || e.source == nil {
		return out
	}
	for _, p := range e.source.Players() {
		if !MatchPlayer(p, normalized) {
			continue
		}
		out = append(out, p)
		if len(out) == e.limit {
			break
		}
	}
	return out
}

// SearchTeams returns up to Limit teams matching q, in source order.
func (e *Engine) SearchTeams(q string) []model.Team {
	normalized := Normalize(q)
	out := []model.Team{}
	if normalized == "" || e.source == nil {
		return out
	}
	for _, t := range e.source.Teams() {
		if !MatchTeam(t, normalized) {
			continue
		}
		out = append(out, t)
		if len(out) == e.limit {
			break
		}
	}
	return out
}
