// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/scouthub/internal/domain/model"
	"github.com/okian/scouthub/internal/domain/ranking"
	"github.com/okian/scouthub/internal/domain/search"
	"github.com/okian/scouthub/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	SearchDependencies
	PlayerDependencies
	TeamDependencies
	LeaderboardDependencies
	StatsProvider
}

// SearchDependencies defines the interface for search operations.
type SearchDependencies interface {
	Search(ctx context.Context, q string) search.Results
}

// PlayerDependencies defines the interface for player reads.
type PlayerDependencies interface {
	Players(ctx context.Context) []model.Player
	FeaturedPlayers(ctx context.Context, n int) []model.Player
	PlayerProfile(ctx context.Context, id string) (types.PlayerProfile, error)
}

// TeamDependencies defines the interface for team reads.
type TeamDependencies interface {
	Teams(ctx context.Context) []model.Team
	TeamProfile(ctx context.Context, id string) (types.TeamProfile, error)
}

// LeaderboardDependencies defines the interface for leaderboard operations.
type LeaderboardDependencies interface {
	Leaderboard(ctx context.Context, collection, stat string, limit int, dir ranking.Direction) (types.Leaderboard, error)
	Leaderboards(ctx context.Context) ([]types.Leaderboard, error)
	MaxLeaderboardLimit() int
}

// Entry mirrors the read shape returned by leaderboard queries.
type Entry = types.Entry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	searchHandler      *SearchHandler
	playersHandler     *PlayersHandler
	teamsHandler       *TeamsHandler
	leaderboardHandler *LeaderboardHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(deps),
		searchHandler:      NewSearchHandler(deps),
		playersHandler:     NewPlayersHandler(deps),
		teamsHandler:       NewTeamsHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/search", MetricsMiddleware(s.searchHandler.HandleSearch, "search"))
	mux.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandleList, "players"))
	mux.HandleFunc("/players/", MetricsMiddleware(s.playersHandler.HandleGet, "player"))
	mux.HandleFunc("/teams", MetricsMiddleware(s.teamsHandler.HandleList, "teams"))
	mux.HandleFunc("/teams/", MetricsMiddleware(s.teamsHandler.HandleGet, "team"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/leaderboards", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboards, "leaderboards"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates upstream error kinds to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, types.ErrInvalidArgument), errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// pathID extracts the single path segment after prefix.
func pathID(r *http.Request, prefix string) (string, bool) {
	id := strings.TrimPrefix(r.URL.Path, prefix)
	if id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}
