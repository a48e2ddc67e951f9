package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/okian/scouthub/internal/domain/ranking"
)

// LeaderboardHandler handles leaderboard requests.
type LeaderboardHandler struct {
	deps LeaderboardDependencies
}

// NewLeaderboardHandler creates a new leaderboard handler.
func NewLeaderboardHandler(deps LeaderboardDependencies) *LeaderboardHandler {
	return &LeaderboardHandler{deps: deps}
}

// HandleGetLeaderboard handles GET /leaderboard?collection=&stat=&limit=&dir= requests.
// limit defaults to the configured size; dir defaults to desc.
func (h *LeaderboardHandler) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_leaderboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	collection := q.Get("collection")
	stat := q.Get("stat")
	if collection == "" || stat == "" {
		writeError(w, http.StatusBadRequest, "bad_request", badRequest(op, "collection and stat are required"))
		return
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", badRequest(op, "limit must be a positive integer"))
			return
		}
		if maxLimit := h.deps.MaxLeaderboardLimit(); n > maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", badRequest(op, fmt.Sprintf("limit must not exceed %d", maxLimit)))
			return
		}
		limit = n
	}

	dir, err := ranking.ParseDirection(q.Get("dir"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", badRequest(op, err.Error()))
		return
	}

	lb, err := h.deps.Leaderboard(r.Context(), collection, stat, limit, dir)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lb)
}

// HandleGetLeaderboards handles GET /leaderboards requests.
func (h *LeaderboardHandler) HandleGetLeaderboards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	boards, err := h.deps.Leaderboards(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}
