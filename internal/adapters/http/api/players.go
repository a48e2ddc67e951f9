package api

import (
	"net/http"
	"strconv"
)

// PlayersHandler handles player list and profile requests.
type PlayersHandler struct {
	deps PlayerDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayerDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandleList handles GET /players and GET /players?featured=N. An empty
// featured value selects the configured featured count.
func (h *PlayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_players"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	if !q.Has("featured") {
		writeJSON(w, http.StatusOK, h.deps.Players(r.Context()))
		return
	}
	n := -1
	if raw := q.Get("featured"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", badRequest(op, "featured must be a non-negative integer"))
			return
		}
		n = v
	}
	writeJSON(w, http.StatusOK, h.deps.FeaturedPlayers(r.Context(), n))
}

// HandleGet handles GET /players/{id} requests.
func (h *PlayersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_player"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id, ok := pathID(r, "/players/")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", badRequest(op, "missing player id"))
		return
	}
	profile, err := h.deps.PlayerProfile(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
