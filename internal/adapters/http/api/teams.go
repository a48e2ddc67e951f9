package api

import (
	"net/http"
)

// TeamsHandler handles team list and profile requests.
type TeamsHandler struct {
	deps TeamDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleList handles GET /teams requests.
func (h *TeamsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Teams(r.Context()))
}

// HandleGet handles GET /teams/{id} requests.
func (h *TeamsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_team"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id, ok := pathID(r, "/teams/")
	if !ok {
		writeError(w, http.StatusBadRequest, "bad_request", badRequest(op, "missing team id"))
		return
	}
	profile, err := h.deps.TeamProfile(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
