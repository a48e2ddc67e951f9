package api

import (
	"net/http"
)

// SearchHandler handles search requests.
type SearchHandler struct {
	deps SearchDependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps SearchDependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// HandleSearch handles GET /search?q=... requests. A missing or blank q
// yields empty lists, not an error.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	res := h.deps.Search(r.Context(), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, res)
}
