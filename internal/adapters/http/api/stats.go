package api

import (
	"maps"
	"net/http"
)

// StatsProvider reports counters and load state for GET /stats.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler serves GET /stats.
type StatsHandler struct {
	provider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(provider StatsProvider) *StatsHandler {
	return &StatsHandler{provider: provider}
}

// HandleStats writes the provider's stats, tagged with the request id when
// one is set. Responses are never cached.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	stats := maps.Clone(h.provider.GetStats())
	if stats == nil {
		stats = map[string]interface{}{}
	}
	if id := RequestID(r.Context()); id != "" {
		stats["requestId"] = id
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, stats)
}
