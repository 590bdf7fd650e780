package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/okian/fifastats/internal/domain/stats"
)

// TopHandler serves the leading country per metric.
type TopHandler struct {
	deps Dependencies
}

// NewTopHandler creates a new top handler.
func NewTopHandler(deps Dependencies) *TopHandler {
	return &TopHandler{deps: deps}
}

// HandleTop handles GET /top/{metric}.
func (h *TopHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	m, err := stats.ParseMetric(mux.Vars(r)["metric"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_metric", err)
		return
	}
	summary, err := h.deps.Top(r.Context(), m)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
