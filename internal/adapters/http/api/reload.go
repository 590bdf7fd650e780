package api

import (
	"errors"
	"net/http"

	service "github.com/okian/fifastats/internal/app"
)

// ReloadHandler triggers a dataset reload.
type ReloadHandler struct {
	deps Dependencies
}

// NewReloadHandler creates a new reload handler.
func NewReloadHandler(deps Dependencies) *ReloadHandler {
	return &ReloadHandler{deps: deps}
}

type reloadResponse struct {
	Status    string `json:"status"`
	Countries int    `json:"countries"`
}

// HandleReload handles POST /reload. A load failure is a 500 and the
// previous dataset keeps being served; a stopped service is a 503.
func (h *ReloadHandler) HandleReload(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Reload(r.Context()); err != nil {
		if errors.Is(err, service.ErrNotStarted) {
			writeServiceError(w, err)
			return
		}
		writeError(w, http.StatusInternalServerError, "reload_failed", err)
		return
	}
	all, err := h.deps.Countries(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reloadResponse{Status: "reloaded", Countries: len(all)})
}
