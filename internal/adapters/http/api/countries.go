package api

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// CountriesHandler serves country summaries.
type CountriesHandler struct {
	deps Dependencies
}

// NewCountriesHandler creates a new countries handler.
func NewCountriesHandler(deps Dependencies) *CountriesHandler {
	return &CountriesHandler{deps: deps}
}

// HandleList handles GET /countries.
func (h *CountriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.deps.Countries(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

// HandleGet handles GET /countries/{name}. The name must match exactly.
func (h *CountriesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if strings.TrimSpace(name) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	summary, err := h.deps.Country(r.Context(), name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
