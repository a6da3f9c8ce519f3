package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetDashboard renders the aggregate dashboard document for a category,
// optionally narrowed to one team. Every call recomputes from the source
// files.
// @Summary Category Dashboard
// @Tags Stats
// @Produce json
// @Param category path string true "Category id"
// @Param team query string false "Narrow to matches involving this team"
// @Success 200 {object} models.Dashboard "Dashboard Document"
// @Failure 404 {object} map[string]string "Unknown Category"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /categories/{category}/dashboard [get]
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	team := r.URL.Query().Get("team")

	if err := h.validator.Struct(selectionParams{Team: team}); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	d, err := h.dashboard.Render(r.Context(), category, team)
	if err != nil {
		h.logger.Errorw("Failed to render dashboard", "category", category, "team", team, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to render dashboard")
		return
	}

	h.jsonResponse(w, http.StatusOK, d)
}
