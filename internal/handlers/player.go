package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/cricstats/analytics-api/internal/logic"
)

// GetPlayerSummary returns one player's aggregated record tables
// @Summary Player Summary
// @Tags Stats
// @Produce json
// @Param category path string true "Category id"
// @Param player path string true "Player directory name"
// @Param team query string false "Narrow to matches involving this team"
// @Success 200 {object} models.PlayerSummary "Player Summary"
// @Failure 404 {object} map[string]string "Unknown Player"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /categories/{category}/players/{player} [get]
func (h *Handler) GetPlayerSummary(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	team := r.URL.Query().Get("team")

	// chi routes on RawPath when the URL carries one, so the captured
	// segment is still escaped in that case; otherwise it is already
	// decoded and unescaping again would corrupt names containing %xx.
	player := chi.URLParam(r, "player")
	if r.URL.RawPath != "" {
		if dec, err := url.PathUnescape(player); err == nil {
			player = dec
		}
	}

	if err := h.validator.Struct(selectionParams{Team: team}); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	summary, err := h.players.Summary(r.Context(), category, player, team)
	if err != nil {
		if errors.Is(err, logic.ErrPlayerNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.Errorw("Failed to summarize player",
			"category", category, "player", player, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to summarize player")
		return
	}

	h.jsonResponse(w, http.StatusOK, summary)
}
