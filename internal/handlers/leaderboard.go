package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GetLeaderboard returns the ranked per-player table for one discipline
// @Summary Discipline Leaderboard
// @Tags Stats
// @Produce json
// @Param category path string true "Category id"
// @Param discipline path string true "batting, bowling or fielding"
// @Param team query string false "Narrow to matches involving this team"
// @Param limit query int false "Number of entries (1-50)" default(10)
// @Success 200 {object} map[string]interface{} "Leaderboard"
// @Failure 400 {object} map[string]string "Unknown Discipline"
// @Failure 404 {object} map[string]string "Unknown Category"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /categories/{category}/leaderboard/{discipline} [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	discipline := chi.URLParam(r, "discipline")
	team := r.URL.Query().Get("team")

	// A parsed zero would slip past the validator's omitempty tag, so
	// non-positive and unparsable limits are rejected here.
	limit := h.boardSize
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 {
			h.errorResponse(w, http.StatusBadRequest, "Invalid query parameters")
			return
		}
		limit = parsed
	}

	if err := h.validator.Struct(selectionParams{Team: team, Limit: limit}); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	ctx := r.Context()
	var entries interface{}
	var err error
	switch discipline {
	case "batting":
		entries, err = h.leaderboard.TopRunScorers(ctx, category, team, limit)
	case "bowling":
		entries, err = h.leaderboard.TopWicketTakers(ctx, category, team, limit)
	case "fielding":
		entries, err = h.leaderboard.TopFielders(ctx, category, team, limit)
	default:
		h.errorResponse(w, http.StatusBadRequest, "Unknown discipline")
		return
	}
	if err != nil {
		h.logger.Errorw("Failed to compute leaderboard",
			"category", category, "discipline", discipline, "team", team, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute leaderboard")
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"category":   category,
		"discipline": discipline,
		"team":       team,
		"entries":    entries,
	})
}
