package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListCategories returns the fixed competition catalog
// @Summary List Categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} map[string]interface{} "Category Catalog"
// @Router /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalog.Categories(),
	})
}

// ListTeams returns the team directories of a category
// @Summary List Teams
// @Tags Catalog
// @Produce json
// @Param category path string true "Category id (e.g. odis_json)"
// @Success 200 {object} map[string]interface{} "Team Names"
// @Failure 404 {object} map[string]string "Unknown Category"
// @Router /categories/{category}/teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"teams":    h.catalog.Teams(category),
	})
}

// ListPlayers returns the player directories of a category
// @Summary List Players
// @Tags Catalog
// @Produce json
// @Param category path string true "Category id"
// @Success 200 {object} map[string]interface{} "Player Names"
// @Failure 404 {object} map[string]string "Unknown Category"
// @Router /categories/{category}/players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"players":  h.catalog.Players(category),
	})
}
