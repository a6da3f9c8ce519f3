package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes assembles the full router for the API.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(h.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Get("/", h.ListCategories)
		r.Route("/{category}", func(r chi.Router) {
			r.Use(h.requireCategory)
			r.Get("/teams", h.ListTeams)
			r.Get("/players", h.ListPlayers)
			r.Get("/players/{player}", h.GetPlayerSummary)
			r.Get("/dashboard", h.GetDashboard)
			r.Get("/leaderboard/{discipline}", h.GetLeaderboard)
		})
	})

	return r
}

// requireCategory rejects requests for categories outside the fixed
// competition catalog before any file access happens.
func (h *Handler) requireCategory(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.catalog.ValidCategory(chi.URLParam(r, "category")) {
			h.errorResponse(w, http.StatusNotFound, "Unknown category")
			return
		}
		next.ServeHTTP(w, r)
	})
}
