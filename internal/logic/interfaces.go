package logic

import (
	"context"

	"github.com/cricstats/analytics-api/internal/models"
)

// CatalogService lists the selectable categories, teams and players.
// *dataset.Locator is the production implementation.
type CatalogService interface {
	Categories() []models.Category
	ValidCategory(id string) bool
	CategoryLabel(id string) string
	Teams(category string) []string
	Players(category string) []string
	RootExists() bool
}

// DashboardService renders the full aggregate document for one selection.
// Every render recomputes from the source files; nothing is cached.
type DashboardService interface {
	Render(ctx context.Context, category, team string) (*models.Dashboard, error)
}

// LeaderboardService computes the ranked per-player tables.
type LeaderboardService interface {
	TopRunScorers(ctx context.Context, category, team string, limit int) ([]models.BattingEntry, error)
	TopWicketTakers(ctx context.Context, category, team string, limit int) ([]models.BowlingEntry, error)
	TopFielders(ctx context.Context, category, team string, limit int) ([]models.FieldingEntry, error)
}

// PlayerService summarizes a single player's record tables.
type PlayerService interface {
	Summary(ctx context.Context, category, player, team string) (*models.PlayerSummary, error)
}
