package handlers

import (
	"context"

	"github.com/cricstats/analytics-api/internal/models"
)

// MockCatalogService
type MockCatalogService struct {
	CategoriesFunc    func() []models.Category
	ValidCategoryFunc func(id string) bool
	TeamsFunc         func(category string) []string
	PlayersFunc       func(category string) []string
	RootExistsFunc    func() bool
}

func (m *MockCatalogService) Categories() []models.Category {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc()
	}
	return []models.Category{{ID: "odis_json", Label: "ODI Matches"}}
}

func (m *MockCatalogService) ValidCategory(id string) bool {
	if m.ValidCategoryFunc != nil {
		return m.ValidCategoryFunc(id)
	}
	return id == "odis_json"
}

func (m *MockCatalogService) CategoryLabel(id string) string {
	return id
}

func (m *MockCatalogService) Teams(category string) []string {
	if m.TeamsFunc != nil {
		return m.TeamsFunc(category)
	}
	return nil
}

func (m *MockCatalogService) Players(category string) []string {
	if m.PlayersFunc != nil {
		return m.PlayersFunc(category)
	}
	return nil
}

func (m *MockCatalogService) RootExists() bool {
	if m.RootExistsFunc != nil {
		return m.RootExistsFunc()
	}
	return true
}

// MockDashboardService
type MockDashboardService struct {
	RenderFunc func(ctx context.Context, category, team string) (*models.Dashboard, error)
}

func (m *MockDashboardService) Render(ctx context.Context, category, team string) (*models.Dashboard, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, category, team)
	}
	return &models.Dashboard{Category: category, Team: team}, nil
}

// MockLeaderboardService
type MockLeaderboardService struct {
	TopRunScorersFunc   func(ctx context.Context, category, team string, limit int) ([]models.BattingEntry, error)
	TopWicketTakersFunc func(ctx context.Context, category, team string, limit int) ([]models.BowlingEntry, error)
	TopFieldersFunc     func(ctx context.Context, category, team string, limit int) ([]models.FieldingEntry, error)
}

func (m *MockLeaderboardService) TopRunScorers(ctx context.Context, category, team string, limit int) ([]models.BattingEntry, error) {
	if m.TopRunScorersFunc != nil {
		return m.TopRunScorersFunc(ctx, category, team, limit)
	}
	return nil, nil
}

func (m *MockLeaderboardService) TopWicketTakers(ctx context.Context, category, team string, limit int) ([]models.BowlingEntry, error) {
	if m.TopWicketTakersFunc != nil {
		return m.TopWicketTakersFunc(ctx, category, team, limit)
	}
	return nil, nil
}

func (m *MockLeaderboardService) TopFielders(ctx context.Context, category, team string, limit int) ([]models.FieldingEntry, error) {
	if m.TopFieldersFunc != nil {
		return m.TopFieldersFunc(ctx, category, team, limit)
	}
	return nil, nil
}

// MockPlayerService
type MockPlayerService struct {
	SummaryFunc func(ctx context.Context, category, player, team string) (*models.PlayerSummary, error)
}

func (m *MockPlayerService) Summary(ctx context.Context, category, player, team string) (*models.PlayerSummary, error) {
	if m.SummaryFunc != nil {
		return m.SummaryFunc(ctx, category, player, team)
	}
	return &models.PlayerSummary{Player: player, Category: category}, nil
}
