package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/cricstats/analytics-api/internal/logic"
)

type Config struct {
	Catalog     logic.CatalogService
	Dashboard   logic.DashboardService
	Leaderboard logic.LeaderboardService
	Players     logic.PlayerService
	Logger      *zap.Logger

	AllowedOrigins  []string
	LeaderboardSize int
}

type Handler struct {
	catalog        logic.CatalogService
	dashboard      logic.DashboardService
	leaderboard    logic.LeaderboardService
	players        logic.PlayerService
	logger         *zap.SugaredLogger
	validator      *validator.Validate
	allowedOrigins []string
	boardSize      int
}

func New(cfg Config) *Handler {
	size := cfg.LeaderboardSize
	if size <= 0 {
		size = 10
	}
	return &Handler{
		catalog:        cfg.Catalog,
		dashboard:      cfg.Dashboard,
		leaderboard:    cfg.Leaderboard,
		players:        cfg.Players,
		logger:         cfg.Logger.Sugar(),
		validator:      validator.New(),
		allowedOrigins: cfg.AllowedOrigins,
		boardSize:      size,
	}
}

// selectionParams carries the optional query parameters shared by the
// dashboard and leaderboard endpoints.
type selectionParams struct {
	Team  string `validate:"omitempty,max=100"`
	Limit int    `validate:"omitempty,min=1,max=50"`
}
