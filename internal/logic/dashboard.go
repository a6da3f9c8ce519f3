package logic

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cricstats/analytics-api/internal/dataset"
	"github.com/cricstats/analytics-api/internal/models"
)

// Prometheus metrics
var (
	dashboardsRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricstats_dashboards_rendered_total",
		Help: "Total number of dashboard documents rendered",
	})

	emptySelections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricstats_empty_selections_total",
		Help: "Total number of renders where no ball-by-ball data survived the selection",
	})
)

const warningNoBallData = "No ball-by-ball data available for this selection."

type dashboardService struct {
	loc    *dataset.Locator
	boards *leaderboardService
	logger *zap.SugaredLogger
	topN   int
}

func NewDashboardService(loc *dataset.Locator, logger *zap.Logger, topN int) DashboardService {
	if topN <= 0 {
		topN = defaultTopN
	}
	return &dashboardService{
		loc:    loc,
		boards: &leaderboardService{loc: loc, logger: logger.Sugar()},
		logger: logger.Sugar(),
		topN:   topN,
	}
}

// Render loads the category's tables, narrows them to the selected team
// and computes every dashboard section. The sections are independent pure
// functions over privately owned tables, so they fan out; each goroutine
// writes only its own field.
func (s *dashboardService) Render(ctx context.Context, category, team string) (*models.Dashboard, error) {
	ball, err := dataset.Load(s.loc.BallByBallPath(category))
	if err != nil {
		return nil, fmt.Errorf("load ball-by-ball table: %w", err)
	}
	info, err := dataset.Load(s.loc.InfoPath(category))
	if err != nil {
		return nil, fmt.Errorf("load info table: %w", err)
	}
	matches, err := dataset.Load(s.loc.MatchesPath(category))
	if err != nil {
		return nil, fmt.Errorf("load matches table: %w", err)
	}

	tb, ids := matchTables{ball: ball, info: info, matches: matches}.filterByTeam(team)

	d := &models.Dashboard{
		Category: category,
		Label:    s.loc.CategoryLabel(category),
		Team:     team,
	}

	if tb.ball.Empty() {
		emptySelections.Inc()
		s.logger.Infow("No ball-by-ball data for selection", "category", category, "team", team)
		d.Warning = warningNoBallData
		return d, nil
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		d.RunsDistribution = runsDistribution(tb.ball)
		d.WicketTypes = distribution(tb.ball, "wicket_type")
		d.ExtrasTypes = distribution(tb.ball, "extras_type")
		d.Totals = ballTotals(tb.ball)
		return nil
	})

	g.Go(func() error {
		entries, err := s.boards.topRunScorers(category, ids, s.topN)
		if err != nil {
			return fmt.Errorf("top run scorers: %w", err)
		}
		d.TopRunScorers = entries
		return nil
	})

	g.Go(func() error {
		entries, err := s.boards.topWicketTakers(category, ids, s.topN)
		if err != nil {
			return fmt.Errorf("top wicket takers: %w", err)
		}
		d.TopWicketTakers = entries
		return nil
	})

	g.Go(func() error {
		entries, err := s.boards.topFielders(category, ids, s.topN)
		if err != nil {
			return fmt.Errorf("top fielders: %w", err)
		}
		d.TopFielders = entries
		return nil
	})

	g.Go(func() error {
		if tb.info.Empty() {
			return nil
		}
		d.TossWins = distribution(tb.info, "toss_winner")
		d.TossDecisions = tossDecisions(tb.info)
		return nil
	})

	g.Go(func() error {
		if tb.matches.Empty() {
			return nil
		}
		if tb.matches.HasColumn("player_of_match") {
			d.PlayerOfMatchAwards = distribution(tb.matches, "player_of_match")
		}
		if tb.matches.HasColumn("outcome.winner") {
			d.MatchWinners = distribution(tb.matches, "outcome.winner")
			d.WinMargins = winMargins(tb.matches)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	dashboardsRendered.Inc()
	s.logger.Debugw("Dashboard rendered",
		"category", category, "team", team, "balls", d.Totals.Balls)
	return d, nil
}
