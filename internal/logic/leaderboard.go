package logic

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/cricstats/analytics-api/internal/dataset"
	"github.com/cricstats/analytics-api/internal/models"
)

const defaultTopN = 10

type leaderboardService struct {
	loc    *dataset.Locator
	logger *zap.SugaredLogger
}

func NewLeaderboardService(loc *dataset.Locator, logger *zap.Logger) LeaderboardService {
	return &leaderboardService{loc: loc, logger: logger.Sugar()}
}

func (s *leaderboardService) TopRunScorers(ctx context.Context, category, team string, limit int) ([]models.BattingEntry, error) {
	s.logger.Debugw("Computing leaderboard", "discipline", "batting", "category", category, "team", team)
	ids, err := validMatchIDs(s.loc, category, team)
	if err != nil {
		return nil, err
	}
	return s.topRunScorers(category, ids, limit)
}

func (s *leaderboardService) TopWicketTakers(ctx context.Context, category, team string, limit int) ([]models.BowlingEntry, error) {
	s.logger.Debugw("Computing leaderboard", "discipline", "bowling", "category", category, "team", team)
	ids, err := validMatchIDs(s.loc, category, team)
	if err != nil {
		return nil, err
	}
	return s.topWicketTakers(category, ids, limit)
}

func (s *leaderboardService) TopFielders(ctx context.Context, category, team string, limit int) ([]models.FieldingEntry, error) {
	s.logger.Debugw("Computing leaderboard", "discipline", "fielding", "category", category, "team", team)
	ids, err := validMatchIDs(s.loc, category, team)
	if err != nil {
		return nil, err
	}
	return s.topFielders(category, ids, limit)
}

// loadPlayerTable reads one of a player's record tables restricted to the
// active match-id filter. ok is false when the player has no such table,
// in which case the player is skipped rather than ranked at zero.
func (s *leaderboardService) loadPlayerTable(category, player, table string, ids map[string]struct{}) (*dataset.Table, bool, error) {
	t, err := dataset.Load(s.loc.PlayerFile(category, player, table))
	if err != nil {
		return nil, false, fmt.Errorf("load %s table for %s: %w", table, player, err)
	}
	if t.NumColumns() == 0 {
		return nil, false, nil
	}
	return restrictToMatches(t, ids), true, nil
}

func (s *leaderboardService) topRunScorers(category string, ids map[string]struct{}, limit int) ([]models.BattingEntry, error) {
	var entries []models.BattingEntry
	for _, name := range s.loc.Players(category) {
		t, ok, err := s.loadPlayerTable(category, name, "batter", ids)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		entries = append(entries, models.BattingEntry{Player: name, Runs: t.SumInt("runs_batter")})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Runs != entries[j].Runs {
			return entries[i].Runs > entries[j].Runs
		}
		return entries[i].Player < entries[j].Player
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (s *leaderboardService) topWicketTakers(category string, ids map[string]struct{}, limit int) ([]models.BowlingEntry, error) {
	var entries []models.BowlingEntry
	for _, name := range s.loc.Players(category) {
		t, ok, err := s.loadPlayerTable(category, name, "bowler", ids)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		entries = append(entries, models.BowlingEntry{Player: name, Wickets: t.CountNonEmpty("wicket_type")})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Wickets != entries[j].Wickets {
			return entries[i].Wickets > entries[j].Wickets
		}
		return entries[i].Player < entries[j].Player
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (s *leaderboardService) topFielders(category string, ids map[string]struct{}, limit int) ([]models.FieldingEntry, error) {
	var entries []models.FieldingEntry
	for _, name := range s.loc.Players(category) {
		t, ok, err := s.loadPlayerTable(category, name, "fielder", ids)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		catches := t.CountEqual("wicket_type", "caught")
		runouts := t.CountEqual("wicket_type", "run out")
		entries = append(entries, models.FieldingEntry{
			Player:  name,
			Total:   catches + runouts,
			Catches: catches,
			RunOuts: runouts,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Player < entries[j].Player
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
