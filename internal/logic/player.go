package logic

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cricstats/analytics-api/internal/dataset"
	"github.com/cricstats/analytics-api/internal/models"
)

// ErrPlayerNotFound is returned when no record directory exists for the
// requested player in the category.
var ErrPlayerNotFound = errors.New("player not found")

type playerService struct {
	loc    *dataset.Locator
	logger *zap.SugaredLogger
}

func NewPlayerService(loc *dataset.Locator, logger *zap.Logger) PlayerService {
	return &playerService{loc: loc, logger: logger.Sugar()}
}

// Summary aggregates the player's batter, bowler and fielder tables into
// a single document. Record tables the player never produced are treated
// as empty; a team filter narrows each table to that team's matches.
func (s *playerService) Summary(ctx context.Context, category, player, team string) (*models.PlayerSummary, error) {
	if !s.loc.PlayerExists(category, player) {
		s.logger.Infow("Player directory not found", "category", category, "player", player)
		return nil, ErrPlayerNotFound
	}

	ids, err := validMatchIDs(s.loc, category, team)
	if err != nil {
		return nil, err
	}

	batter, err := dataset.Load(s.loc.PlayerFile(category, player, "batter"))
	if err != nil {
		return nil, fmt.Errorf("load batter table: %w", err)
	}
	bowler, err := dataset.Load(s.loc.PlayerFile(category, player, "bowler"))
	if err != nil {
		return nil, fmt.Errorf("load bowler table: %w", err)
	}
	fielder, err := dataset.Load(s.loc.PlayerFile(category, player, "fielder"))
	if err != nil {
		return nil, fmt.Errorf("load fielder table: %w", err)
	}

	batter = restrictToMatches(batter, ids)
	bowler = restrictToMatches(bowler, ids)
	fielder = restrictToMatches(fielder, ids)

	catches := fielder.CountEqual("wicket_type", "caught")
	runouts := fielder.CountEqual("wicket_type", "run out")

	return &models.PlayerSummary{
		Player:   player,
		Category: category,
		Team:     team,

		Runs:       batter.SumInt("runs_batter"),
		BallsFaced: batter.Len(),

		Wickets:     bowler.CountNonEmpty("wicket_type"),
		BallsBowled: bowler.Len(),

		Catches:            catches,
		RunOuts:            runouts,
		FieldingDismissals: catches + runouts,
	}, nil
}
