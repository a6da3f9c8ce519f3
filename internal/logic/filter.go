package logic

import (
	"fmt"
	"strings"

	"github.com/cricstats/analytics-api/internal/dataset"
)

// The ingestion pipeline writes the participating sides as a single
// delimited pair, e.g. "India vs Australia".
const teamsDelimiter = " vs "

// matchTables groups the three category-level tables joined by match_id.
type matchTables struct {
	ball    *dataset.Table
	info    *dataset.Table
	matches *dataset.Table
}

// splitTeams splits the delimited teams pair into its side names.
func splitTeams(field string) []string {
	parts := strings.Split(field, teamsDelimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// teamPlays reports whether team is one of the sides in the delimited
// pair. Exact membership, not substring containment: a filter for
// "India" must not pick up "West Indies".
func teamPlays(field, team string) bool {
	for _, side := range splitTeams(field) {
		if side == team {
			return true
		}
	}
	return false
}

// matchIDsForTeam collects the distinct match_id values of matches rows
// whose teams field includes team.
func matchIDsForTeam(matches *dataset.Table, team string) map[string]struct{} {
	ids := make(map[string]struct{})
	for i := 0; i < matches.Len(); i++ {
		if teamPlays(matches.Value(i, "teams"), team) {
			if id := matches.Value(i, "match_id"); id != "" {
				ids[id] = struct{}{}
			}
		}
	}
	return ids
}

// restrictToMatches filters a table to rows whose match_id is in ids.
// A nil set means no team filter is active and the table passes through.
func restrictToMatches(t *dataset.Table, ids map[string]struct{}) *dataset.Table {
	if ids == nil {
		return t
	}
	return t.Filter(func(i int) bool {
		_, ok := ids[t.Value(i, "match_id")]
		return ok
	})
}

// filterByTeam narrows every table to the matches involving team. One id
// set applies to all tables so cross-table aggregates stay coherent. An
// unset team passes everything through unchanged; an empty matches table
// empties every dependent table.
func (tb matchTables) filterByTeam(team string) (matchTables, map[string]struct{}) {
	if team == "" {
		return tb, nil
	}
	ids := matchIDsForTeam(tb.matches, team)
	return matchTables{
		ball:    restrictToMatches(tb.ball, ids),
		info:    restrictToMatches(tb.info, ids),
		matches: restrictToMatches(tb.matches, ids),
	}, ids
}

// validMatchIDs loads the matches table for a category and resolves the
// id set for a team filter. No filter yields a nil set.
func validMatchIDs(loc *dataset.Locator, category, team string) (map[string]struct{}, error) {
	if team == "" {
		return nil, nil
	}
	matches, err := dataset.Load(loc.MatchesPath(category))
	if err != nil {
		return nil, fmt.Errorf("load matches table: %w", err)
	}
	return matchIDsForTeam(matches, team), nil
}
