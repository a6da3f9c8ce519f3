package dataset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cricstats/analytics-api/internal/models"
)

// The fixed competition catalog. Directory names come from the ingestion
// pipeline and never change at runtime.
var categories = []models.Category{
	{ID: "all_json", Label: "All International Matches"},
	{ID: "ipl_json", Label: "IPL Matches"},
	{ID: "mdms_json", Label: "Multiday Matches"},
	{ID: "odis_json", Label: "ODI Matches"},
	{ID: "t20s_json", Label: "T20 International Matches"},
	{ID: "tests_json", Label: "Test Matches"},
}

var categoryLabels = func() map[string]string {
	m := make(map[string]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Label
	}
	return m
}()

// Locator resolves selection parameters (category, team, player) to
// filesystem paths under the dataset root. It performs no validation
// beyond existence checks; a missing directory is an empty listing.
type Locator struct {
	root string
}

func NewLocator(root string) *Locator {
	return &Locator{root: root}
}

// RootExists reports whether the dataset root directory is present.
func (l *Locator) RootExists() bool {
	info, err := os.Stat(l.root)
	return err == nil && info.IsDir()
}

// Categories returns the fixed competition catalog.
func (l *Locator) Categories() []models.Category {
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether id names a known competition category.
func (l *Locator) ValidCategory(id string) bool {
	_, ok := categoryLabels[id]
	return ok
}

// CategoryLabel returns the human-readable label for a category id, or
// the id itself when unknown.
func (l *Locator) CategoryLabel(id string) string {
	if label, ok := categoryLabels[id]; ok {
		return label
	}
	return id
}

// BallByBallPath resolves the ball-event table for a category.
func (l *Locator) BallByBallPath(category string) string {
	return filepath.Join(l.root, category, "ballbyball.csv")
}

// InfoPath resolves the match info summary table for a category.
func (l *Locator) InfoPath(category string) string {
	return filepath.Join(l.root, category, "info_summary.csv")
}

// MatchesPath resolves the matches table for a category.
func (l *Locator) MatchesPath(category string) string {
	return filepath.Join(l.root, category, category+"_matches.csv")
}

// PlayerFile resolves one of a player's record tables (batter.csv,
// bowler.csv or fielder.csv).
func (l *Locator) PlayerFile(category, player, table string) string {
	return filepath.Join(l.root, category, "player", player, table+".csv")
}

// PlayerExists reports whether a player directory is present for the
// category. Names carrying path separators are rejected outright since
// they arrive from the request path.
func (l *Locator) PlayerExists(category, player string) bool {
	if !validName(player) {
		return false
	}
	info, err := os.Stat(filepath.Join(l.root, category, "player", player))
	return err == nil && info.IsDir()
}

// Teams lists the team directories for a category, sorted by name.
// A missing directory is an empty listing, never an error.
func (l *Locator) Teams(category string) []string {
	return listDirs(filepath.Join(l.root, category, "team"))
}

// Players lists the player directories for a category, sorted by name.
func (l *Locator) Players(category string) []string {
	return listDirs(filepath.Join(l.root, category, "player"))
}

func listDirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
