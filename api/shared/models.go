/* models.go
 * This file contains the structs and helper functions that are shared between sub packages
 * Authors: Zachary Bower
 */

package shared

import (
	"fmt"
	"time"
)

// PlacementRule awards a point value to a set of finishing placements.
// Place and Points arrive loosely typed from tournament.json (numbers,
// comma/range strings, nested lists) and are normalized by api/scoring
// when the resolver is built.
type PlacementRule struct {
	Place  any `json:"place"`
	Points any `json:"points"`
}

// ScoringRules holds the tournament scoring configuration
type ScoringRules struct {
	KillPoints any             `json:"killPoints"`
	Placements []PlacementRule `json:"placements"`
}

// MatchPlan describes how many matches are planned and on which maps
type MatchPlan struct {
	Total any      `json:"total"`
	Maps  []string `json:"maps"`
}

// TournamentConfig is the parsed tournament.json. Immutable once loaded.
type TournamentConfig struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Scoring     ScoringRules `json:"scoring"`
	Matches     MatchPlan    `json:"matches"`
	Rules       []string     `json:"rules"`
	StartTime   *time.Time   `json:"startTime"`
}

// TeamRecord is one roster entry from teams.json
type TeamRecord struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DisplayName returns the team name formatted the way the results page shows it
func (t TeamRecord) DisplayName() string {
	return fmt.Sprintf("%s (№%d)", t.Name, t.ID)
}

// MatchTeamEntry is one team's raw result line in a match file. All numeric
// fields are kept loosely typed; aggregation normalizes them.
type MatchTeamEntry struct {
	TeamID      any
	Kills       any
	Placement   any
	TotalPoints any
}

// MatchPlayerEntry is one player's raw stat line in a match file. Name has
// already been resolved from the nickname/player/name field priority by the
// match parser; empty means the entry carried no usable identity.
type MatchPlayerEntry struct {
	Name         string
	TeamID       any
	ADR          any
	Kills        any
	Assists      any
	Revives      any
	DBNOs        any
	TimeSurvived any
}

// MatchRecord is one parsed match<N>.json. FileNumber is the N from the file
// name, stamped by the fetch layer; it keeps the file order intact when an
// earlier match file fails to load and the record carries no matchId. Zero
// means the record did not come from a numbered file.
type MatchRecord struct {
	MatchID    any
	FileNumber int
	Map        string
	Date       any
	Duration   any
	Teams      []MatchTeamEntry
	Players    []MatchPlayerEntry
}

// TeamRow is one finalized leaderboard row for a team. PerMatch slices are
// indexed by match slot; nil marks a slot with no data (failed or unplayed
// match, or a placement that never parsed).
type TeamRow struct {
	ID                int        `json:"id"`
	Team              string     `json:"team"`
	Points            float64    `json:"points"`
	Kills             float64    `json:"kills"`
	Matches           int        `json:"matches"`
	PlaceAvg          *float64   `json:"placeAvg"`
	Place             int        `json:"place"`
	PerMatchPoints    []*float64 `json:"perMatchPoints"`
	PerMatchKills     []*float64 `json:"perMatchKills"`
	PerMatchPlacement []*float64 `json:"perMatchPlacement"`
}

// PerMatchPlayerEntry is the per-match detail behind one player row, used for
// the tooltip breakdown on the results page. Missing stats stay nil.
type PerMatchPlayerEntry struct {
	MatchNumber  int      `json:"matchNumber"`
	Kills        *float64 `json:"kills"`
	Assists      *float64 `json:"assists"`
	Revives      *float64 `json:"revives"`
	DBNOs        *float64 `json:"dbnos"`
	TimeSurvived *float64 `json:"timeSurvived"`
	ADR          *float64 `json:"adr"`
	Impact       float64  `json:"impact"`
}

// PlayerRow is one finalized leaderboard row for a player
type PlayerRow struct {
	Player       string                `json:"player"`
	Team         string                `json:"team"`
	Impact       float64               `json:"impact"`
	ADR          *float64              `json:"adr"`
	Kills        float64               `json:"kills"`
	Assists      float64               `json:"assists"`
	Revives      float64               `json:"revives"`
	DBNOs        float64               `json:"dbnos"`
	TimeSurvived float64               `json:"timeSurvived"`
	Matches      int                   `json:"matches"`
	PerMatch     []PerMatchPlayerEntry `json:"perMatch"`
}
