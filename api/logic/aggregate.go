/* aggregate.go
 * Contains the aggregation engine: one pass over the loaded match records folds raw per-match
 * results into team and player accumulators, which are then finalized into sorted leaderboard
 * rows. Everything is recomputed from scratch on every load; there is no incremental state
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"log"
	"math"
	"sort"

	"tourboard/api/parse"
	"tourboard/api/scoring"
	"tourboard/api/shared"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ruCollator orders player names the way the results page does
// (localeCompare with the ru locale)
var ruCollator = collate.New(language.Russian)

type teamAccumulator struct {
	id           int
	name         string
	points       float64
	kills        float64
	matches      int
	placementSum float64
	placeCount   int
	perPoints    []*float64
	perKills     []*float64
	perPlacement []*float64
}

type playerAccumulator struct {
	name         string
	teamID       int
	hasTeam      bool
	kills        float64
	assists      float64
	revives      float64
	dbnos        float64
	timeSurvived float64
	adrSum       float64
	adrCount     int
	matches      int
	perMatch     []shared.PerMatchPlayerEntry
}

// ExpectedMatchCount returns the planned number of matches: the configured
// total when it parses as a positive number, else the length of the map list
func ExpectedMatchCount(cfg shared.TournamentConfig) int {
	total := parse.ToNumber(cfg.Matches.Total)
	if parse.IsFinite(total) && total > 0 {
		return int(total)
	}
	return len(cfg.Matches.Maps)
}

// Aggregate folds the loaded match records into team and player standings.
// Preconditions: Receives the tournament config, the roster from teams.json, and the match
// records that loaded successfully (failed matches are already absent from the slice)
// Postconditions: Returns the ranked team rows (dense place 1..N) and ranked player rows.
// Output is deterministic for identical input; re-running yields identical ordering
func Aggregate(cfg shared.TournamentConfig, roster []shared.TeamRecord, matches []shared.MatchRecord) ([]shared.TeamRow, []shared.PlayerRow) {
	resolver := scoring.NewResolver(cfg.Scoring.Placements)
	killPoints := parse.ToNumber(cfg.Scoring.KillPoints)
	if !parse.IsFinite(killPoints) {
		killPoints = 0
	}

	teams := make(map[int]*teamAccumulator)
	players := make(map[string]*playerAccumulator)

	// Every roster team gets a row even with zero matches played
	for _, rec := range roster {
		teams[rec.ID] = &teamAccumulator{id: rec.ID, name: rec.Name}
	}

	slotCount := ExpectedMatchCount(cfg)

	for i, match := range matches {
		slot := matchSlot(match, i)
		if slot+1 > slotCount {
			slotCount = slot + 1
		}

		for _, entry := range match.Teams {
			foldTeamEntry(teams, entry, slot, resolver, killPoints)
		}
		for _, entry := range match.Players {
			foldPlayerEntry(players, entry, slot)
		}
	}

	return finalizeTeams(teams, slotCount), finalizePlayers(players, teams)
}

// matchSlot derives the per-match array index: matchId-1 when the match
// declares a positive finite number, then the source file number when the
// fetch layer stamped one (so a failed earlier file leaves its slot empty
// instead of shifting later matches into it), else the match's position in
// the slice. Two matches resolving to the same slot write it last-one-wins,
// matching the source data's array-index assignment.
func matchSlot(match shared.MatchRecord, loadIndex int) int {
	id := parse.ToNumber(match.MatchID)
	if parse.IsFinite(id) && id >= 1 {
		return int(id) - 1
	}
	if match.FileNumber >= 1 {
		return match.FileNumber - 1
	}
	return loadIndex
}

// foldTeamEntry accumulates one team's line of one match
func foldTeamEntry(teams map[int]*teamAccumulator, entry shared.MatchTeamEntry, slot int, resolver *scoring.Resolver, killPoints float64) {
	teamID := parse.ToNumber(entry.TeamID)
	if !parse.IsFinite(teamID) {
		// A result line that cannot be attributed to a team is unusable
		return
	}
	acc, ok := teams[int(teamID)]
	if !ok {
		// Team played but is missing from teams.json; synthesize a placeholder
		acc = &teamAccumulator{id: int(teamID), name: fmt.Sprintf("Команда %d", int(teamID))}
		teams[int(teamID)] = acc
	}

	// Kill absence scores as zero kills since the kill count feeds straight
	// into the point computation
	kills := parse.ToNumber(entry.Kills)
	if !parse.IsFinite(kills) {
		kills = 0
	}

	// Placement stays absent (not zero) when it never parsed; absent
	// placements are excluded from the average entirely
	placement := parse.ToNumber(entry.Placement)

	points := parse.ToNumber(entry.TotalPoints)
	if !parse.IsFinite(points) {
		points = resolver.Resolve(placement) + kills*killPoints
	}

	acc.points += points
	acc.kills += kills
	acc.matches++
	if parse.IsFinite(placement) {
		acc.placementSum += placement
		acc.placeCount++
	}

	acc.perPoints = growSlots(acc.perPoints, slot)
	acc.perKills = growSlots(acc.perKills, slot)
	acc.perPlacement = growSlots(acc.perPlacement, slot)
	acc.perPoints[slot] = ptr(points)
	acc.perKills[slot] = ptr(kills)
	if parse.IsFinite(placement) {
		acc.perPlacement[slot] = ptr(placement)
	}
}

// foldPlayerEntry accumulates one player's stat line of one match.
// Players are keyed by display name only; two players sharing a nickname
// across teams merge into one row (known upstream limitation).
func foldPlayerEntry(players map[string]*playerAccumulator, entry shared.MatchPlayerEntry, slot int) {
	if entry.Name == "" {
		return
	}
	acc, ok := players[entry.Name]
	if !ok {
		acc = &playerAccumulator{name: entry.Name}
		players[entry.Name] = acc
	}

	// Last writer wins on the team binding so a stand-in ends up under the
	// team of their most recent match. A rebind is worth surfacing because it
	// can also mean two different players share one nickname.
	if teamID := parse.ToNumber(entry.TeamID); parse.IsFinite(teamID) {
		if acc.hasTeam && acc.teamID != int(teamID) {
			log.Printf("player %q rebound from team %d to team %d", acc.name, acc.teamID, int(teamID))
		}
		acc.teamID = int(teamID)
		acc.hasTeam = true
	}

	kills := parse.ToNumber(entry.Kills)
	assists := parse.ToNumber(entry.Assists)
	revives := parse.ToNumber(entry.Revives)
	dbnos := parse.ToNumber(entry.DBNOs)
	timeSurvived := parse.ToNumber(entry.TimeSurvived)
	adr := parse.ToNumber(entry.ADR)

	// Sums only reflect finite occurrences; a missing stat is absent, not zero
	addFinite(&acc.kills, kills)
	addFinite(&acc.assists, assists)
	addFinite(&acc.revives, revives)
	addFinite(&acc.dbnos, dbnos)
	addFinite(&acc.timeSurvived, timeSurvived)
	if parse.IsFinite(adr) {
		acc.adrSum += adr
		acc.adrCount++
	}
	acc.matches++

	acc.perMatch = append(acc.perMatch, shared.PerMatchPlayerEntry{
		MatchNumber:  slot + 1,
		Kills:        finitePtr(kills),
		Assists:      finitePtr(assists),
		Revives:      finitePtr(revives),
		DBNOs:        finitePtr(dbnos),
		TimeSurvived: finitePtr(timeSurvived),
		ADR:          finitePtr(adr),
		Impact: scoring.Impact(scoring.ImpactStats{
			Kills:        kills,
			Assists:      assists,
			Revives:      revives,
			DBNOs:        dbnos,
			TimeSurvived: timeSurvived,
			ADR:          adr,
		}),
	})
}

// finalizeTeams converts the accumulators into ranked rows.
// Sort order: points desc, placement average asc (teams with no placement
// data last), kills desc, id asc. The id tie-break makes the order fully
// deterministic regardless of input order.
func finalizeTeams(teams map[int]*teamAccumulator, slotCount int) []shared.TeamRow {
	rows := make([]shared.TeamRow, 0, len(teams))
	for _, acc := range teams {
		row := shared.TeamRow{
			ID:                acc.id,
			Team:              shared.TeamRecord{ID: acc.id, Name: acc.name}.DisplayName(),
			Points:            acc.points,
			Kills:             acc.kills,
			Matches:           acc.matches,
			PerMatchPoints:    padSlots(acc.perPoints, slotCount),
			PerMatchKills:     padSlots(acc.perKills, slotCount),
			PerMatchPlacement: padSlots(acc.perPlacement, slotCount),
		}
		if acc.placeCount > 0 {
			row.PlaceAvg = ptr(acc.placementSum / float64(acc.placeCount))
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if avgA, avgB := placeAvgOrInf(a.PlaceAvg), placeAvgOrInf(b.PlaceAvg); avgA != avgB {
			return avgA < avgB
		}
		if a.Kills != b.Kills {
			return a.Kills > b.Kills
		}
		return a.ID < b.ID
	})

	for i := range rows {
		rows[i].Place = i + 1
	}
	return rows
}

// finalizePlayers converts the accumulators into ranked rows.
// Sort order: impact desc, kills desc, ADR desc (missing ADR last), then
// player name in Russian collation order.
func finalizePlayers(players map[string]*playerAccumulator, teams map[int]*teamAccumulator) []shared.PlayerRow {
	rows := make([]shared.PlayerRow, 0, len(players))
	for _, acc := range players {
		row := shared.PlayerRow{
			Player:       acc.name,
			Kills:        acc.kills,
			Assists:      acc.assists,
			Revives:      acc.revives,
			DBNOs:        acc.dbnos,
			TimeSurvived: acc.timeSurvived,
			Matches:      acc.matches,
			PerMatch:     acc.perMatch,
		}
		if acc.adrCount > 0 {
			row.ADR = ptr(acc.adrSum / float64(acc.adrCount))
		}
		adr := 0.0
		if row.ADR != nil {
			adr = *row.ADR
		}
		// The row-level impact feeds the tournament-wide averaged ADR into
		// the same formula the per-match entries use
		row.Impact = scoring.Impact(scoring.ImpactStats{
			Kills:        acc.kills,
			Assists:      acc.assists,
			Revives:      acc.revives,
			DBNOs:        acc.dbnos,
			TimeSurvived: acc.timeSurvived,
			ADR:          adr,
		})
		if acc.hasTeam {
			if team, ok := teams[acc.teamID]; ok {
				row.Team = shared.TeamRecord{ID: team.id, Name: team.name}.DisplayName()
			} else {
				row.Team = fmt.Sprintf("№%d", acc.teamID)
			}
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Impact != b.Impact {
			return a.Impact > b.Impact
		}
		if a.Kills != b.Kills {
			return a.Kills > b.Kills
		}
		if adrA, adrB := adrOrNegInf(a.ADR), adrOrNegInf(b.ADR); adrA != adrB {
			return adrA > adrB
		}
		return ruCollator.CompareString(a.Player, b.Player) < 0
	})
	return rows
}

func addFinite(sum *float64, n float64) {
	if parse.IsFinite(n) {
		*sum += n
	}
}

func growSlots(slots []*float64, slot int) []*float64 {
	for len(slots) <= slot {
		slots = append(slots, nil)
	}
	return slots
}

func padSlots(slots []*float64, slotCount int) []*float64 {
	padded := make([]*float64, slotCount)
	copy(padded, slots)
	return padded
}

func placeAvgOrInf(avg *float64) float64 {
	if avg == nil {
		// No placement data sorts behind every real average
		return math.Inf(1)
	}
	return *avg
}

func adrOrNegInf(adr *float64) float64 {
	if adr == nil {
		return math.Inf(-1)
	}
	return *adr
}

func ptr(n float64) *float64 {
	return &n
}

func finitePtr(n float64) *float64 {
	if !parse.IsFinite(n) {
		return nil
	}
	return &n
}
