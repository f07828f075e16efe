/* api.go
 * This file contains the public methods for interacting with this package. For consistent results,
 * functions should only be called from this file, not the sub packages for logic and store
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"tourboard/api/logic"
	"tourboard/api/shared"
	"tourboard/api/store"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// API provides methods for interacting with the tournament leaderboard data layer
type API struct {
	Store store.Interface
}

// NewAPI creates a new API instance loading from the provided data base URL
func NewAPI(baseURL string) (*API, error) {
	s, err := store.NewStore(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	return &API{Store: s}, nil
}

// Refresh re-fetches the data files and recomputes the standings
func (a *API) Refresh(ctx context.Context) error {
	return a.Store.Refresh(ctx)
}

// Standings returns the ranked team rows
func (a *API) Standings() ([]shared.TeamRow, error) {
	if !a.Store.Loaded() {
		return nil, fmt.Errorf("tournament data has not been loaded")
	}
	return a.Store.TeamRows(), nil
}

// PlayerStandings returns the ranked player rows
func (a *API) PlayerStandings() ([]shared.PlayerRow, error) {
	if !a.Store.Loaded() {
		return nil, fmt.Errorf("tournament data has not been loaded")
	}
	return a.Store.PlayerRows(), nil
}

// Status derives the current tournament lifecycle status from the snapshot
func (a *API) Status() (logic.Status, error) {
	if !a.Store.Loaded() {
		return logic.Status{}, fmt.Errorf("tournament data has not been loaded")
	}
	cfg := a.Store.Config()
	return logic.EvaluateStatus(time.Now(), cfg.StartTime, a.Store.MatchCount(), a.Store.ExpectedMatches(), a.Store.TeamRows()), nil
}

// TournamentInfo gets the following information about the tournament: title, planned matches,
// loaded matches, maps, and kill points.
// It returns a string slice with the contents attribute : value containing the information listed above.
func (a *API) TournamentInfo() ([]string, error) {
	if !a.Store.Loaded() {
		return nil, fmt.Errorf("tournament data has not been loaded")
	}
	cfg := a.Store.Config()

	var values []string
	values = append(values, fmt.Sprintf("Турнир: %s", cfg.Title))
	if cfg.Description != "" {
		values = append(values, cfg.Description)
	}
	values = append(values, fmt.Sprintf("Матчей сыграно: %d из %d", a.Store.MatchCount(), a.Store.ExpectedMatches()))
	if len(cfg.Matches.Maps) > 0 {
		values = append(values, fmt.Sprintf("Карты: %s", strings.Join(cfg.Matches.Maps, ", ")))
	}
	values = append(values, fmt.Sprintf("Очков за убийство: %s", fmtNumber(parseKillPoints(cfg))))
	for _, rule := range cfg.Rules {
		values = append(values, fmt.Sprintf("• %s", rule))
	}
	return values, nil
}

// StandingsReport builds the team leaderboard summary string.
// Preconditions: Receives receiver pointer to api
// Postconditions: Returns a string with one line per team in ranking order, or an error if the
// data has not been loaded
func (a *API) StandingsReport() (string, error) {
	rows, err := a.Standings()
	if err != nil {
		return "", err
	}

	var response strings.Builder
	response.WriteString("Турнирная таблица:\n")
	for _, row := range rows {
		response.WriteString(fmt.Sprintf("%d. %s — %s оч., %s убийств, ср. место %s, матчей %d\n",
			row.Place, row.Team, fmtNumber(row.Points), fmtNumber(row.Kills), fmtOptional(row.PlaceAvg), row.Matches))
	}
	return response.String(), nil
}

// PlayersReport builds the player leaderboard summary string, best impact first
func (a *API) PlayersReport() (string, error) {
	rows, err := a.PlayerStandings()
	if err != nil {
		return "", err
	}

	var response strings.Builder
	response.WriteString("Лучшие игроки:\n")
	for i, row := range rows {
		response.WriteString(fmt.Sprintf("%d. %s (%s) — импакт %s, ADR %s, убийств %s\n",
			i+1, row.Player, row.Team, fmtNumber(row.Impact), fmtOptional(row.ADR), fmtNumber(row.Kills)))
	}
	return response.String(), nil
}

// TeamReport builds the per-match breakdown for one team, located by fuzzy name match.
// Preconditions: Receives the (possibly misspelled) team name from user input
// Postconditions: Returns the team summary with per-match points/kills/placement pills, or an
// error when no team matches the query
func (a *API) TeamReport(name string) (string, error) {
	rows, err := a.Standings()
	if err != nil {
		return "", err
	}

	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Team
	}
	index, err := matchName(name, names)
	if err != nil {
		return "", err
	}
	row := rows[index]

	var response strings.Builder
	response.WriteString(fmt.Sprintf("%s — место %d\n", row.Team, row.Place))
	response.WriteString(fmt.Sprintf("Очки: %s, убийства: %s, ср. место: %s, матчей: %d\n",
		fmtNumber(row.Points), fmtNumber(row.Kills), fmtOptional(row.PlaceAvg), row.Matches))
	for slot := range row.PerMatchPoints {
		response.WriteString(fmt.Sprintf("Матч %d: очки %s, убийства %s, место %s\n",
			slot+1,
			fmtOptional(row.PerMatchPoints[slot]),
			fmtOptional(row.PerMatchKills[slot]),
			fmtOptional(row.PerMatchPlacement[slot])))
	}
	return response.String(), nil
}

// PlayerReport builds the per-match breakdown for one player, located by fuzzy name match
func (a *API) PlayerReport(name string) (string, error) {
	rows, err := a.PlayerStandings()
	if err != nil {
		return "", err
	}

	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = row.Player
	}
	index, err := matchName(name, names)
	if err != nil {
		return "", err
	}
	row := rows[index]

	var response strings.Builder
	response.WriteString(fmt.Sprintf("%s (%s)\n", row.Player, row.Team))
	response.WriteString(fmt.Sprintf("Импакт: %s, ADR: %s, убийств: %s, поддержек: %s, ревайвов: %s, матчей: %d\n",
		fmtNumber(row.Impact), fmtOptional(row.ADR), fmtNumber(row.Kills), fmtNumber(row.Assists), fmtNumber(row.Revives), row.Matches))
	for _, entry := range row.PerMatch {
		response.WriteString(fmt.Sprintf("Матч %d: убийства %s, ADR %s, импакт %s\n",
			entry.MatchNumber, fmtOptional(entry.Kills), fmtOptional(entry.ADR), fmtNumber(entry.Impact)))
	}
	return response.String(), nil
}

// StatusReport builds the status card text: a countdown before the start, the podium once the
// tournament has completed, and a progress line in between
func (a *API) StatusReport() (string, error) {
	status, err := a.Status()
	if err != nil {
		return "", err
	}

	var response strings.Builder
	switch status.State {
	case logic.StateNotStarted:
		c := status.Countdown
		response.WriteString("Турнир ещё не начался. До старта: ")
		response.WriteString(fmt.Sprintf("%d %s %d %s %d %s %d %s\n",
			c.Days, c.DaysLabel, c.Hours, c.HoursLabel, c.Minutes, c.MinutesLabel, c.Seconds, c.SecondsLabel))
	case logic.StateCompleted:
		response.WriteString("Турнир завершён! Призёры:\n")
		medals := []string{"🥇", "🥈", "🥉"}
		for i, row := range status.Podium {
			response.WriteString(fmt.Sprintf("%s %s — %s оч.\n", medals[i], row.Team, fmtNumber(row.Points)))
		}
	case logic.StateInProgress:
		response.WriteString(fmt.Sprintf("Турнир идёт. Матчей сыграно: %d из %d\n",
			a.Store.MatchCount(), a.Store.ExpectedMatches()))
	default:
		response.WriteString("Нет данных о статусе турнира\n")
	}
	return response.String(), nil
}

// StartCountdownTicker re-evaluates the status once per second and passes it to onTick,
// stopping on its own once the start time has been crossed (the state leaves NotStarted).
// Preconditions: Receives the callback to run on each tick
// Postconditions: Returns a stop function; calling it more than once is safe
func (a *API) StartCountdownTicker(onTick func(logic.Status)) func() {
	stop := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				status, err := a.Status()
				if err != nil {
					continue
				}
				onTick(status)
				if status.State != logic.StateNotStarted {
					return
				}
			}
		}
	}()

	return func() {
		once.Do(func() { close(stop) })
	}
}

// matchName finds the best fuzzy match for a user-entered name.
// Preconditions: Receives the query and the list of display names
// Postconditions: Returns the index of the matched name, preferring an exact (case-insensitive)
// match when several candidates rank, or an error when nothing matches
func matchName(query string, names []string) (int, error) {
	lookup := make(map[string]int)
	var namesLower []string
	for i, name := range names {
		lower := strings.ToLower(name)
		lookup[lower] = i
		namesLower = append(namesLower, lower)
	}

	lowerQuery := strings.ToLower(strings.TrimSpace(query))
	results := fuzzy.RankFind(lowerQuery, namesLower)
	if len(results) == 0 {
		return 0, fmt.Errorf("no team or player matches '%s'", query)
	}
	best := results[0].Target
	for _, result := range results {
		if result.Target == lowerQuery {
			best = result.Target
		}
	}
	return lookup[best], nil
}
