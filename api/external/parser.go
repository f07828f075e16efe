/* parser.go
 * Contains the logic used in processing decoded data files and parsing them into the typed
 * records the aggregation engine consumes. The files are produced by a spreadsheet export and
 * carry loosely typed scalars, so every field is probed with type assertions and numeric fields
 * stay raw until api/parse normalizes them
 * Authors: Zachary Bower
 */

package external

import (
	"fmt"
	"log"
	"time"

	"tourboard/api/parse"
	"tourboard/api/shared"
)

// ParseTournamentConfig converts decoded tournament.json into a config record.
// Preconditions: Receives the decoded JSON value
// Postconditions: Returns the config, or an error when the document is not an object.
// Individual fields that are missing or mistyped fall back to zero values
func ParseTournamentConfig(raw any) (shared.TournamentConfig, error) {
	root, ok := raw.(map[string]any)
	if !ok {
		return shared.TournamentConfig{}, fmt.Errorf("tournament config is not a JSON object")
	}

	cfg := shared.TournamentConfig{
		Title:       stringField(root, "title"),
		Description: stringField(root, "description"),
		Rules:       stringList(root["rules"]),
		StartTime:   parseStartTime(root["startTime"]),
	}

	if scoring, ok := root["scoring"].(map[string]any); ok {
		cfg.Scoring.KillPoints = scoring["killPoints"]
		if placements, ok := scoring["placements"].([]any); ok {
			for _, item := range placements {
				rule, ok := item.(map[string]any)
				if !ok {
					continue
				}
				cfg.Scoring.Placements = append(cfg.Scoring.Placements, shared.PlacementRule{
					Place:  rule["place"],
					Points: rule["points"],
				})
			}
		}
	}

	if matches, ok := root["matches"].(map[string]any); ok {
		cfg.Matches.Total = matches["total"]
		cfg.Matches.Maps = stringList(matches["maps"])
	}

	return cfg, nil
}

// ParseTeamRecords converts decoded teams.json into the roster.
// Preconditions: Receives the decoded JSON value
// Postconditions: Returns the roster or an error when the document is not an array. Entries
// without a usable numeric id are logged and skipped
func ParseTeamRecords(raw any) ([]shared.TeamRecord, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("teams file is not a JSON array")
	}

	var roster []shared.TeamRecord
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id := parse.ToNumber(entry["id"])
		if !parse.IsFinite(id) {
			log.Printf("warning: skipping roster entry without a numeric id: %v", entry)
			continue
		}
		name := stringField(entry, "name")
		if name == "" {
			name = fmt.Sprintf("Команда %d", int(id))
		}
		roster = append(roster, shared.TeamRecord{ID: int(id), Name: name})
	}
	return roster, nil
}

// ParseMatchRecord converts one decoded match<N>.json into a match record.
// Preconditions: Receives the decoded JSON value
// Postconditions: Returns the record, or an error when the document is not an object. Numeric
// fields are kept raw; absent team/player lists yield an empty (still aggregatable) match
func ParseMatchRecord(raw any) (*shared.MatchRecord, error) {
	root, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("match file is not a JSON object")
	}

	record := &shared.MatchRecord{
		MatchID:  root["matchId"],
		Map:      stringField(root, "map"),
		Date:     root["date"],
		Duration: root["duration"],
	}

	if teams, ok := root["teams"].([]any); ok {
		for _, item := range teams {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			record.Teams = append(record.Teams, shared.MatchTeamEntry{
				TeamID:      entry["teamId"],
				Kills:       entry["kills"],
				Placement:   entry["placement"],
				TotalPoints: entry["totalPoints"],
			})
		}
	}

	if players, ok := root["players"].([]any); ok {
		for _, item := range players {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			record.Players = append(record.Players, shared.MatchPlayerEntry{
				Name:         playerIdentity(entry),
				TeamID:       entry["teamId"],
				ADR:          entry["adr"],
				Kills:        entry["kills"],
				Assists:      entry["assists"],
				Revives:      entry["revives"],
				DBNOs:        dbnoField(entry),
				TimeSurvived: entry["timeSurvived"],
			})
		}
	}

	return record, nil
}

// playerIdentity resolves the player display name from whichever identity
// field the export wrote, in fixed priority: nickname, then player, then name
func playerIdentity(entry map[string]any) string {
	for _, key := range []string{"nickname", "player", "name"} {
		if value, ok := entry[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// dbnoField reads the knockdown count, which appears both upper- and lowercased
func dbnoField(entry map[string]any) any {
	if value, ok := entry["DBNOs"]; ok {
		return value
	}
	return entry["dbnos"]
}

// parseStartTime accepts the startTime field as an epoch number (seconds or
// milliseconds) or a timestamp string. Anything unparseable means the
// tournament has no valid start time and the countdown state is unreachable.
func parseStartTime(raw any) *time.Time {
	switch v := raw.(type) {
	case float64:
		if v <= 0 {
			return nil
		}
		// Epoch milliseconds past ~2001-09 in seconds would be year 33658;
		// treat anything that large as milliseconds
		if v > 1e12 {
			t := time.UnixMilli(int64(v)).UTC()
			return &t
		}
		t := time.Unix(int64(v), 0).UTC()
		return &t
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04"} {
			if t, err := time.Parse(layout, v); err == nil {
				t = t.UTC()
				return &t
			}
		}
		return nil
	default:
		return nil
	}
}

func stringField(m map[string]any, key string) string {
	value, _ := m[key].(string)
	return value
}

func stringList(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var values []string
	for _, item := range items {
		if value, ok := item.(string); ok {
			values = append(values, value)
		}
	}
	return values
}
