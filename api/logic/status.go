/* status.go
 * Contains the tournament status engine. The state is derived fresh on every evaluation from the
 * clock, the configured start time and the aggregated rows; there is no stored transition history
 * Authors: Zachary Bower
 */

package logic

import (
	"time"

	"tourboard/api/shared"
)

// State is the derived tournament lifecycle state
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
	StatePending    State = "pending"
)

// podiumSize is how many ranked teams the completed payload carries
const podiumSize = 3

// Countdown is the remaining time until the tournament starts, floored to
// whole seconds, with pre-pluralized Russian unit labels for the status card
type Countdown struct {
	Days         int    `json:"days"`
	Hours        int    `json:"hours"`
	Minutes      int    `json:"minutes"`
	Seconds      int    `json:"seconds"`
	DaysLabel    string `json:"daysLabel"`
	HoursLabel   string `json:"hoursLabel"`
	MinutesLabel string `json:"minutesLabel"`
	SecondsLabel string `json:"secondsLabel"`
}

// Status is the payload the status card renders
type Status struct {
	State     State            `json:"state"`
	Countdown *Countdown       `json:"countdown,omitempty"`
	Podium    []shared.TeamRow `json:"podium,omitempty"`
}

// EvaluateStatus derives the tournament state.
// Preconditions: Receives the current time, the configured start time (nil when absent or
// invalid), the number of successfully loaded matches, the planned match count, and the ranked
// team rows
// Postconditions: Returns the state with a countdown payload while not started, or the top-3
// podium once completed. Pure: same inputs always produce the same status
func EvaluateStatus(now time.Time, startTime *time.Time, matchCount int, expectedMatches int, teamRows []shared.TeamRow) Status {
	hasResults := false
	for _, row := range teamRows {
		if row.Points != 0 || row.Matches > 0 {
			hasResults = true
			break
		}
	}

	switch {
	case startTime != nil && now.Before(*startTime):
		return Status{
			State:     StateNotStarted,
			Countdown: NewCountdown(startTime.Sub(now)),
		}
	case expectedMatches > 0 && matchCount >= expectedMatches && hasResults:
		podium := teamRows
		if len(podium) > podiumSize {
			podium = podium[:podiumSize]
		}
		return Status{State: StateCompleted, Podium: podium}
	case (startTime != nil && !now.Before(*startTime)) || hasResults:
		return Status{State: StateInProgress}
	default:
		return Status{State: StatePending}
	}
}

// NewCountdown splits a remaining duration into day/hour/minute/second parts,
// floored to whole seconds. Negative durations clamp to zero.
func NewCountdown(remaining time.Duration) *Countdown {
	total := int(remaining / time.Second)
	if total < 0 {
		total = 0
	}
	c := &Countdown{
		Days:    total / 86400,
		Hours:   total / 3600 % 24,
		Minutes: total / 60 % 60,
		Seconds: total % 60,
	}
	c.DaysLabel = ruPlural(c.Days, "день", "дня", "дней")
	c.HoursLabel = ruPlural(c.Hours, "час", "часа", "часов")
	c.MinutesLabel = ruPlural(c.Minutes, "минута", "минуты", "минут")
	c.SecondsLabel = ruPlural(c.Seconds, "секунда", "секунды", "секунд")
	return c
}

// ruPlural picks the Russian plural form for a count: one (1, 21, 31...),
// few (2-4, 22-24...), many (everything else, including 11-14)
func ruPlural(n int, one string, few string, many string) string {
	if n < 0 {
		n = -n
	}
	if n%100 >= 11 && n%100 <= 14 {
		return many
	}
	switch n % 10 {
	case 1:
		return one
	case 2, 3, 4:
		return few
	default:
		return many
	}
}
