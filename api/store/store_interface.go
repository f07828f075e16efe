/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"time"

	"tourboard/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	Refresh(ctx context.Context) error
	Loaded() bool
	Config() shared.TournamentConfig
	Roster() []shared.TeamRecord
	TeamRows() []shared.TeamRow
	PlayerRows() []shared.PlayerRow
	MatchCount() int
	ExpectedMatches() int
	LoadedAt() time.Time
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)
