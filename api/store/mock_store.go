/* mock_store.go
 * Contains a mock implementation of the store Interface for testing
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"time"

	"tourboard/api/shared"
)

// MockStore implements Interface with canned data for testing consumers
// without any network fetches
type MockStore struct {
	IsLoaded       bool
	RefreshErr     error
	RefreshCalls   int
	MockConfig     shared.TournamentConfig
	MockRoster     []shared.TeamRecord
	MockTeamRows   []shared.TeamRow
	MockPlayerRows []shared.PlayerRow
	MockMatchCount int
	MockExpected   int
	MockLoadedAt   time.Time
}

// Refresh records the call and returns the configured error
func (m *MockStore) Refresh(ctx context.Context) error {
	m.RefreshCalls++
	if m.RefreshErr != nil {
		return m.RefreshErr
	}
	m.IsLoaded = true
	return nil
}

// Loaded reports the canned loaded flag
func (m *MockStore) Loaded() bool {
	return m.IsLoaded
}

// Config returns the canned tournament config
func (m *MockStore) Config() shared.TournamentConfig {
	return m.MockConfig
}

// Roster returns the canned roster
func (m *MockStore) Roster() []shared.TeamRecord {
	return m.MockRoster
}

// TeamRows returns the canned team standings
func (m *MockStore) TeamRows() []shared.TeamRow {
	return m.MockTeamRows
}

// PlayerRows returns the canned player standings
func (m *MockStore) PlayerRows() []shared.PlayerRow {
	return m.MockPlayerRows
}

// MatchCount returns the canned loaded-match count
func (m *MockStore) MatchCount() int {
	return m.MockMatchCount
}

// ExpectedMatches returns the canned planned-match count
func (m *MockStore) ExpectedMatches() int {
	return m.MockExpected
}

// LoadedAt returns the canned snapshot time
func (m *MockStore) LoadedAt() time.Time {
	return m.MockLoadedAt
}

// Ensure MockStore implements Interface
var _ Interface = (*MockStore)(nil)
