/* store.go
 * Contains the in-memory snapshot store. Every refresh fetches the data files, runs one
 * aggregation pass and swaps the whole snapshot; readers always see a consistent set of rows.
 * Nothing is persisted: the read-only JSON files are the only source of truth and every load
 * recomputes from scratch
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tourboard/api/external"
	"tourboard/api/logic"
	"tourboard/api/shared"
)

type snapshot struct {
	config     shared.TournamentConfig
	roster     []shared.TeamRecord
	teamRows   []shared.TeamRow
	playerRows []shared.PlayerRow
	matchCount int
	expected   int
	loadedAt   time.Time
}

// Store holds the latest aggregated snapshot behind a read lock. The webhook
// refresh path runs concurrently with bot and web reads.
type Store struct {
	client *external.Client

	mu   sync.RWMutex
	snap *snapshot
}

// NewStore creates a store that loads from the given data base URL
func NewStore(baseURL string) (*Store, error) {
	client, err := external.NewClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize fetch client: %w", err)
	}
	return &Store{client: client}, nil
}

// Refresh fetches all data files and rebuilds the snapshot.
// Preconditions: Receives a context for the fetch round-trips
// Postconditions: On success the new snapshot replaces the old one atomically. Tournament or
// roster failures abort the refresh and keep the previous snapshot; missing match files are
// skipped inside the fetch layer and simply shrink the match count
func (s *Store) Refresh(ctx context.Context) error {
	s.client.FetchMeta(ctx)

	config, err := s.client.FetchTournament(ctx)
	if err != nil {
		return err
	}
	roster, err := s.client.FetchTeams(ctx)
	if err != nil {
		return err
	}

	expected := logic.ExpectedMatchCount(config)
	matches := s.client.FetchMatches(ctx, expected)
	teamRows, playerRows := logic.Aggregate(config, roster, matches)

	s.mu.Lock()
	s.snap = &snapshot{
		config:     config,
		roster:     roster,
		teamRows:   teamRows,
		playerRows: playerRows,
		matchCount: len(matches),
		expected:   expected,
		loadedAt:   time.Now(),
	}
	s.mu.Unlock()
	return nil
}

// Loaded reports whether a snapshot is available
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap != nil
}

// Config returns the tournament config of the current snapshot
func (s *Store) Config() shared.TournamentConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return shared.TournamentConfig{}
	}
	return s.snap.config
}

// Roster returns the teams.json roster of the current snapshot
func (s *Store) Roster() []shared.TeamRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil
	}
	return s.snap.roster
}

// TeamRows returns the ranked team standings
func (s *Store) TeamRows() []shared.TeamRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil
	}
	return s.snap.teamRows
}

// PlayerRows returns the ranked player standings
func (s *Store) PlayerRows() []shared.PlayerRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil
	}
	return s.snap.playerRows
}

// MatchCount returns how many match files loaded successfully
func (s *Store) MatchCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return 0
	}
	return s.snap.matchCount
}

// ExpectedMatches returns the planned match total
func (s *Store) ExpectedMatches() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return 0
	}
	return s.snap.expected
}

// LoadedAt returns when the current snapshot was built
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return time.Time{}
	}
	return s.snap.loadedAt
}
