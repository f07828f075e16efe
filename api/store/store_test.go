/* store_test.go
 * Contains unit tests for store.go functions
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// dataServer serves a minimal but complete set of tournament data files
func dataServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tournament.json":
			w.Write([]byte(`{
				"title": "Кубок",
				"scoring": {"killPoints": 1, "placements": [{"place": 1, "points": 10}]},
				"matches": {"total": 2}
			}`))
		case "/teams.json":
			w.Write([]byte(`[{"id": 1, "name": "Альфа"}, {"id": 2, "name": "Браво"}]`))
		case "/match1.json":
			w.Write([]byte(`{"matchId": 1, "teams": [{"teamId": 1, "kills": 3, "placement": 1}]}`))
		case "/match2.json":
			w.Write([]byte(`{"matchId": 2, "teams": [{"teamId": 2, "kills": 1, "placement": 1}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

// TestStore_RefreshBuildsSnapshot tests a full fetch-and-aggregate round trip
func TestStore_RefreshBuildsSnapshot(t *testing.T) {
	server := dataServer(t)
	defer server.Close()

	s, err := NewStore(server.URL)
	assert.NoError(t, err)
	assert.False(t, s.Loaded())

	err = s.Refresh(context.Background())

	assert.NoError(t, err)
	assert.True(t, s.Loaded())
	assert.Equal(t, "Кубок", s.Config().Title)
	assert.Len(t, s.Roster(), 2)
	assert.Equal(t, 2, s.MatchCount())
	assert.Equal(t, 2, s.ExpectedMatches())
	assert.False(t, s.LoadedAt().IsZero())

	rows := s.TeamRows()
	assert.Len(t, rows, 2)
	// Team 1: 10 placement + 3 kills = 13 beats team 2's 11
	assert.Equal(t, 1, rows[0].ID)
	assert.Equal(t, 13.0, rows[0].Points)
	assert.Equal(t, 11.0, rows[1].Points)
}

// TestStore_RefreshFailureKeepsSnapshot tests that a broken refresh preserves the
// previous data
func TestStore_RefreshFailureKeepsSnapshot(t *testing.T) {
	server := dataServer(t)
	defer server.Close()

	var broken atomic.Bool
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if broken.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		response, err := http.Get(server.URL + r.URL.Path)
		if err != nil {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		defer response.Body.Close()
		w.WriteHeader(response.StatusCode)
		io.Copy(w, response.Body)
	}))
	defer proxy.Close()

	s, err := NewStore(proxy.URL)
	assert.NoError(t, err)
	assert.NoError(t, s.Refresh(context.Background()))
	loadedAt := s.LoadedAt()

	broken.Store(true)
	err = s.Refresh(context.Background())

	assert.Error(t, err)
	assert.True(t, s.Loaded())
	assert.Equal(t, "Кубок", s.Config().Title)
	assert.Equal(t, loadedAt, s.LoadedAt())
	assert.Len(t, s.TeamRows(), 2)
}

// TestStore_RefreshSkipsMissingMatch tests that one missing match file only shrinks
// the match count
func TestStore_RefreshSkipsMissingMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tournament.json":
			w.Write([]byte(`{"scoring": {"killPoints": 1}, "matches": {"total": 2}}`))
		case "/teams.json":
			w.Write([]byte(`[{"id": 1, "name": "Альфа"}]`))
		case "/match1.json":
			w.Write([]byte(`{"matchId": 1, "teams": [{"teamId": 1, "kills": 2, "placement": 1}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s, _ := NewStore(server.URL)
	err := s.Refresh(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, s.MatchCount())
	assert.Equal(t, 2, s.ExpectedMatches())
	// The failed match's slot stays empty in the per-match arrays
	assert.Len(t, s.TeamRows()[0].PerMatchPoints, 2)
	assert.Nil(t, s.TeamRows()[0].PerMatchPoints[1])
}

// TestStore_RefreshKeepsSlotsForIdlessMatches tests that match files without a matchId
// stay in their file's slot when a middle file fails to load
func TestStore_RefreshKeepsSlotsForIdlessMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tournament.json":
			w.Write([]byte(`{"scoring": {"killPoints": 1}, "matches": {"total": 3}}`))
		case "/teams.json":
			w.Write([]byte(`[{"id": 1, "name": "Альфа"}]`))
		case "/match1.json":
			w.Write([]byte(`{"teams": [{"teamId": 1, "kills": 1, "placement": 1}]}`))
		case "/match3.json":
			w.Write([]byte(`{"teams": [{"teamId": 1, "kills": 2, "placement": 2}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s, _ := NewStore(server.URL)
	err := s.Refresh(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, s.MatchCount())

	row := s.TeamRows()[0]
	// Match 3 must not shift into the failed match 2's slot
	assert.Len(t, row.PerMatchPoints, 3)
	assert.NotNil(t, row.PerMatchPoints[0])
	assert.Nil(t, row.PerMatchPoints[1])
	assert.NotNil(t, row.PerMatchPoints[2])
}

// TestStore_EmptyBeforeRefresh tests the zero-value reads before any load
func TestStore_EmptyBeforeRefresh(t *testing.T) {
	s, err := NewStore("http://127.0.0.1:1")

	assert.NoError(t, err)
	assert.False(t, s.Loaded())
	assert.Nil(t, s.TeamRows())
	assert.Nil(t, s.PlayerRows())
	assert.Nil(t, s.Roster())
	assert.Equal(t, 0, s.MatchCount())
	assert.True(t, s.LoadedAt().IsZero())
}
