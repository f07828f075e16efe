/* handlers.go
 * Contains the HTTP handlers serving the computed rows to the leaderboard page, plus the refresh
 * webhook the data-preparation pipeline calls after uploading new match files
 * Authors: Zachary Bower
 */

package web

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
)

// TeamsHandler serves the ranked team rows as JSON
// Preconditions: Tournament data has been loaded, receives HTTP ResponseWriter and Request
// Postconditions: Writes the team rows, or 503 when no snapshot is available yet
func (s *Server) TeamsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rows, err := s.api.Standings()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, rows)
}

// PlayersHandler serves the ranked player rows as JSON
func (s *Server) PlayersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	rows, err := s.api.PlayerStandings()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, rows)
}

// StatusHandler serves the derived tournament status (countdown / progress / podium)
func (s *Server) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	status, err := s.api.Status()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, status)
}

// RefreshWebhookHandler kicks off a data refresh when the data files change
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Request
// Postconditions: Kicks off the async refresh of the aggregated standings
func (s *Server) RefreshWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	// Kick async pipeline; readers keep the previous snapshot until it lands
	go func() {
		if err := s.api.Refresh(context.Background()); err != nil {
			log.Println("refresh failed:", err)
		}
	}()

	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("failed to encode response:", err)
	}
}
