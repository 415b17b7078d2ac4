/* handlers.go
 * Contains the HTTP handlers for the health check and the operator matching
 * trigger
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"log"
	"net/http"
)

// HealthStatus is the /healthz response body
type HealthStatus struct {
	Status         string `json:"status"`
	PendingMembers int    `json:"pending_members"`
	PendingLeaders int    `json:"pending_leaders"`
	MatchedMembers int    `json:"matched_members"`
}

// MatchResponse is the /match response body
type MatchResponse struct {
	Matched int `json:"matched"`
}

// HealthHandler reports liveness and the current pool sizes
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Writes a JSON health summary
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	members, leaders, matched := s.api.State.Counts()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(HealthStatus{
		Status:         "ok",
		PendingMembers: members,
		PendingLeaders: leaders,
		MatchedMembers: matched,
	}); err != nil {
		log.Println("failed to encode health response:", err)
	}
}

// MatchHandler runs a matching pass on request and reports how many pairs
// were confirmed
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: A sweep has run through the background runner
func (s *Server) MatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	matched := s.api.TriggerWait()
	log.Printf("matching pass via web trigger confirmed %d pairs", matched)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(MatchResponse{Matched: matched}); err != nil {
		log.Println("failed to encode match response:", err)
	}
}
