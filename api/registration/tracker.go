/* tracker.go
 * Contains the Tracker that owns all in-progress registration sessions.
 * Sessions carry an expiry timestamp instead of a blocking wait: the reaper
 * purges expired ones outright, cancellation rather than suspension
 * Authors: Zachary Bower
 */

package registration

import (
	"sync"
	"time"

	"teammatch-bot/api/shared"
)

// DefaultTTL mirrors the 60 second input timeout of the interactive prompts
const DefaultTTL = 60 * time.Second

// Tracker owns the in-progress session map
type Tracker struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*Session
}

// NewTracker creates a Tracker whose sessions expire after ttl of inactivity
func NewTracker(ttl time.Duration) *Tracker {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Tracker{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Begin discards any stale session for the user and starts a fresh one at
// the university step
func (t *Tracker) Begin(user shared.User) *Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := &Session{
		UserID:    user.UserID,
		Username:  user.Username,
		Step:      StepUniversity,
		ExpiresAt: t.now().Add(t.ttl),
	}
	t.sessions[user.UserID] = s
	return s
}

// Get returns the user's live session. An expired session is purged and
// reported as absent; the flow must restart from the beginning.
func (t *Tracker) Get(userID string) (*Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.sessions[userID]
	if !ok {
		return nil, false
	}
	if t.now().After(s.ExpiresAt) {
		delete(t.sessions, userID)
		return nil, false
	}
	return s, true
}

// Touch refreshes the session's expiry after an accepted step
func (t *Tracker) Touch(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.sessions[userID]; ok {
		s.ExpiresAt = t.now().Add(t.ttl)
	}
}

// Remove discards a session, used on completion or hard failure
func (t *Tracker) Remove(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.sessions, userID)
}

// PurgeExpired drops every expired session and returns the affected user
// IDs so callers can tell those users to start over
func (t *Tracker) PurgeExpired() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var purged []string
	now := t.now()
	for userID, s := range t.sessions {
		if now.After(s.ExpiresAt) {
			delete(t.sessions, userID)
			purged = append(purged, userID)
		}
	}
	return purged
}

// Export copies the session map for snapshotting
func (t *Tracker) Export() map[string]Session {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[string]Session, len(t.sessions))
	for userID, s := range t.sessions {
		out[userID] = *s
	}
	return out
}

// Restore replaces the session map from a snapshot
func (t *Tracker) Restore(sessions map[string]Session) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sessions = make(map[string]*Session, len(sessions))
	for userID, s := range sessions {
		cp := s
		t.sessions[userID] = &cp
	}
}
