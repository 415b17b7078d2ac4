/* api.go
 * This file contains the public methods for interacting with this package. For consistent results, functions should
 * only be called from this file, not the sub packages for match and registration
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"
	"time"

	"teammatch-bot/api/match"
	"teammatch-bot/api/registration"
	"teammatch-bot/api/shared"
	"teammatch-bot/api/store"
)

// Notifier delivers direct messages to users. NotifyMatch announces a
// confirmed pairing to one party; NotifyTimeout tells a user their
// registration flow expired and they must start over.
type Notifier interface {
	NotifyMatch(userID string, notice shared.MatchNotice) error
	NotifyTimeout(userID string) error
}

// API provides methods for interacting with the team matching data layer
type API struct {
	Store    store.Interface
	Notifier Notifier
	State    *match.State
	Sessions *registration.Tracker

	work chan sweepRequest
	quit chan struct{}
}

// NewAPI creates a new API instance with the provided configuration and
// restores any previously persisted state
func NewAPI(dbName string, mongoURI string) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	a := &API{
		Store:    s,
		State:    match.NewState(),
		Sessions: registration.NewTracker(registration.DefaultTTL),
		work:     make(chan sweepRequest, 16),
		quit:     make(chan struct{}),
	}
	if err := a.restoreSnapshot(); err != nil {
		return nil, err
	}
	return a, nil
}

// StartRegistration begins (or restarts) the registration flow for a user.
// Users who are already waiting in a member queue must not re-register;
// leaders keep their identity lock but may start a new team once matched.
func (a *API) StartRegistration(user shared.User) (registration.Session, error) {
	if a.State.IsRegistered(user.UserID) {
		return registration.Session{}, fmt.Errorf("%w: you are already registered and waiting for a match", shared.ErrAlreadyRegistered)
	}
	s := a.Sessions.Begin(user)
	return *s, nil
}

// ChooseUniversity processes the university step for the user's session
func (a *API) ChooseUniversity(userID string, input string) (registration.Session, error) {
	return a.step(userID, func(s *registration.Session) error {
		return s.ChooseUniversity(input, a.identityLock(userID))
	})
}

// ChooseDepartment processes the department step for the user's session
func (a *API) ChooseDepartment(userID string, input string) (registration.Session, error) {
	return a.step(userID, func(s *registration.Session) error {
		return s.ChooseDepartment(input, a.identityLock(userID))
	})
}

// ChooseRole processes the role step for the user's session
func (a *API) ChooseRole(userID string, input string) (registration.Session, error) {
	return a.step(userID, func(s *registration.Session) error {
		return s.ChooseRole(input, a.identityLock(userID))
	})
}

// SetTeamName processes the team name step for a leader's session
func (a *API) SetTeamName(userID string, text string) (registration.Session, error) {
	return a.step(userID, func(s *registration.Session) error {
		return s.SetTeamName(text)
	})
}

// ChooseCategory processes the track category step for the user's session
func (a *API) ChooseCategory(userID string, input string) (registration.Session, error) {
	return a.step(userID, func(s *registration.Session) error {
		return s.ChooseCategory(input)
	})
}

// ChooseTrack processes the track step for the user's session
func (a *API) ChooseTrack(userID string, input string) (registration.Session, error) {
	return a.step(userID, func(s *registration.Session) error {
		return s.ChooseTrack(input)
	})
}

// ChooseTopics processes the studied topics step for a member's session and
// computes their rating
func (a *API) ChooseTopics(userID string, inputs []string) (registration.Session, error) {
	return a.step(userID, func(s *registration.Session) error {
		return s.ChooseTopics(inputs)
	})
}

// SetComment processes the final free text step. On success the finished
// registration moves from the session tracker into the matching pools, a
// sweep is triggered and the state is persisted.
func (a *API) SetComment(userID string, text string) (registration.Session, error) {
	done, err := a.step(userID, func(s *registration.Session) error {
		return s.SetComment(text)
	})
	if err != nil {
		return done, err
	}
	a.complete(done)
	return done, nil
}

// SessionFor returns the user's live session, if any. Used by the message
// router to direct free text at the team name and comment steps.
func (a *API) SessionFor(userID string) (registration.Session, bool) {
	s, ok := a.Sessions.Get(userID)
	if !ok {
		return registration.Session{}, false
	}
	return *s, true
}

// step runs one state machine transition for the user's session and
// refreshes its expiry when the input was accepted
func (a *API) step(userID string, fn func(*registration.Session) error) (registration.Session, error) {
	s, ok := a.Sessions.Get(userID)
	if !ok {
		return registration.Session{}, fmt.Errorf("%w: no registration in progress, use $start to begin", shared.ErrTimeout)
	}
	if err := fn(s); err != nil {
		return *s, err
	}
	a.Sessions.Touch(userID)
	return *s, nil
}

// identityLock fetches the user's leader identity lock, or nil when unset
func (a *API) identityLock(userID string) *shared.LeaderIdentity {
	lock, ok := a.State.LeaderIdentity(userID)
	if !ok {
		return nil
	}
	return &lock
}

// complete moves a finished session into the matching pools
func (a *API) complete(s registration.Session) {
	a.Sessions.Remove(s.UserID)
	switch s.Role {
	case shared.RoleLeader:
		a.State.AddLeader(shared.PendingLeader{
			UserID:      s.UserID,
			Username:    s.Username,
			TeamName:    s.TeamName,
			Track:       s.Track,
			TeamComment: s.Comment,
			Department:  s.Department,
			University:  s.University,
		})
	default:
		a.State.AddMember(shared.PendingMember{
			UserID:         s.UserID,
			Username:       s.Username,
			Track:          s.Track,
			Rating:         s.Rating,
			Comment:        s.Comment,
			Department:     s.Department,
			University:     s.University,
			SelectedTopics: s.SelectedTopics,
			RegisteredAt:   time.Now().UTC(),
		})
	}
	a.Trigger()
	a.requestSnapshot()
}
