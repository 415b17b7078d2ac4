/* matching.go
 * Contains the matching entry points and the background runner. All sweep
 * triggers funnel through one work queue consumed by a single goroutine, so
 * concurrent completions, operator requests and the periodic tick never run
 * overlapping sweeps
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"
	"log"
	"time"
)

// SweepInterval is how often the runner performs an unprompted matching pass
// and reaps expired registration sessions
const SweepInterval = 30 * time.Second

type sweepRequest struct {
	done chan int
}

// PerformMatching runs one sweep over every track's pools and persists the
// state when anything changed. Callers that need serialization should go
// through Trigger or TriggerWait instead of calling this directly.
func (a *API) PerformMatching() (int, error) {
	if a.Notifier == nil {
		return 0, fmt.Errorf("no notifier configured, cannot deliver match announcements")
	}
	matched := a.State.RunSweep(a.Notifier)
	if matched > 0 {
		a.requestSnapshot()
	}
	return matched, nil
}

// Trigger enqueues a sweep without waiting for it. Safe to call from
// completion handlers; if the queue is full a sweep is already pending and
// the request is dropped.
func (a *API) Trigger() {
	select {
	case a.work <- sweepRequest{}:
	default:
	}
}

// TriggerWait enqueues a sweep and blocks until it finishes, returning the
// number of confirmed matches
func (a *API) TriggerWait() int {
	req := sweepRequest{done: make(chan int, 1)}
	select {
	case a.work <- req:
		return <-req.done
	case <-a.quit:
		return 0
	}
}

// StartRunner launches the background goroutine that consumes sweep
// requests, runs the periodic pass and reaps expired sessions
func (a *API) StartRunner() {
	go a.runLoop()
}

// StopRunner stops the background goroutine
func (a *API) StopRunner() {
	close(a.quit)
}

func (a *API) runLoop() {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case req := <-a.work:
			matched, err := a.PerformMatching()
			if err != nil {
				log.Printf("matching pass failed: %v", err)
			}
			if req.done != nil {
				req.done <- matched
			}
		case <-ticker.C:
			a.reapSessions()
			if _, err := a.PerformMatching(); err != nil {
				log.Printf("periodic matching pass failed: %v", err)
			}
		case <-a.quit:
			return
		}
	}
}

// reapSessions purges expired registration sessions and tells the affected
// users to start over. Delivery failures are logged and dropped; the session
// is gone either way.
func (a *API) reapSessions() {
	purged := a.Sessions.PurgeExpired()
	if len(purged) == 0 {
		return
	}
	for _, userID := range purged {
		if a.Notifier == nil {
			continue
		}
		if err := a.Notifier.NotifyTimeout(userID); err != nil {
			log.Printf("timeout notice for %s failed: %v", userID, err)
		}
	}
	a.requestSnapshot()
}
