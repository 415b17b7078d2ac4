/* engine.go
 * Contains the matching engine. A sweep walks every (category, track) pair,
 * drains compatible leader/member pairs and notifies both parties. The sweep
 * is idempotent over consistent pool state so overlapping triggers are safe
 * as long as they are serialized, which the State mutex guarantees
 * Authors: Zachary Bower
 */

package match

import (
	"container/heap"
	"log"

	"teammatch-bot/api/catalog"
	"teammatch-bot/api/shared"
)

// Notifier delivers a match announcement to one user. Both the leader and
// the member delivery must succeed for a pairing to be confirmed.
type Notifier interface {
	NotifyMatch(userID string, notice shared.MatchNotice) error
}

// RunSweep performs one full matching pass over all tracks and returns the
// number of confirmed matches. A failed pairing (no candidate, or a
// notification error) never aborts the rest of the sweep.
func (st *State) RunSweep(notify Notifier) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	total := 0
	for _, category := range catalog.Categories() {
		tracks, _ := catalog.TracksInCategory(category)
		for _, track := range tracks {
			total += st.sweepTrackLocked(track, notify)
		}
	}
	return total
}

// sweepTrackLocked matches one track's pools. Callers must hold st.mu.
func (st *State) sweepTrackLocked(track string, notify Notifier) int {
	queue, ok := st.members[track]
	if !ok || queue.Len() == 0 {
		return 0
	}

	// Work from a copy of the leader list so a leader that cannot be
	// served is only skipped for this sweep, not dropped from the pool
	trackLeaders := make([]shared.PendingLeader, len(st.leaders[track]))
	copy(trackLeaders, st.leaders[track])

	matched := 0
	for _, leader := range trackLeaders {
		if queue.Len() == 0 {
			break
		}

		// Pop members highest rating first until one is compatible and
		// still actively registered. Everything popped but rejected goes
		// back so the queue's membership is unchanged except for the one
		// matched.
		var setAside []shared.PendingMember
		var candidate *shared.PendingMember
		for queue.Len() > 0 {
			m := heap.Pop(queue).(shared.PendingMember)
			if st.registered[m.UserID] &&
				m.University == leader.University &&
				m.Department == leader.Department {
				candidate = &m
				break
			}
			setAside = append(setAside, m)
		}
		for _, m := range setAside {
			heap.Push(queue, m)
		}

		if candidate == nil {
			continue
		}

		notice := shared.MatchNotice{Leader: leader, Member: *candidate}
		if err := notify.NotifyMatch(leader.UserID, notice); err != nil {
			log.Printf("match notify leader %s failed, pairing aborted: %v", leader.UserID, err)
			heap.Push(queue, *candidate)
			continue
		}
		if err := notify.NotifyMatch(candidate.UserID, notice); err != nil {
			log.Printf("match notify member %s failed, pairing aborted: %v", candidate.UserID, err)
			heap.Push(queue, *candidate)
			continue
		}

		// Both deliveries succeeded, commit the pairing
		st.removeLeaderLocked(track, leader.UserID)
		delete(st.registered, candidate.UserID)
		st.matched[candidate.UserID] = true
		delete(st.identities, leader.UserID)
		matched++
		log.Printf("matched leader %s with member %s in track %s", leader.UserID, candidate.UserID, track)
	}
	return matched
}
