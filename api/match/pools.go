/* pools.go
 * Contains the matching pools: one priority queue of pending members and one
 * FIFO list of pending leaders per track, plus the registered/matched user
 * sets and the leader identity locks. All of it hangs off State so there is
 * no package level mutable data
 * Authors: Zachary Bower
 */

package match

import (
	"container/heap"
	"sort"
	"sync"

	"teammatch-bot/api/shared"
)

// MemberQueue is a priority queue of pending members ordered by rating
// descending, ties broken by earliest registration time. It implements
// heap.Interface; use the heap package functions to mutate it.
type MemberQueue []shared.PendingMember

func (q MemberQueue) Len() int { return len(q) }

func (q MemberQueue) Less(i, j int) bool {
	if q[i].Rating != q[j].Rating {
		return q[i].Rating > q[j].Rating
	}
	return q[i].RegisteredAt.Before(q[j].RegisteredAt)
}

func (q MemberQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *MemberQueue) Push(x any) { *q = append(*q, x.(shared.PendingMember)) }

func (q *MemberQueue) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	*q = old[:n-1]
	return entry
}

// State owns every matching pool, set and lock for the process lifetime.
// It is constructed at startup from a snapshot and torn down with a final
// snapshot on shutdown. A single mutex serializes sweeps and completions;
// the track count is small enough that per-track locking buys nothing.
type State struct {
	mu         sync.Mutex
	members    map[string]*MemberQueue
	leaders    map[string][]shared.PendingLeader
	registered map[string]bool
	matched    map[string]bool
	identities map[string]shared.LeaderIdentity
}

// NewState creates an empty State
func NewState() *State {
	return &State{
		members:    make(map[string]*MemberQueue),
		leaders:    make(map[string][]shared.PendingLeader),
		registered: make(map[string]bool),
		matched:    make(map[string]bool),
		identities: make(map[string]shared.LeaderIdentity),
	}
}

// AddMember pushes a finished member registration into their track's queue
// and marks the user as actively registered
func (st *State) AddMember(m shared.PendingMember) {
	st.mu.Lock()
	defer st.mu.Unlock()
	q, ok := st.members[m.Track]
	if !ok {
		q = &MemberQueue{}
		st.members[m.Track] = q
	}
	heap.Push(q, m)
	st.registered[m.UserID] = true
}

// AddLeader appends a finished leader registration to their track's FIFO
// list and sets (or confirms) the identity lock
func (st *State) AddLeader(l shared.PendingLeader) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.leaders[l.Track] = append(st.leaders[l.Track], l)
	st.identities[l.UserID] = shared.LeaderIdentity{University: l.University, Department: l.Department}
}

// IsRegistered reports whether the user is currently waiting as a member
func (st *State) IsRegistered(userID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.registered[userID]
}

// HasMatched reports whether the user was ever matched as a member. Audit
// marker only, it never gates re-registration.
func (st *State) HasMatched(userID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.matched[userID]
}

// LeaderIdentity returns the locked university+department for a user, if set
func (st *State) LeaderIdentity(userID string) (shared.LeaderIdentity, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	id, ok := st.identities[userID]
	return id, ok
}

// WithdrawMember removes a member from the middle of their track's queue and
// from the registered set. Returns false if the user was not queued there.
func (st *State) WithdrawMember(track string, userID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	q, ok := st.members[track]
	if !ok {
		return false
	}
	for i := range *q {
		if (*q)[i].UserID == userID {
			heap.Remove(q, i)
			delete(st.registered, userID)
			return true
		}
	}
	return false
}

// RemoveLeader removes a leader from their track's FIFO list by identity.
// Returns false if the user was not listed there.
func (st *State) RemoveLeader(track string, userID string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.removeLeaderLocked(track, userID)
}

func (st *State) removeLeaderLocked(track string, userID string) bool {
	list := st.leaders[track]
	for i := range list {
		if list[i].UserID == userID {
			st.leaders[track] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Counts returns the total pending member, pending leader and ever-matched
// counts, used by the health endpoint
func (st *State) Counts() (members int, leaders int, matched int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, q := range st.members {
		members += q.Len()
	}
	for _, list := range st.leaders {
		leaders += len(list)
	}
	return members, leaders, len(st.matched)
}

// PendingMembers returns the track's members in priority order without
// disturbing the queue
func (st *State) PendingMembers(track string) []shared.PendingMember {
	st.mu.Lock()
	defer st.mu.Unlock()
	q, ok := st.members[track]
	if !ok {
		return nil
	}
	out := make([]shared.PendingMember, len(*q))
	copy(out, *q)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].RegisteredAt.Before(out[j].RegisteredAt)
	})
	return out
}

// PendingLeaders returns the track's leaders oldest first
func (st *State) PendingLeaders(track string) []shared.PendingLeader {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]shared.PendingLeader, len(st.leaders[track]))
	copy(out, st.leaders[track])
	return out
}

// Export copies the full pool state for snapshotting
func (st *State) Export() (members map[string][]shared.PendingMember, leaders map[string][]shared.PendingLeader, registered []string, matched []string, identities map[string]shared.LeaderIdentity) {
	st.mu.Lock()
	defer st.mu.Unlock()

	members = make(map[string][]shared.PendingMember, len(st.members))
	for track, q := range st.members {
		if q.Len() == 0 {
			continue
		}
		list := make([]shared.PendingMember, len(*q))
		copy(list, *q)
		members[track] = list
	}
	leaders = make(map[string][]shared.PendingLeader, len(st.leaders))
	for track, list := range st.leaders {
		if len(list) == 0 {
			continue
		}
		cp := make([]shared.PendingLeader, len(list))
		copy(cp, list)
		leaders[track] = cp
	}
	for id := range st.registered {
		registered = append(registered, id)
	}
	for id := range st.matched {
		matched = append(matched, id)
	}
	sort.Strings(registered)
	sort.Strings(matched)
	identities = make(map[string]shared.LeaderIdentity, len(st.identities))
	for id, lock := range st.identities {
		identities[id] = lock
	}
	return members, leaders, registered, matched, identities
}

// Restore replaces the full pool state from a snapshot
func (st *State) Restore(members map[string][]shared.PendingMember, leaders map[string][]shared.PendingLeader, registered []string, matched []string, identities map[string]shared.LeaderIdentity) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.members = make(map[string]*MemberQueue, len(members))
	for track, list := range members {
		q := make(MemberQueue, len(list))
		copy(q, list)
		heap.Init(&q)
		st.members[track] = &q
	}
	st.leaders = make(map[string][]shared.PendingLeader, len(leaders))
	for track, list := range leaders {
		cp := make([]shared.PendingLeader, len(list))
		copy(cp, list)
		st.leaders[track] = cp
	}
	st.registered = make(map[string]bool, len(registered))
	for _, id := range registered {
		st.registered[id] = true
	}
	st.matched = make(map[string]bool, len(matched))
	for _, id := range matched {
		st.matched[id] = true
	}
	st.identities = make(map[string]shared.LeaderIdentity, len(identities))
	for id, lock := range identities {
		st.identities[id] = lock
	}
}
