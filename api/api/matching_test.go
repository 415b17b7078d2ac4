/* matching_test.go
 * Contains unit tests for the matching entry points and the runner
 * Authors: Zachary Bower
 */

package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teammatch-bot/api/shared"
	"teammatch-bot/api/store"
)

// TestPerformMatching_PairsCompatibleUsers tests a full register-then-match
// cycle through the facade
func TestPerformMatching_PairsCompatibleUsers(t *testing.T) {
	ms := NewMockStore()
	mn := NewMockNotifier()
	a := NewTestAPI(ms, mn)
	registerLeader(t, a, shared.User{UserID: "l1", Username: "bob"}, "code crushers")
	registerMember(t, a, shared.User{UserID: "m1", Username: "alice"})

	matched, err := a.PerformMatching()

	require.NoError(t, err)
	assert.Equal(t, 1, matched)
	assert.Len(t, mn.Delivered["l1"], 1)
	assert.Len(t, mn.Delivered["m1"], 1)
	assert.Equal(t, "code crushers", mn.Delivered["m1"][0].Leader.TeamName)

	// Pools drained, identity lock released, member marked as matched
	assert.Empty(t, a.State.PendingLeaders("django"))
	assert.Empty(t, a.State.PendingMembers("django"))
	assert.False(t, a.State.IsRegistered("m1"))
	assert.True(t, a.State.HasMatched("m1"))
	_, locked := a.State.LeaderIdentity("l1")
	assert.False(t, locked)

	// The match was persisted
	require.NotNil(t, ms.Saved)
	assert.Empty(t, ms.Saved.Leaders["django"])
	assert.Contains(t, ms.Saved.Matched, "m1")
}

// TestPerformMatching_NoNotifier tests the unconfigured notifier guard
func TestPerformMatching_NoNotifier(t *testing.T) {
	a := NewTestAPI(NewMockStore(), nil)
	a.Notifier = nil

	_, err := a.PerformMatching()

	assert.Error(t, err)
}

// TestPerformMatching_NotificationFailureKeepsPools tests that an undeliverable
// pairing stays pending and succeeds on a later pass
func TestPerformMatching_NotificationFailureKeepsPools(t *testing.T) {
	mn := NewMockNotifier()
	mn.NotifyMatchError["l1"] = assert.AnError
	a := NewTestAPI(NewMockStore(), mn)
	registerLeader(t, a, shared.User{UserID: "l1", Username: "bob"}, "code crushers")
	registerMember(t, a, shared.User{UserID: "m1", Username: "alice"})

	matched, err := a.PerformMatching()
	require.NoError(t, err)
	assert.Equal(t, 0, matched)
	assert.Len(t, a.State.PendingLeaders("django"), 1)
	assert.Len(t, a.State.PendingMembers("django"), 1)
	assert.True(t, a.State.IsRegistered("m1"))

	// DMs work again on the next pass
	delete(mn.NotifyMatchError, "l1")
	matched, err = a.PerformMatching()
	require.NoError(t, err)
	assert.Equal(t, 1, matched)
}

// TestTriggerWait_RunsSweepThroughRunner tests the synchronous trigger path
func TestTriggerWait_RunsSweepThroughRunner(t *testing.T) {
	mn := NewMockNotifier()
	a := NewTestAPI(NewMockStore(), mn)
	a.StartRunner()
	defer a.StopRunner()
	registerLeader(t, a, shared.User{UserID: "l1", Username: "bob"}, "code crushers")
	registerMember(t, a, shared.User{UserID: "m1", Username: "alice"})

	// Completion already queued async triggers; this one waits for its own
	// pass, by which point the pair is matched on this or an earlier pass
	a.TriggerWait()

	assert.Len(t, mn.Delivered["m1"], 1)
	assert.True(t, a.State.HasMatched("m1"))
}

// TestReapSessions_NotifiesTimedOutUsers tests the expiry reaper pass
func TestReapSessions_NotifiesTimedOutUsers(t *testing.T) {
	mn := NewMockNotifier()
	a := NewTestAPI(NewMockStore(), mn)
	_, err := a.StartRegistration(shared.User{UserID: "slow", Username: "carol"})
	require.NoError(t, err)

	// Nothing to reap yet
	a.reapSessions()
	assert.Empty(t, mn.Timeouts)

	// Force the session past its deadline
	s, ok := a.Sessions.Get("slow")
	require.True(t, ok)
	s.ExpiresAt = time.Now().Add(-time.Second)

	a.reapSessions()

	assert.Equal(t, []string{"slow"}, mn.Timeouts)
	_, ok = a.SessionFor("slow")
	assert.False(t, ok)
}

// TestRestoreSnapshot_MigratesLegacyDocument tests that a version 0 snapshot
// comes back with usable ratings
func TestRestoreSnapshot_MigratesLegacyDocument(t *testing.T) {
	ms := NewMockStore()
	savedAt := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	ms.LoadSnap = &store.Snapshot{
		Version: 0,
		SavedAt: savedAt,
		Members: map[string][]shared.PendingMember{
			"django": {
				{UserID: "m1", Username: "alice", Track: "django", Rating: -28, University: "Cairo University", Department: shared.DepartmentCS},
			},
		},
		Registered: []string{"m1"},
	}

	a := NewTestAPI(ms, NewMockNotifier())
	require.NoError(t, a.restoreSnapshot())

	pending := a.State.PendingMembers("django")
	require.Len(t, pending, 1)
	assert.Equal(t, 28, pending[0].Rating)
	assert.Equal(t, savedAt, pending[0].RegisteredAt)
	assert.True(t, a.State.IsRegistered("m1"))
}
