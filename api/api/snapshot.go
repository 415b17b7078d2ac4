/* snapshot.go
 * Contains the persistence glue between the in-memory state and the store.
 * Every mutation that survives a restart funnels through requestSnapshot;
 * the final save on shutdown goes through SaveSnapshot so the error reaches
 * the caller
 * Authors: Zachary Bower
 */

package api

import (
	"log"

	"teammatch-bot/api/store"
)

func (a *API) buildSnapshot() store.Snapshot {
	members, leaders, registered, matched, identities := a.State.Export()
	return store.Snapshot{
		Members:    members,
		Leaders:    leaders,
		Sessions:   a.Sessions.Export(),
		Registered: registered,
		Matched:    matched,
		Identities: identities,
	}
}

// SaveSnapshot persists the current pool and session state
func (a *API) SaveSnapshot() error {
	return a.Store.SaveSnapshot(a.buildSnapshot())
}

// requestSnapshot persists best effort. A failed save loses at most the
// delta since the last successful one, so it is logged rather than bubbled
// up through every completion path.
func (a *API) requestSnapshot() {
	if err := a.SaveSnapshot(); err != nil {
		log.Printf("snapshot save failed: %v", err)
	}
}

// restoreSnapshot loads the persisted state, if any, into the pools and the
// session tracker. Legacy documents are migrated by the store at load.
func (a *API) restoreSnapshot() error {
	snap, present, err := a.Store.LoadSnapshot()
	if err != nil {
		return err
	}
	if !present {
		return nil
	}
	a.State.Restore(snap.Members, snap.Leaders, snap.Registered, snap.Matched, snap.Identities)
	a.Sessions.Restore(snap.Sessions)
	log.Printf("restored snapshot from %s: %d registered users", snap.SavedAt.Format("2006-01-02 15:04:05"), len(snap.Registered))
	return nil
}
