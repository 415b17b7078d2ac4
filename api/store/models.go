/* models.go
 * This file contains the snapshot document schema and the one time legacy
 * migration applied at load
 * Authors: Zachary Bower
 */

package store

import (
	"time"

	"teammatch-bot/api/registration"
	"teammatch-bot/api/shared"
)

// CurrentSnapshotVersion is the canonical record schema version
const CurrentSnapshotVersion = 1

// snapshotID keys the single live snapshot document
const snapshotID = "current"

// Snapshot is the flat persisted form of the whole matching state: per track
// member and leader lists, in-progress sessions, the registered and matched
// user sets and the leader identity locks
type Snapshot struct {
	ID         string                            `bson:"_id"`
	Version    int                               `bson:"version"`
	SavedAt    time.Time                         `bson:"saved_at"`
	Members    map[string][]shared.PendingMember `bson:"members"`
	Leaders    map[string][]shared.PendingLeader `bson:"leaders"`
	Sessions   map[string]registration.Session   `bson:"sessions"`
	Registered []string                          `bson:"registered_users"`
	Matched    []string                          `bson:"matched_users"`
	Identities map[string]shared.LeaderIdentity  `bson:"leader_identities"`
}

// Migrate upgrades a loaded snapshot to the canonical schema. Version 0
// documents, written before the schema was versioned, stored member ratings
// negated (the raw heap priority key) and sometimes lacked registration
// times. Migration happens once at load; every save writes version 1.
func (snap Snapshot) Migrate() Snapshot {
	if snap.Version >= CurrentSnapshotVersion {
		return snap
	}
	for track, list := range snap.Members {
		for i, m := range list {
			if m.Rating < 0 {
				m.Rating = -m.Rating
			}
			if m.RegisteredAt.IsZero() {
				m.RegisteredAt = snap.SavedAt
			}
			list[i] = m
		}
		snap.Members[track] = list
	}
	snap.Version = CurrentSnapshotVersion
	return snap
}
