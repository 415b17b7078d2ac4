/* snapshots.go
 * Contains the methods for interacting with the snapshots collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"teammatch-bot/api/shared"
)

// SaveSnapshot upserts the single live snapshot document
// Preconditions: Receives a Snapshot; ID, Version and SavedAt are set here
// Postconditions: The stored snapshot reflects the given state, or an error wrapping shared.ErrPersistence is returned
func (s *Store) SaveSnapshot(snap Snapshot) error {
	snap.ID = snapshotID
	snap.Version = CurrentSnapshotVersion
	snap.SavedAt = time.Now().UTC()

	opts := options.Replace().SetUpsert(true)
	_, err := s.Collections.Snapshots.ReplaceOne(context.TODO(), bson.M{"_id": snapshotID}, snap, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrPersistence, err)
	}
	return nil
}

// LoadSnapshot fetches the live snapshot document and migrates legacy
// versions to the canonical schema
// Preconditions: None
// Postconditions: Returns the snapshot and true, or false when none has been
// written yet, or an error wrapping shared.ErrPersistence
func (s *Store) LoadSnapshot() (Snapshot, bool, error) {
	var snap Snapshot
	err := s.Collections.Snapshots.FindOne(context.TODO(), bson.M{"_id": snapshotID}).Decode(&snap)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Snapshot{}, false, nil
		}
		return Snapshot{}, false, fmt.Errorf("%w: %v", shared.ErrPersistence, err)
	}
	return snap.Migrate(), true, nil
}
