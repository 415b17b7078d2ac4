/* store.go
 * Contains the Store struct and NewStore function. The store persists one
 * snapshot document holding all pool and registration state; see models.go
 * for the record schema
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Snapshots *mongo.Collection
	}
}

// Function for initialising Store. Connects to mongo and binds the snapshot collection
// Preconditions: Receives strings containing the following: dbName and mongoURI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.Snapshots = db.Collection("snapshots")
	return s, nil
}
