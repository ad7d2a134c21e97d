// Package mongo persists the domain snapshot as a single upserted document,
// for deployments that want the blob in a shared database instead of local
// disk. The document layout matches the file backend field for field.
package mongo

import (
	"context"
	"fmt"
	"time"

	"safebridge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionName = "snapshots"
	documentKey    = "current"
	opTimeout      = 10 * time.Second
)

type snapshotDoc struct {
	Key      string          `bson:"_id"`
	Snapshot models.Snapshot `bson:"snapshot"`
	SavedAt  time.Time       `bson:"savedAt"`
}

// SnapshotRepo stores the snapshot in a one-document collection.
type SnapshotRepo struct {
	coll *mongo.Collection
}

// NewSnapshotRepo creates a mongo-backed snapshot repository.
func NewSnapshotRepo(client *mongo.Client, dbName string) *SnapshotRepo {
	return &SnapshotRepo{coll: client.Database(dbName).Collection(collectionName)}
}

func (r *SnapshotRepo) Load(ctx context.Context) (models.Snapshot, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var doc snapshotDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": documentKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("failed to load snapshot document: %w", err)
	}
	if doc.Snapshot.Version == 0 {
		doc.Snapshot.Version = models.SnapshotVersion
	}
	return doc.Snapshot, true, nil
}

func (r *SnapshotRepo) Save(ctx context.Context, snap models.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	doc := snapshotDoc{Key: documentKey, Snapshot: snap, SavedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": documentKey}, doc, opts); err != nil {
		return fmt.Errorf("failed to save snapshot document: %w", err)
	}
	return nil
}

func (r *SnapshotRepo) Wipe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": documentKey}); err != nil {
		return fmt.Errorf("failed to delete snapshot document: %w", err)
	}
	return nil
}

func (r *SnapshotRepo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return r.coll.Database().Client().Ping(ctx, nil)
}
