package repository

import (
	"context"

	"safebridge/models"
)

// SnapshotRepository persists the full domain snapshot as a single blob.
// Load returns (zero, false, nil) when no blob exists yet; an absent blob
// is a valid initial state, not an error.
type SnapshotRepository interface {
	Load(ctx context.Context) (models.Snapshot, bool, error)
	Save(ctx context.Context, snap models.Snapshot) error
	// Wipe discards the blob entirely. Used by the admin data-wipe and the
	// quick-exit flow; wiping an absent blob is a no-op.
	Wipe(ctx context.Context) error
	Ping(ctx context.Context) error
}
