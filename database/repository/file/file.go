// Package file persists the domain snapshot as a single JSON file on disk,
// the direct successor of the original localStorage blob.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"safebridge/models"
)

// SnapshotRepo writes the snapshot atomically: marshal to a temp file in
// the same directory, then rename over the target.
type SnapshotRepo struct {
	path string
}

// NewSnapshotRepo creates a file-backed snapshot repository at path.
func NewSnapshotRepo(path string) *SnapshotRepo {
	return &SnapshotRepo{path: path}
}

func (r *SnapshotRepo) Load(ctx context.Context) (models.Snapshot, bool, error) {
	raw, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return models.Snapshot{}, false, nil
	}
	if err != nil {
		return models.Snapshot{}, false, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return models.Snapshot{}, false, fmt.Errorf("failed to decode snapshot file: %w", err)
	}
	// Blobs written before the version field was introduced decode as 0.
	if snap.Version == 0 {
		snap.Version = models.SnapshotVersion
	}
	return snap, true, nil
}

func (r *SnapshotRepo) Save(ctx context.Context, snap models.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".safebridge-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace snapshot file: %w", err)
	}
	return nil
}

func (r *SnapshotRepo) Wipe(ctx context.Context) error {
	err := os.Remove(r.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove snapshot file: %w", err)
	}
	return nil
}

func (r *SnapshotRepo) Ping(ctx context.Context) error {
	_, err := os.Stat(filepath.Dir(r.path))
	return err
}
