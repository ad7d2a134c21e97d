// Package store owns the process-wide domain snapshot. All mutations funnel
// through a single mutex, preserving the at-most-one-concurrent-mutation
// discipline of the system this service replaced.
package store

import (
	"context"
	"fmt"
	"sync"

	"safebridge/database/repository"
	"safebridge/models"
	"safebridge/utils"

	"go.uber.org/zap"
)

// Commit is a mutation applied to a working copy of the snapshot. It
// returns the successor snapshot, or an error to abandon the mutation.
type Commit func(snap models.Snapshot) (models.Snapshot, error)

// Store holds the current snapshot and persists every committed successor
// before it becomes visible. A failed commit leaves the prior snapshot
// untouched.
type Store struct {
	mu      sync.Mutex
	repo    repository.SnapshotRepository
	current models.Snapshot
}

// Open loads the persisted snapshot, seeding and persisting the default
// state when no blob exists yet.
func Open(ctx context.Context, repo repository.SnapshotRepository) (*Store, error) {
	logger := utils.GetLogger()

	snap, found, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if !found {
		snap = Seed()
		if err := repo.Save(ctx, snap); err != nil {
			return nil, fmt.Errorf("failed to persist seed snapshot: %w", err)
		}
		logger.Info("No snapshot found, seeded default state",
			zap.Int("users", len(snap.Users)),
			zap.Int("resources", len(snap.Resources)))
	} else {
		logger.Info("Loaded snapshot",
			zap.Int("version", snap.Version),
			zap.Int("cases", len(snap.HelpRequests)))
	}

	return &Store{repo: repo, current: snap}, nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Apply runs fn against a working copy of the current snapshot, persists
// the result, and installs it as the new current state. The returned
// snapshot is a private copy the caller may keep.
func (s *Store) Apply(ctx context.Context, fn Commit) (models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.current.Clone())
	if err != nil {
		return models.Snapshot{}, err
	}
	next.Version = models.SnapshotVersion

	if err := s.repo.Save(ctx, next); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to persist snapshot: %w", err)
	}
	s.current = next
	return next.Clone(), nil
}

// Wipe discards the persisted blob and resets the in-memory state to empty.
// An empty store is a valid initial state; the next Open call re-seeds.
func (s *Store) Wipe(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Wipe(ctx); err != nil {
		return fmt.Errorf("failed to wipe snapshot: %w", err)
	}
	s.current = models.EmptySnapshot()
	utils.GetLogger().Warn("All stored data wiped")
	return nil
}
