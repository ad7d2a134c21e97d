package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	fileRepo "safebridge/database/repository/file"
	"safebridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	repo := fileRepo.NewSnapshotRepo(filepath.Join(t.TempDir(), "state.json"))
	st, err := Open(context.Background(), repo)
	require.NoError(t, err)
	return st
}

func TestOpen_SeedsWhenEmpty(t *testing.T) {
	st := newTestStore(t)
	snap := st.Snapshot()

	assert.Equal(t, models.SnapshotVersion, snap.Version)
	assert.Len(t, snap.Users, 3)
	assert.Len(t, snap.Resources, 4)
	assert.Len(t, snap.Legal, 3)
	assert.Empty(t, snap.HelpRequests)
}

func TestOpen_ReloadsPersistedState(t *testing.T) {
	dir := t.TempDir()
	repo := fileRepo.NewSnapshotRepo(filepath.Join(dir, "state.json"))

	st, err := Open(context.Background(), repo)
	require.NoError(t, err)
	_, err = st.Apply(context.Background(), func(snap models.Snapshot) (models.Snapshot, error) {
		snap.Users = append(snap.Users, models.User{ID: "u-x", Name: "X", Role: models.RoleCounsellor})
		return snap, nil
	})
	require.NoError(t, err)

	st2, err := Open(context.Background(), repo)
	require.NoError(t, err)
	assert.Len(t, st2.Snapshot().Users, 4)
}

func TestSnapshot_IsIsolatedCopy(t *testing.T) {
	st := newTestStore(t)

	snap := st.Snapshot()
	snap.Users[0].Name = "tampered"
	snap.Resources = nil

	fresh := st.Snapshot()
	assert.Equal(t, "Admin", fresh.Users[0].Name)
	assert.Len(t, fresh.Resources, 4)
}

func TestApply_FailureLeavesStateUntouched(t *testing.T) {
	st := newTestStore(t)
	before := st.Snapshot()

	sentinel := errors.New("rejected")
	_, err := st.Apply(context.Background(), func(snap models.Snapshot) (models.Snapshot, error) {
		snap.Users = nil
		return models.Snapshot{}, sentinel
	})
	require.ErrorIs(t, err, sentinel)

	assert.Equal(t, before, st.Snapshot())
}

func TestApply_ReturnedSnapshotIsPrivate(t *testing.T) {
	st := newTestStore(t)

	out, err := st.Apply(context.Background(), func(snap models.Snapshot) (models.Snapshot, error) {
		return snap, nil
	})
	require.NoError(t, err)

	out.Users[0].Name = "tampered"
	assert.Equal(t, "Admin", st.Snapshot().Users[0].Name)
}

func TestWipe_ResetsToEmptyValidState(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.Wipe(context.Background()))

	snap := st.Snapshot()
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.HelpRequests)
	assert.Equal(t, models.SnapshotVersion, snap.Version)

	// The store stays usable after a wipe.
	_, err := st.Apply(context.Background(), func(snap models.Snapshot) (models.Snapshot, error) {
		snap.Users = append(snap.Users, models.User{ID: "u-1", Name: "A", Role: models.RoleAdmin})
		return snap, nil
	})
	require.NoError(t, err)
	assert.Len(t, st.Snapshot().Users, 1)
}
