package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"safebridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_AbsentBlobIsNotAnError(t *testing.T) {
	repo := NewSnapshotRepo(filepath.Join(t.TempDir(), "state.json"))

	_, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveAndLoad_Roundtrip(t *testing.T) {
	repo := NewSnapshotRepo(filepath.Join(t.TempDir(), "state.json"))

	snap := models.EmptySnapshot()
	snap.Users = []models.User{{ID: "u-1", Name: "Admin", Role: models.RoleAdmin}}
	snap.HelpRequests = []models.HelpRequest{{
		ID: "c-1", Status: models.StatusNew, ContactPref: models.ContactHidden,
		Updates: []models.CaseUpdate{},
	}}
	require.NoError(t, repo.Save(context.Background(), snap))

	loaded, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, snap.Users, loaded.Users)
	assert.Equal(t, "c-1", loaded.HelpRequests[0].ID)
	assert.Equal(t, models.SnapshotVersion, loaded.Version)
}

func TestLoad_BackfillsMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	// A blob written before the version field existed.
	legacy := map[string]any{
		"users":        []any{},
		"resources":    []any{},
		"legal":        []any{},
		"helpRequests": []any{},
		"sessions":     []any{},
	}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	repo := NewSnapshotRepo(path)
	loaded, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.SnapshotVersion, loaded.Version)
}

func TestWipe_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	repo := NewSnapshotRepo(path)

	require.NoError(t, repo.Save(context.Background(), models.EmptySnapshot()))
	require.NoError(t, repo.Wipe(context.Background()))
	require.NoError(t, repo.Wipe(context.Background()))

	_, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}
