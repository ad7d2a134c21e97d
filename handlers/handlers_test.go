package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	fileRepo "safebridge/database/repository/file"
	"safebridge/handlers"
	"safebridge/models"
	"safebridge/routes"
	"safebridge/services/directory"
	"safebridge/services/lifecycle"
	"safebridge/services/session"
	"safebridge/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessions resolves fixed bearer tokens to identities, standing in for
// the redis-backed session service.
type fakeSessions struct {
	tokens map[string]models.User
}

func (f *fakeSessions) Login(ctx context.Context, userID string) (*session.AuthResponse, error) {
	return nil, errors.New("not supported in tests")
}

func (f *fakeSessions) Logout(ctx context.Context, userID string) error { return nil }

func (f *fakeSessions) Validate(ctx context.Context, token string) (string, string, error) {
	u, ok := f.tokens[token]
	if !ok {
		return "", "", errors.New("invalid session")
	}
	return u.ID, u.Role, nil
}

func (f *fakeSessions) QuickExit(ctx context.Context) (string, error) {
	return "https://www.google.com/", nil
}

func newTestRouter(t *testing.T) (*gin.Engine, lifecycle.CaseService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := fileRepo.NewSnapshotRepo(filepath.Join(t.TempDir(), "state.json"))
	st, err := store.Open(context.Background(), repo)
	require.NoError(t, err)

	directoryService := &directory.DefaultDirectoryService{Store: st}
	caseService := &lifecycle.DefaultCaseService{Store: st}
	sessions := &fakeSessions{tokens: map[string]models.User{
		"tok-admin":      {ID: "u-admin", Role: models.RoleAdmin},
		"tok-counsellor": {ID: "u-c1", Role: models.RoleCounsellor},
		"tok-legal":      {ID: "u-l1", Role: models.RoleLegalAdvisor},
		"tok-survivor":   {ID: "u-s1", Role: models.RoleSurvivor},
	}}

	hb := &handlers.HandlerBundle{
		Sessions:  sessions,
		Session:   handlers.NewSessionHandler(sessions),
		Directory: handlers.NewDirectoryHandler(directoryService),
		Cases:     handlers.NewCaseHandler(caseService),
		Admin:     handlers.NewAdminHandler(directoryService, caseService, st),
	}

	router := gin.New()
	routes.RegisterRoutes(router, hb)
	return router, caseService
}

func do(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/resources", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, router, http.MethodGet, "/api/resources", "tok-bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestResourceMutationPolicy(t *testing.T) {
	router, _ := newTestRouter(t)
	draft := map[string]string{"type": models.ResourceShelter, "title": "City Shelter"}

	t.Run("admin may add", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/resources", "tok-admin", draft)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("survivor may read but not add", func(t *testing.T) {
		w := do(t, router, http.MethodGet, "/api/resources", "tok-survivor", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = do(t, router, http.MethodPost, "/api/resources", "tok-survivor", draft)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("legal advisor may manage legal entries but not resources", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/resources", "tok-legal", draft)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = do(t, router, http.MethodPost, "/api/legal", "tok-legal",
			map[string]string{"title": "Section 498A IPC"})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/resources", "tok-admin",
			map[string]string{"type": models.ResourceShelter, "title": " "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCaseFlowOverHTTP(t *testing.T) {
	router, caseService := newTestRouter(t)

	t.Run("survivor creates, admin cannot", func(t *testing.T) {
		w := do(t, router, http.MethodPost, "/api/cases", "tok-survivor",
			map[string]string{"details": "needs shelter", "region": "Jaipur"})
		require.Equal(t, http.StatusCreated, w.Code)

		var created models.HelpRequest
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, models.StatusNew, created.Status)

		w = do(t, router, http.MethodPost, "/api/cases", "tok-admin",
			map[string]string{"details": "x"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("counsellor sees only assigned cases", func(t *testing.T) {
		mine, err := caseService.Create(context.Background(), models.HelpRequestDraft{AssignedTo: "u-c1"})
		require.NoError(t, err)
		_, err = caseService.Create(context.Background(), models.HelpRequestDraft{AssignedTo: "u-c2"})
		require.NoError(t, err)

		w := do(t, router, http.MethodGet, "/api/cases", "tok-counsellor", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed []models.HelpRequest
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		require.Len(t, listed, 1)
		assert.Equal(t, mine.ID, listed[0].ID)
	})

	t.Run("counsellor cannot touch someone else's case", func(t *testing.T) {
		other, err := caseService.Create(context.Background(), models.HelpRequestDraft{AssignedTo: "u-c2"})
		require.NoError(t, err)

		w := do(t, router, http.MethodPut, "/api/cases/"+other.ID+"/status", "tok-counsellor",
			map[string]string{"status": models.StatusClosed})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("legal advisor acts on any case", func(t *testing.T) {
		target, err := caseService.Create(context.Background(), models.HelpRequestDraft{AssignedTo: "u-c2"})
		require.NoError(t, err)

		w := do(t, router, http.MethodPut, "/api/cases/"+target.ID+"/assign", "tok-legal",
			map[string]string{"counsellorId": "u-c1"})
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.HelpRequest
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		assert.Equal(t, models.StatusAssigned, updated.Status)
		assert.Equal(t, "u-c1", updated.AssignedTo)
	})

	t.Run("unknown case is 404", func(t *testing.T) {
		w := do(t, router, http.MethodPut, "/api/cases/nope/status", "tok-legal",
			map[string]string{"status": models.StatusClosed})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown status is 400", func(t *testing.T) {
		target, err := caseService.Create(context.Background(), models.HelpRequestDraft{})
		require.NoError(t, err)

		w := do(t, router, http.MethodPut, "/api/cases/"+target.ID+"/status", "tok-legal",
			map[string]string{"status": "Escalated"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("admin sees every case but cannot act", func(t *testing.T) {
		all, err := caseService.List(context.Background())
		require.NoError(t, err)
		require.NotEmpty(t, all)

		w := do(t, router, http.MethodGet, "/api/cases", "tok-admin", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed []models.HelpRequest
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
		assert.Len(t, listed, len(all))

		w = do(t, router, http.MethodGet, "/api/cases/"+all[0].ID, "tok-admin", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = do(t, router, http.MethodPut, "/api/cases/"+all[0].ID+"/assign", "tok-admin",
			map[string]string{"counsellorId": "u-c1"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestOverviewByRole(t *testing.T) {
	router, caseService := newTestRouter(t)
	ctx := context.Background()

	_, err := caseService.Create(ctx, models.HelpRequestDraft{AssignedTo: "u-c1"})
	require.NoError(t, err)
	_, err = caseService.Create(ctx, models.HelpRequestDraft{AssignedTo: "u-c2"})
	require.NoError(t, err)
	_, err = caseService.Create(ctx, models.HelpRequestDraft{})
	require.NoError(t, err)

	overview := func(t *testing.T, token string) map[string]any {
		t.Helper()
		w := do(t, router, http.MethodGet, "/api/overview", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	t.Run("counsellor sees own caseload", func(t *testing.T) {
		resp := overview(t, "tok-counsellor")
		assert.Equal(t, models.RoleCounsellor, resp["role"])
		assert.EqualValues(t, 1, resp["mine"])
		assert.EqualValues(t, 1, resp["new"])
		assert.EqualValues(t, 0, resp["closed"])
	})

	t.Run("legal advisor sees the open picture", func(t *testing.T) {
		resp := overview(t, "tok-legal")
		assert.EqualValues(t, 3, resp["open"])
		assert.EqualValues(t, 0, resp["closed"])
		assert.EqualValues(t, 1, resp["unassigned"])
	})

	t.Run("admin sees system counts", func(t *testing.T) {
		resp := overview(t, "tok-admin")
		assert.EqualValues(t, 3, resp["users"])
		assert.EqualValues(t, 4, resp["resources"])
		cases, ok := resp["cases"].(map[string]any)
		require.True(t, ok)
		assert.EqualValues(t, 3, cases["total"])
	})

	t.Run("survivor sees directory sizes only", func(t *testing.T) {
		resp := overview(t, "tok-survivor")
		assert.EqualValues(t, 4, resp["resources"])
		assert.EqualValues(t, 3, resp["legal"])
		assert.NotContains(t, resp, "cases")
	})

	t.Run("requires a session", func(t *testing.T) {
		w := do(t, router, http.MethodGet, "/api/overview", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestViewsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/views", "tok-counsellor", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Role  string   `json:"role"`
		Views []string `json:"views"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.RoleCounsellor, resp.Role)
	assert.Equal(t, []string{"Overview", "Assigned Cases", "Progress Notes", "Resources"}, resp.Views)
}

func TestQuickExitNeedsNoSession(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/session/quick-exit", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://www.google.com/", resp["redirect"])
}
