package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rapidbudapest/club-app/internal/gateway"
	"rapidbudapest/club-app/internal/gateway/mock"
	"rapidbudapest/club-app/internal/persist"
	"rapidbudapest/club-app/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	latency := mock.Latency{}
	kv := persist.NewMemoryKV()

	stores := Stores{
		Auth:          store.NewAuthStore(ctx, mock.NewUserGateway(latency, gateway.DirectoryStatic), kv),
		Club:          store.NewClubInfoStore(ctx, mock.NewClubGateway(latency), kv),
		Events:        store.NewEventsStore(ctx, mock.NewEventGateway(latency), kv),
		Training:      store.NewTrainingStore(ctx, mock.NewTrainingGateway(latency), kv),
		Videos:        store.NewVideosStore(ctx, mock.NewVideoGateway(latency), kv),
		Progress:      store.NewProgressStore(ctx, mock.NewProgressGateway(latency), kv),
		Notifications: store.NewNotificationsStore(ctx, mock.NewNotificationGateway(latency), kv),
	}

	router := gin.New()
	SetupRoutes(router, testSecret, time.Hour, stores, nil)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
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
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "password",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLoginReturnsTokenAndUser(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "dancer@rapid.hu",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "3", resp.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "dancer@rapid.hu",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeReturnsSessionUser(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "admin@rapid.hu")

	rec := doJSON(t, router, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin@rapid.hu")
}

func TestDancerCannotCreateEvents(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "dancer@rapid.hu")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/events", token, gin.H{
		"title":     "Rogue Event",
		"startDate": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"endDate":   time.Now().Add(26 * time.Hour).Format(time.RFC3339),
		"type":      "other",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCoachCanCreateEvents(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "coach@rapid.hu")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/events", token, gin.H{
		"title":     "Technique Night",
		"startDate": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"endDate":   time.Now().Add(26 * time.Hour).Format(time.RFC3339),
		"type":      "workshop",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Technique Night")
}

func TestUserDirectoryIsAdminOnly(t *testing.T) {
	router := newTestRouter(t)

	coach := login(t, router, "coach@rapid.hu")
	rec := doJSON(t, router, http.MethodGet, "/api/v1/users", coach, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	admin := login(t, router, "admin@rapid.hu")
	rec = doJSON(t, router, http.MethodGet, "/api/v1/users", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestEventsRefreshAndUpcomingFilter(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "dancer@rapid.hu")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/events/refresh", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/events?upcoming=2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var events []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &events))
	require.Len(t, events, 2)
	assert.Equal(t, "3", events[0]["id"])
	assert.Equal(t, "2", events[1]["id"])
}

func TestProgressIsScopedToCaller(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "admin@rapid.hu") // seed journal belongs to user "1"

	rec := doJSON(t, router, http.MethodPost, "/api/v1/progress/refresh", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/v1/progress?recent=2", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "4", entries[0]["id"])
}

func TestMediaEndpointsDisabledWithoutStorage(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "coach@rapid.hu")

	rec := doJSON(t, router, http.MethodPost, "/api/v1/videos/upload-url", token, gin.H{
		"contentType": "video/mp4",
	})
	require.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	router := newTestRouter(t)
	gin.SetMode(gin.TestMode)

	// Issue a token that expired an hour ago.
	ctx := context.Background()
	auth := store.NewAuthStore(ctx, mock.NewUserGateway(mock.Latency{}, gateway.DirectoryStatic), nil)
	require.NoError(t, auth.Login(ctx, "admin@rapid.hu", "password"))
	token, err := issueToken(testSecret, -time.Hour, auth.CurrentUser())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}
