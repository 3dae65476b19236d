package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/infrastructure/config"
	"github.com/lifeboard/core/internal/infrastructure/logger"
	"github.com/lifeboard/core/internal/infrastructure/server"
)

const (
	testSecret = "test-secret"
	testIssuer = "lifeboard-auth"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	cfg := &config.Config{
		App:        config.AppConfig{Name: "LifeBoard", Version: "test", Environment: "test"},
		Server:     config.ServerConfig{Port: 8080},
		Repository: config.RepositoryConfig{Driver: "memory"},
		JWT:        config.JWTConfig{Secret: testSecret, Issuer: testIssuer},
		Security: config.SecurityConfig{
			CORSAllowedOrigins: "*",
			RateLimitRequests:  1000,
			RateLimitWindow:    time.Minute,
		},
		Metrics: config.MetricsConfig{Enabled: false},
	}

	srv, err := server.New(cfg, nil, logger.NewNop())
	require.NoError(t, err)
	return srv
}

func signToken(t *testing.T, sub, email, issuer, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"iss":   issuer,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doRequest(srv *server.Server, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpointsArePublic(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIRequiresToken(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/api/v1/projects", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIRejectsBadSignature(t *testing.T) {
	srv := newTestServer(t)

	token := signToken(t, "owner-1", "o@example.com", testIssuer, "wrong-secret")
	rec := doRequest(srv, http.MethodGet, "/api/v1/projects", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIRejectsWrongIssuer(t *testing.T) {
	srv := newTestServer(t)

	token := signToken(t, "owner-1", "o@example.com", "someone-else", testSecret)
	rec := doRequest(srv, http.MethodGet, "/api/v1/projects", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOwnerScopingComesFromToken(t *testing.T) {
	srv := newTestServer(t)

	alice := signToken(t, "alice", "alice@example.com", testIssuer, testSecret)
	bob := signToken(t, "bob", "bob@example.com", testIssuer, testSecret)

	rec := doRequest(srv, http.MethodPost, "/api/v1/tasks", alice,
		`{"title":"Alice's task","priority":"high","category":"personal"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/api/v1/tasks", bob, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []entities.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	assert.Empty(t, tasks, "bob never sees alice's tasks")

	rec = doRequest(srv, http.MethodGet, "/api/v1/tasks", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 1)
}

func TestFullRequestCycle(t *testing.T) {
	srv := newTestServer(t)
	token := signToken(t, "owner-1", "owner@example.com", testIssuer, testSecret)

	rec := doRequest(srv, http.MethodPost, "/api/v1/projects", token,
		`{"title":"Garden","status":"in-progress","priority":"low"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var project entities.Project
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project))

	rec = doRequest(srv, http.MethodPut, "/api/v1/projects/"+project.ID.String(), token,
		`{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(srv, http.MethodDelete, "/api/v1/projects/"+project.ID.String(), token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Project deleted successfully")

	rec = doRequest(srv, http.MethodGet, "/api/v1/users/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var user entities.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "owner-1", user.ID)
	assert.Equal(t, "owner@example.com", user.Email)
}

func TestDashboardRoute(t *testing.T) {
	srv := newTestServer(t)
	token := signToken(t, "owner-1", "owner@example.com", testIssuer, testSecret)

	rec := doRequest(srv, http.MethodGet, "/api/v1/dashboard", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dashboard map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	for _, key := range []string{"upcomingTasks", "overdueTasks", "activeProjects", "recentJournals", "notifications"} {
		assert.Contains(t, dashboard, key)
	}
}
