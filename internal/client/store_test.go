package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeboard/core/internal/client"
	"github.com/lifeboard/core/internal/domain/entities"
	"github.com/lifeboard/core/internal/domain/planner"
	"github.com/lifeboard/core/internal/infrastructure/config"
	"github.com/lifeboard/core/internal/infrastructure/logger"
	"github.com/lifeboard/core/internal/infrastructure/server"
	"github.com/lifeboard/core/internal/ports"
)

const (
	testSecret = "test-secret"
	testIssuer = "lifeboard-auth"
	testOwner  = "owner-1"
)

func timePtr(t time.Time) *time.Time { return &t }

// startBackend boots the real API on an in-memory repository and returns its
// base URL plus a token for testOwner.
func startBackend(t *testing.T) (string, string) {
	t.Helper()

	cfg := &config.Config{
		App:        config.AppConfig{Name: "LifeBoard", Version: "test", Environment: "test"},
		Repository: config.RepositoryConfig{Driver: "memory"},
		JWT:        config.JWTConfig{Secret: testSecret, Issuer: testIssuer},
		Security: config.SecurityConfig{
			CORSAllowedOrigins: "*",
			RateLimitRequests:  1000,
			RateLimitWindow:    time.Minute,
		},
	}

	srv, err := server.New(cfg, nil, logger.NewNop())
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Echo())
	t.Cleanup(ts.Close)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   testOwner,
		"email": "owner@example.com",
		"iss":   testIssuer,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return ts.URL, signed
}

func TestClientRoundTrip(t *testing.T) {
	url, token := startBackend(t)
	api := client.New(url, token)
	ctx := context.Background()

	project, err := api.CreateProject(ctx, ports.CreateProjectRequest{
		Title:    "Garden",
		Status:   entities.ProjectStatusPlanning,
		Priority: entities.PriorityLow,
	})
	require.NoError(t, err)
	assert.Equal(t, testOwner, project.OwnerID)

	projects, err := api.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	require.NoError(t, api.DeleteProject(ctx, project.ID))

	projects, err = api.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	user, err := api.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, testOwner, user.ID)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	url, _ := startBackend(t)
	api := client.New(url, "not-a-token")

	_, err := api.ListProjects(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestStoreSetOwnerLoadsEverything(t *testing.T) {
	url, token := startBackend(t)
	api := client.New(url, token)
	ctx := context.Background()

	_, err := api.CreateProject(ctx, ports.CreateProjectRequest{
		Title:    "P",
		Status:   entities.ProjectStatusPlanning,
		Priority: entities.PriorityMedium,
	})
	require.NoError(t, err)
	_, err = api.CreateTask(ctx, ports.CreateTaskRequest{
		Title:    "T",
		Priority: entities.PriorityMedium,
		Category: entities.TaskCategoryOther,
	})
	require.NoError(t, err)
	_, err = api.CreateJournal(ctx, ports.CreateJournalRequest{
		Title:   "J",
		Content: "text",
		Date:    time.Now().UTC(),
	})
	require.NoError(t, err)

	store := client.NewStore(api)
	require.NoError(t, store.SetOwner(ctx, testOwner))

	assert.Equal(t, testOwner, store.OwnerID())
	assert.Len(t, store.Projects(), 1)
	assert.Len(t, store.Tasks(), 1)
	assert.Len(t, store.Journals(), 1)

	store.Clear()
	assert.Empty(t, store.OwnerID())
	assert.Empty(t, store.Tasks())
}

func TestStoreSetOwnerAllOrNothing(t *testing.T) {
	url, token := startBackend(t)
	api := client.New(url, token)
	ctx := context.Background()

	store := client.NewStore(api)
	require.NoError(t, store.SetOwner(ctx, testOwner))

	// Point the store at a backend where one of the three fetches fails:
	// projects and tasks answer, journals return 500.
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/projects", "/api/v1/tasks":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]struct{}{})
		default:
			http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
		}
	}))
	defer broken.Close()

	brokenStore := client.NewStore(client.New(broken.URL, token))
	err := brokenStore.SetOwner(ctx, testOwner)
	require.Error(t, err)
	assert.Empty(t, brokenStore.OwnerID(), "a failed load must not install partial data")
}

func TestStoreMutationsPatchMirror(t *testing.T) {
	url, token := startBackend(t)
	store := client.NewStore(client.New(url, token))
	ctx := context.Background()

	require.NoError(t, store.SetOwner(ctx, testOwner))

	task, err := store.AddTask(ctx, ports.CreateTaskRequest{
		Title:    "buy seeds",
		Priority: entities.PriorityLow,
		Category: entities.TaskCategoryPersonal,
	})
	require.NoError(t, err)
	require.Len(t, store.Tasks(), 1)

	completed := true
	updated, err := store.UpdateTask(ctx, task.ID, ports.UpdateTaskRequest{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.True(t, store.Tasks()[0].Completed, "mirror reflects the server's row")

	require.NoError(t, store.DeleteTask(ctx, task.ID))
	assert.Empty(t, store.Tasks())
}

func TestStoreNotificationsMemoized(t *testing.T) {
	url, token := startBackend(t)
	store := client.NewStore(client.New(url, token))
	ctx := context.Background()

	require.NoError(t, store.SetOwner(ctx, testOwner))

	now := time.Now().UTC()
	first := store.Notifications(now)
	assert.Empty(t, first)

	// Cached: a later now must not trigger recomputation until tasks change.
	later := store.Notifications(now.Add(48 * time.Hour))
	assert.Len(t, later, len(first))

	_, err := store.AddTask(ctx, ports.CreateTaskRequest{
		Title:    "due soon",
		Priority: entities.PriorityHigh,
		Category: entities.TaskCategorySchool,
		DueDate:  timePtr(now.Add(6 * time.Hour)),
	})
	require.NoError(t, err)

	refreshed := store.Notifications(now)
	require.Len(t, refreshed, 1)
	assert.Equal(t, entities.NotificationWarning, refreshed[0].Type)
	assert.Equal(t, "Due Soon", refreshed[0].Title)
}

func TestStoreGroupedTasksMatchesServer(t *testing.T) {
	url, token := startBackend(t)
	api := client.New(url, token)
	store := client.NewStore(api)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := api.CreateTask(ctx, ports.CreateTaskRequest{
		Title:    "later today",
		Priority: entities.PriorityMedium,
		Category: entities.TaskCategorySchool,
		DueDate:  timePtr(now.Add(time.Hour)),
	})
	require.NoError(t, err)

	require.NoError(t, store.SetOwner(ctx, testOwner))

	local := store.GroupedTasks(now)
	remote, err := api.GroupTasks(ctx, "", "")
	require.NoError(t, err)

	require.Len(t, remote, len(planner.BucketOrder))
	for i := range remote {
		assert.Equal(t, local[i].Name, remote[i].Name)
		assert.Len(t, remote[i].Tasks, len(local[i].Tasks))
	}
}

func TestStoreSetOwnerEmptyClears(t *testing.T) {
	url, token := startBackend(t)
	store := client.NewStore(client.New(url, token))
	ctx := context.Background()

	_, err := client.New(url, token).CreateTask(ctx, ports.CreateTaskRequest{
		Title:    "lingering",
		Priority: entities.PriorityLow,
		Category: entities.TaskCategoryOther,
	})
	require.NoError(t, err)

	require.NoError(t, store.SetOwner(ctx, testOwner))
	require.Len(t, store.Tasks(), 1)

	// No owner means sign-out: the mirror empties without touching the API.
	require.NoError(t, store.SetOwner(ctx, ""))
	assert.Empty(t, store.OwnerID())
	assert.Empty(t, store.Projects())
	assert.Empty(t, store.Tasks())
	assert.Empty(t, store.Journals())
}

func TestStoreNotificationsReturnsCopy(t *testing.T) {
	url, token := startBackend(t)
	store := client.NewStore(client.New(url, token))
	ctx := context.Background()

	require.NoError(t, store.SetOwner(ctx, testOwner))

	now := time.Now().UTC()
	_, err := store.AddTask(ctx, ports.CreateTaskRequest{
		Title:    "due soon",
		Priority: entities.PriorityHigh,
		Category: entities.TaskCategorySchool,
		DueDate:  timePtr(now.Add(6 * time.Hour)),
	})
	require.NoError(t, err)

	first := store.Notifications(now)
	require.Len(t, first, 1)

	first[0].Title = "scribbled over"

	again := store.Notifications(now)
	require.Len(t, again, 1)
	assert.Equal(t, "Due Soon", again[0].Title, "callers get a copy, not the cache")
}
