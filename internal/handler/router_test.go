package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/users/api/internal/metrics"
	"github.com/forgo/users/api/internal/middleware"
	"github.com/forgo/users/api/internal/model"
	"github.com/forgo/users/api/internal/repository"
	"github.com/forgo/users/api/internal/service"
	"github.com/forgo/users/api/internal/testing/helpers"
)

// newTestServer wires the real service and store behind the router
func newTestServer(t *testing.T, seed bool) (http.Handler, *metrics.Metrics) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := repository.NewUserRepository()
	if seed {
		require.NoError(t, repository.Seed(context.Background(), repo, repository.SampleUsers, time.Now()))
	}
	m := metrics.New()
	svc := service.NewUserService(service.UserServiceConfig{Repo: repo, Logger: logger, Metrics: m})

	return NewRouter(RouterConfig{
		Users:   svc,
		Logger:  logger,
		Metrics: m,
		CORS:    middleware.CORSConfig{Enabled: true, Origins: []string{"*"}},
		Service: "users-api",
		Version: "1.2.3",
	}), m
}

func TestRouter_UserLifecycle(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t, false)

	// Create
	rr := helpers.NewRequest(t, http.MethodPost, "/api/v1/users").
		WithBody(model.CreateUserRequest{Name: " Jane Doe ", Email: "JANE@example.com", Age: 17}).
		Do(router)
	helpers.AssertStatus(t, rr, http.StatusCreated)
	created := helpers.DecodeData[model.UserResponse](t, rr)
	assert.Equal(t, "Jane Doe", created.Name)
	assert.Equal(t, "jane@example.com", created.Email)

	userPath := "/api/v1/users/" + created.ID.String()

	// Read
	rr = helpers.NewRequest(t, http.MethodGet, userPath).Do(router)
	helpers.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, created, helpers.DecodeData[model.UserResponse](t, rr))

	// Profile
	rr = helpers.NewRequest(t, http.MethodGet, userPath+"/profile").Do(router)
	helpers.AssertStatus(t, rr, http.StatusOK)
	profile := helpers.DecodeData[model.UserProfileResponse](t, rr)
	assert.False(t, profile.IsAdult)
	assert.Equal(t, userPath+"/profile", profile.ProfileURL)
	_, err := time.Parse(time.RFC3339, profile.CreatedAt)
	assert.NoError(t, err)

	// Partial update
	rr = helpers.NewRequest(t, http.MethodPut, userPath).
		WithBody(model.UpdateUserRequest{Age: helpers.IntPtr(18)}).
		Do(router)
	helpers.AssertStatus(t, rr, http.StatusOK)
	updated := helpers.DecodeData[model.UserResponse](t, rr)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, 18, updated.Age)

	rr = helpers.NewRequest(t, http.MethodGet, userPath+"/profile").Do(router)
	assert.True(t, helpers.DecodeData[model.UserProfileResponse](t, rr).IsAdult)

	// Delete
	rr = helpers.NewRequest(t, http.MethodDelete, userPath).Do(router)
	helpers.AssertStatus(t, rr, http.StatusNoContent)

	rr = helpers.NewRequest(t, http.MethodGet, userPath).Do(router)
	helpers.AssertErrorCode(t, rr, http.StatusNotFound, model.CodeUserNotFound)

	rr = helpers.NewRequest(t, http.MethodDelete, userPath).Do(router)
	helpers.AssertErrorCode(t, rr, http.StatusNotFound, model.CodeUserNotFound)
}

func TestRouter_ListSortedWithSeedData(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t, true)

	rr := helpers.NewRequest(t, http.MethodPost, "/api/v1/users").
		WithBody(model.CreateUserRequest{Name: "Zed", Email: "zed@x.com", Age: 40}).
		Do(router)
	helpers.AssertStatus(t, rr, http.StatusCreated)

	rr = helpers.NewRequest(t, http.MethodGet, "/api/v1/users").Do(router)
	helpers.AssertStatus(t, rr, http.StatusOK)
	list := helpers.DecodeData[model.UsersListResponse](t, rr)

	require.Len(t, list.Users, 3)
	assert.Equal(t, "Alice Johnson", list.Users[0].Name)
	assert.Equal(t, "Bob Smith", list.Users[1].Name)
	assert.Equal(t, "Zed", list.Users[2].Name)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 10, list.Limit)
	assert.Equal(t, 0, list.Offset)
}

func TestRouter_ListWireShape(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t, true)

	rr := helpers.NewRequest(t, http.MethodGet, "/api/v1/users?limit=1&offset=5").Do(router)
	helpers.AssertStatus(t, rr, http.StatusOK)

	body := rr.Body.String()
	assert.Contains(t, body, `"users":[]`)
	assert.Contains(t, body, `"total":2`)
	assert.Contains(t, body, `"limit":1`)
	assert.Contains(t, body, `"offset":5`)
}

func TestRouter_ListRejectsOutOfRangeLimit(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t, false)

	for _, q := range []string{"limit=0", "limit=101", "offset=-1"} {
		rr := helpers.NewRequest(t, http.MethodGet, "/api/v1/users?"+q).Do(router)
		helpers.AssertErrorCode(t, rr, http.StatusBadRequest, model.CodeInvalidInput)
	}
}

func TestRouter_DuplicateEmailConflict(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t, true)

	rr := helpers.NewRequest(t, http.MethodPost, "/api/v1/users").
		WithBody(model.CreateUserRequest{Name: "Alice Again", Email: " Alice@Example.com", Age: 30}).
		Do(router)
	helpers.AssertErrorCode(t, rr, http.StatusConflict, model.CodeUserAlreadyExists)
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t, false)

	rr := helpers.NewRequest(t, http.MethodGet, "/api/v1/health").Do(router)
	helpers.AssertStatus(t, rr, http.StatusOK)

	health := helpers.DecodeData[model.HealthResponse](t, rr)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "users-api", health.Service)
	assert.Equal(t, "1.2.3", health.Version)
	assert.NotEmpty(t, health.Timestamp)
}

func TestRouter_Root(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t, false)

	rr := helpers.NewRequest(t, http.MethodGet, "/").Do(router)
	helpers.AssertStatus(t, rr, http.StatusOK)
	assert.Equal(t, WelcomeMessage, rr.Body.String())
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/plain"))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	t.Parallel()

	router, _ := newTestServer(t, false)

	helpers.NewRequest(t, http.MethodPost, "/api/v1/users").
		WithBody(model.CreateUserRequest{Name: "Counted", Email: "counted@example.com", Age: 20}).
		Do(router)

	rr := helpers.NewRequest(t, http.MethodGet, "/metrics").Do(router)
	helpers.AssertStatus(t, rr, http.StatusOK)

	body := rr.Body.String()
	assert.Contains(t, body, "users_created_total 1")
	assert.Contains(t, body, `route="/api/v1/users`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	t.Parallel()

	router := NewRouter(RouterConfig{
		Users:  service.NewUserService(service.UserServiceConfig{Repo: repository.NewUserRepository()}),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	rr := helpers.NewRequest(t, http.MethodGet, "/metrics").Do(router)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
