package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sprintdeck/application/serviceimpl"
	"sprintdeck/domain/models"
	"sprintdeck/domain/ports"
	"sprintdeck/infrastructure/postgres"
	"sprintdeck/interfaces/api/handlers"
	"sprintdeck/interfaces/api/middleware"
)

const testJWTSecret = "routes-test-secret"

// nullCache always misses; the caching contract is covered by service tests.
type nullCache struct{}

func (nullCache) GetJSON(ctx context.Context, key string, target any) error {
	return ports.ErrCacheMiss
}

func (nullCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (nullCache) Del(ctx context.Context, keys ...string) error { return nil }

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Sprint{},
		&models.Task{},
		&models.TaskNote{},
		&models.TimeEntry{},
	))

	userSvc := serviceimpl.NewUserService(postgres.NewUserRepository(db), nullCache{}, testJWTSecret)
	taskSvc := serviceimpl.NewTaskService(
		postgres.NewTaskRepository(db),
		postgres.NewNoteRepository(db),
		postgres.NewTimeEntryRepository(db),
		postgres.NewSprintRepository(db),
	)
	sprintSvc := serviceimpl.NewSprintService(postgres.NewSprintRepository(db))

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestIDMiddleware())

	h := handlers.NewHandlers(&handlers.Services{
		UserService:   userSvc,
		TaskService:   taskSvc,
		SprintService: sprintSvc,
	})
	SetupRoutes(app, h, testJWTSecret)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &envelope), "body: %s", raw)
	}
	return resp, envelope
}

func registerUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/v1/user/", "", map[string]any{
		"username": "tester",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := envelope["data"].(map[string]any)
	token := data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestRegisterLoginAndMe(t *testing.T) {
	app := setupTestApp(t)

	token := registerUser(t, app, "alice@example.com")

	// duplicate registration conflicts
	resp, envelope := doJSON(t, app, http.MethodPost, "/api/v1/user/", "", map[string]any{
		"username": "tester",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	errInfo := envelope["error"].(map[string]any)
	assert.Equal(t, "CONFLICT", errInfo["code"])

	// login returns the same envelope shape
	resp, envelope = doJSON(t, app, http.MethodPost, "/api/v1/user/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := envelope["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])
	userData := data["user"].(map[string]any)
	assert.Equal(t, "alice@example.com", userData["email"])
	_, hasPassword := userData["password"]
	assert.False(t, hasPassword, "password hash must never be serialized")

	// /auth/me identifies the caller from the token
	resp, envelope = doJSON(t, app, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := envelope["data"].(map[string]any)
	assert.Equal(t, "alice@example.com", me["email"])

	// bad credentials are rejected without detail
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/user/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := setupTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/tasks/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/sprints/", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUserDirectoryIsPublic(t *testing.T) {
	app := setupTestApp(t)
	registerUser(t, app, "alice@example.com")

	resp, envelope := doJSON(t, app, http.MethodGet, "/api/v1/user/", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	users := envelope["data"].([]any)
	assert.Len(t, users, 1)

	// unknown id answers with null data, not an error
	resp, envelope = doJSON(t, app, http.MethodGet,
		"/api/v1/user/00000000-0000-0000-0000-000000000001", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, envelope["data"])
}

func TestUserDirectoryToleratesAnyAuthHeader(t *testing.T) {
	app := setupTestApp(t)
	token := registerUser(t, app, "alice@example.com")

	// a valid token is accepted but not required
	resp, envelope := doJSON(t, app, http.MethodGet, "/api/v1/user/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, envelope["data"].([]any), 1)

	// a broken token must not lock anyone out of the public directory
	resp, envelope = doJSON(t, app, http.MethodGet, "/api/v1/user/", "garbage-token", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, envelope["data"].([]any), 1)
}

func TestTaskAndSprintFlow(t *testing.T) {
	app := setupTestApp(t)
	token := registerUser(t, app, "alice@example.com")

	// create a sprint and activate it
	resp, envelope := doJSON(t, app, http.MethodPost, "/api/v1/sprints/", token, map[string]any{
		"name":      "Week 36",
		"startDate": "2026-08-31",
		"endDate":   "2026-09-06",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sprintID := envelope["data"].(map[string]any)["id"].(string)

	resp, envelope = doJSON(t, app, http.MethodPatch,
		fmt.Sprintf("/api/v1/sprints/%s/activate", sprintID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ACTIVE", envelope["data"].(map[string]any)["status"])

	// create a task inside the sprint
	resp, envelope = doJSON(t, app, http.MethodPost, "/api/v1/tasks/", token, map[string]any{
		"title":       "ship it",
		"description": "finish the release",
		"points":      5,
		"sprintId":    sprintID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := envelope["data"].(map[string]any)
	taskID := task["id"].(string)
	assert.Equal(t, "MEDIUM", task["priority"])
	assert.Equal(t, false, task["completed"])

	// toggle completion
	resp, envelope = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/v1/tasks/%s/toggle", taskID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	toggled := envelope["data"].(map[string]any)
	assert.Equal(t, true, toggled["completed"])
	assert.NotNil(t, toggled["completedAt"])

	// log time against it
	resp, _ = doJSON(t, app, http.MethodPost,
		fmt.Sprintf("/api/v1/tasks/%s/time-entries", taskID), token, map[string]any{
			"hours": 2.5,
		})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, envelope = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/tasks/%s/details", taskID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	details := envelope["data"].(map[string]any)
	assert.InDelta(t, 2.5, details["timeSpent"].(float64), 1e-9)

	// metrics reflect the completed task
	resp, envelope = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/api/v1/sprints/%s/metrics", sprintID), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	metrics := envelope["data"].(map[string]any)["metrics"].(map[string]any)
	assert.Equal(t, float64(1), metrics["totalTasks"])
	assert.Equal(t, float64(1), metrics["completedTasks"])
	assert.InDelta(t, 100.0, metrics["completionRate"].(float64), 1e-9)

	// daily report picks up today's completion
	resp, envelope = doJSON(t, app, http.MethodGet, "/api/v1/tasks/daily-report", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := envelope["data"].(map[string]any)
	summary := report["summary"].(map[string]any)
	assert.Equal(t, float64(1), summary["completedTasks"])
	assert.Equal(t, float64(5), summary["completedPoints"])

	// tasks list pagination meta
	resp, envelope = doJSON(t, app, http.MethodGet, "/api/v1/tasks/?page=1&limit=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	meta := envelope["data"].(map[string]any)["meta"].(map[string]any)
	assert.Equal(t, float64(1), meta["total"])
	assert.Equal(t, float64(1), meta["lastPage"])
}

func TestTaskListDefaultPageSize(t *testing.T) {
	app := setupTestApp(t)
	token := registerUser(t, app, "alice@example.com")

	for i := 0; i < 11; i++ {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/tasks/", token, map[string]any{
			"title":       "t",
			"description": "d",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// no query params: first page of 10
	resp, envelope := doJSON(t, app, http.MethodGet, "/api/v1/tasks/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := envelope["data"].(map[string]any)
	assert.Len(t, data["tasks"].([]any), 10)
	meta := data["meta"].(map[string]any)
	assert.Equal(t, float64(11), meta["total"])
	assert.Equal(t, float64(1), meta["page"])
	assert.Equal(t, float64(10), meta["limit"])
	assert.Equal(t, float64(2), meta["lastPage"])
}

func TestCrossUserAccessLooksLikeNotFound(t *testing.T) {
	app := setupTestApp(t)
	aliceToken := registerUser(t, app, "alice@example.com")
	malloryToken := registerUser(t, app, "mallory@example.com")

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/v1/tasks/", aliceToken, map[string]any{
		"title":       "private",
		"description": "alice only",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	taskID := envelope["data"].(map[string]any)["id"].(string)

	resp, envelope = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/v1/tasks/%s", taskID), malloryToken, map[string]any{
			"title": "stolen",
		})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", envelope["error"].(map[string]any)["code"])

	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/v1/tasks/%s", taskID), malloryToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestValidationErrors(t *testing.T) {
	app := setupTestApp(t)
	token := registerUser(t, app, "alice@example.com")

	// missing title and description
	resp, envelope := doJSON(t, app, http.MethodPost, "/api/v1/tasks/", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", envelope["error"].(map[string]any)["code"])

	// points outside 0-13
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/tasks/", token, map[string]any{
		"title":       "t",
		"description": "d",
		"points":      21,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// short password on registration
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/user/", "", map[string]any{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
