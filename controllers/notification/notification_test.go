package notificationController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	notificationRoutes "learnhub/routers/notificationRoutes"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	notificationRoutes.SetupNotificationRoutes(app, db)
	return app, db
}

func createToken(t *testing.T, db *gorm.DB, role string) string {
	t.Helper()

	user := models.User{Name: "Test " + role, Email: role + "@example.com", Password: "x", Role: role}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.Role)
	require.NoError(t, err)
	return token
}

func createNotification(t *testing.T, db *gorm.DB, message string, createdAt time.Time) models.Notification {
	t.Helper()

	notification := models.Notification{Type: "new_enrollment", Message: message}
	notification.CreatedAt = createdAt
	require.NoError(t, db.Create(&notification).Error)
	return notification
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, apiResponse) {
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

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode, envelope
}

func TestListNotifications_NewestFirstWithLimit(t *testing.T) {
	app, db := setupTestApp(t)
	adminToken := createToken(t, db, "admin")

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	createNotification(t, db, "oldest", base)
	createNotification(t, db, "middle", base.Add(time.Hour))
	createNotification(t, db, "newest", base.Add(2*time.Hour))

	code, resp := doRequest(t, app, http.MethodGet, "/notifications", adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	var items []models.Notification
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 3)
	assert.Equal(t, "newest", items[0].Message)
	assert.Equal(t, "middle", items[1].Message)
	assert.Equal(t, "oldest", items[2].Message)
	assert.False(t, items[0].Read)

	code, resp = doRequest(t, app, http.MethodGet, "/notifications?limit=2", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "newest", items[0].Message)

	// Out-of-range limits fall back to the default
	code, resp = doRequest(t, app, http.MethodGet, "/notifications?limit=0", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	assert.Len(t, items, 3)
}

func TestListNotifications_AdminOnly(t *testing.T) {
	app, db := setupTestApp(t)
	studentToken := createToken(t, db, "student")

	code, _ := doRequest(t, app, http.MethodGet, "/notifications", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doRequest(t, app, http.MethodGet, "/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestMarkRead(t *testing.T) {
	app, db := setupTestApp(t)
	adminToken := createToken(t, db, "admin")
	notification := createNotification(t, db, "unread one", time.Now())

	code, _ := doRequest(t, app, http.MethodPut, "/notifications", adminToken, map[string]interface{}{
		"notificationId": notification.ID,
	})
	require.Equal(t, http.StatusOK, code)

	var stored models.Notification
	require.NoError(t, db.First(&stored, notification.ID).Error)
	assert.True(t, stored.Read)

	// Marking twice stays a 200
	code, _ = doRequest(t, app, http.MethodPut, "/notifications", adminToken, map[string]interface{}{
		"notificationId": notification.ID,
	})
	assert.Equal(t, http.StatusOK, code)

	code, resp := doRequest(t, app, http.MethodPut, "/notifications", adminToken, map[string]interface{}{
		"notificationId": 9999,
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Notification not found", resp.Error)

	code, _ = doRequest(t, app, http.MethodPut, "/notifications", adminToken, map[string]interface{}{})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}
