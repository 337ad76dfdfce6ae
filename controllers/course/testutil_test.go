package courseController_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	courseRoutes "learnhub/routers/courseRoutes"
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

	// A single connection serializes concurrent writes on sqlite
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app, db)
	courseRoutes.SetupAdminCourseRoutes(app, db)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) (models.User, string) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hashed), Role: role}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.Role)
	require.NoError(t, err)
	return user, token
}

func createCourse(t *testing.T, db *gorm.DB, title string, price float64, status string) models.Course {
	t.Helper()

	course := models.Course{
		Title:       title,
		Description: "test course",
		Instructor:  "Jane Doe",
		Duration:    "8 weeks",
		Price:       price,
		Category:    "Programming",
		Level:       "Beginner",
		Status:      status,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func createSlot(t *testing.T, db *gorm.DB, courseID uint, date, timeSlot string, maxStudents int) models.CourseSlot {
	t.Helper()

	slot := models.CourseSlot{
		CourseID:    courseID,
		Date:        date,
		Time:        timeSlot,
		MaxStudents: maxStudents,
		Available:   true,
	}
	require.NoError(t, db.Create(&slot).Error)
	return slot
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
