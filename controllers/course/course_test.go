package courseController_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/models"
)

func courseBody(title string, price float64) map[string]interface{} {
	return map[string]interface{}{
		"title":       title,
		"description": "A course about " + title,
		"instructor":  "Jane Doe",
		"duration":    "8 weeks",
		"price":       price,
		"category":    "Programming",
		"level":       "Beginner",
		"curriculum":  []string{"Basics", "Advanced topics"},
	}
}

func TestCreateCourse_RoundTrip(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createUser(t, db, "Admin", "admin@example.com", "admin")

	code, resp := doRequest(t, app, http.MethodPost, "/courses", adminToken, courseBody("Go Basics", 149.5))
	require.Equal(t, http.StatusCreated, code)
	require.True(t, resp.Success)

	var created models.Course
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Equal(t, "draft", created.Status)

	code, resp = doRequest(t, app, http.MethodGet, fmt.Sprintf("/courses/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, code)

	var fetched map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &fetched))
	assert.Equal(t, "Go Basics", fetched["title"])
	assert.Equal(t, 149.5, fetched["price"])
	assert.Equal(t, "Programming", fetched["category"])
	assert.Equal(t, "Beginner", fetched["level"])
}

func TestCreateCourse_Validation(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createUser(t, db, "Admin", "admin@example.com", "admin")

	tests := []struct {
		name   string
		mutate func(map[string]interface{})
		field  string
	}{
		{"missing title", func(m map[string]interface{}) { delete(m, "title") }, "title"},
		{"missing description", func(m map[string]interface{}) { delete(m, "description") }, "description"},
		{"missing instructor", func(m map[string]interface{}) { delete(m, "instructor") }, "instructor"},
		{"missing duration", func(m map[string]interface{}) { delete(m, "duration") }, "duration"},
		{"missing price", func(m map[string]interface{}) { delete(m, "price") }, "price"},
		{"negative price", func(m map[string]interface{}) { m["price"] = -1 }, "price"},
		{"missing category", func(m map[string]interface{}) { delete(m, "category") }, "category"},
		{"bad level", func(m map[string]interface{}) { m["level"] = "Expert" }, "level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := courseBody("Go Basics", 100)
			tt.mutate(body)

			code, resp := doRequest(t, app, http.MethodPost, "/courses", adminToken, body)
			assert.Equal(t, http.StatusUnprocessableEntity, code)

			var fields map[string]string
			require.NoError(t, json.Unmarshal(resp.Data, &fields))
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestCreateCourse_RequiresAdmin(t *testing.T) {
	app, db := setupTestApp(t)
	_, studentToken := createUser(t, db, "Student", "student@example.com", "student")

	code, _ := doRequest(t, app, http.MethodPost, "/courses", studentToken, courseBody("Go Basics", 100))
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = doRequest(t, app, http.MethodPost, "/courses", "", courseBody("Go Basics", 100))
	assert.Equal(t, http.StatusUnauthorized, code)

	var count int64
	require.NoError(t, db.Model(&models.Course{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListCourses_Filters(t *testing.T) {
	app, db := setupTestApp(t)

	active := createCourse(t, db, "Active Course", 100, "active")
	createCourse(t, db, "Draft Course", 100, "draft")
	other := createCourse(t, db, "Other Category", 100, "active")
	require.NoError(t, db.Model(&other).Updates(map[string]interface{}{"category": "Marketing", "level": "Advanced"}).Error)
	createSlot(t, db, active.ID, "2026-09-15", "10:00 AM - 12:00 PM", 20)

	listTitles := func(path string) []string {
		code, resp := doRequest(t, app, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, code)
		var items []map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Data, &items))
		titles := make([]string, len(items))
		for i, item := range items {
			titles[i] = item["title"].(string)
		}
		return titles
	}

	// Default listing hides drafts
	assert.ElementsMatch(t, []string{"Active Course", "Other Category"}, listTitles("/courses"))
	assert.ElementsMatch(t, []string{"Draft Course"}, listTitles("/courses?status=draft"))
	assert.Len(t, listTitles("/courses?status=all"), 3)
	assert.ElementsMatch(t, []string{"Other Category"}, listTitles("/courses?category=Marketing"))
	assert.ElementsMatch(t, []string{"Other Category"}, listTitles("/courses?level=Advanced"))

	// Slots come embedded
	code, resp := doRequest(t, app, http.MethodGet, "/courses", "", nil)
	require.Equal(t, http.StatusOK, code)
	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &items))
	for _, item := range items {
		if item["title"] == "Active Course" {
			slots := item["slots"].([]interface{})
			require.Len(t, slots, 1)
			slot := slots[0].(map[string]interface{})
			assert.Equal(t, "2026-09-15", slot["date"])
			assert.Equal(t, true, slot["available"])
		}
	}
}

func TestUpdateCourse(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createUser(t, db, "Admin", "admin@example.com", "admin")
	course := createCourse(t, db, "Go Basics", 100, "draft")

	code, resp := doRequest(t, app, http.MethodPut, fmt.Sprintf("/courses/%d", course.ID), adminToken, map[string]interface{}{
		"price":  250.0,
		"status": "active",
	})
	require.Equal(t, http.StatusOK, code)

	var updated models.Course
	require.NoError(t, json.Unmarshal(resp.Data, &updated))
	assert.Equal(t, 250.0, updated.Price)
	assert.Equal(t, "active", updated.Status)
	assert.Equal(t, "Go Basics", updated.Title) // untouched fields survive

	code, _ = doRequest(t, app, http.MethodPut, "/courses/9999", adminToken, map[string]interface{}{"price": 10.0})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDeleteCourse_CascadesToSlotsAndEnrollments(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createUser(t, db, "Admin", "admin@example.com", "admin")
	_, studentToken := createUser(t, db, "Student", "student@example.com", "student")
	course := createCourse(t, db, "Go Basics", 100, "active")
	slot := createSlot(t, db, course.ID, "2026-09-15", "10:00 AM - 12:00 PM", 10)

	code, _ := doRequest(t, app, http.MethodPost, "/enrollments", studentToken, enrollBody(course.ID, slot.ID))
	require.Equal(t, http.StatusCreated, code)

	code, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/courses/%d", course.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, app, http.MethodGet, fmt.Sprintf("/courses/%d", course.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, code)

	var deletedSlot models.CourseSlot
	require.NoError(t, db.First(&deletedSlot, slot.ID).Error)
	assert.True(t, deletedSlot.IsDeleted)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("course_id = ?", course.ID).First(&enrollment).Error)
	assert.Equal(t, "cancelled", enrollment.Status)

	// Deleting twice is a 404, not an error
	code, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/courses/%d", course.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateSlot(t *testing.T) {
	app, db := setupTestApp(t)
	_, adminToken := createUser(t, db, "Admin", "admin@example.com", "admin")
	course := createCourse(t, db, "Go Basics", 100, "active")

	code, resp := doRequest(t, app, http.MethodPost, fmt.Sprintf("/courses/%d/slots", course.ID), adminToken, map[string]interface{}{
		"date": "2026-09-15",
		"time": "10:00 AM - 12:00 PM",
	})
	require.Equal(t, http.StatusCreated, code)

	var slot models.CourseSlot
	require.NoError(t, json.Unmarshal(resp.Data, &slot))
	assert.Equal(t, 20, slot.MaxStudents) // default capacity
	assert.Equal(t, 0, slot.EnrolledStudents)
	assert.True(t, slot.Available)

	var notificationCount int64
	require.NoError(t, db.Model(&models.Notification{}).Where("type = ?", "slot_created").Count(&notificationCount).Error)
	assert.Equal(t, int64(1), notificationCount)

	code, _ = doRequest(t, app, http.MethodPost, "/courses/9999/slots", adminToken, map[string]interface{}{
		"date": "2026-09-15",
		"time": "10:00 AM - 12:00 PM",
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestGetCourseSlots_SortedByDateAndTime(t *testing.T) {
	app, db := setupTestApp(t)
	course := createCourse(t, db, "Go Basics", 100, "active")
	createSlot(t, db, course.ID, "2026-09-22", "02:00 PM", 10)
	createSlot(t, db, course.ID, "2026-09-15", "02:00 PM", 10)
	createSlot(t, db, course.ID, "2026-09-15", "10:00 AM", 10)

	code, resp := doRequest(t, app, http.MethodGet, fmt.Sprintf("/courses/%d/slots", course.ID), "", nil)
	require.Equal(t, http.StatusOK, code)

	var slots []models.CourseSlot
	require.NoError(t, json.Unmarshal(resp.Data, &slots))
	require.Len(t, slots, 3)
	assert.Equal(t, "2026-09-15", slots[0].Date)
	assert.Equal(t, "10:00 AM", slots[0].Time)
	assert.Equal(t, "2026-09-15", slots[1].Date)
	assert.Equal(t, "02:00 PM", slots[1].Time)
	assert.Equal(t, "2026-09-22", slots[2].Date)
}
