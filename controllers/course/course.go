package courseController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub/middleware"
	"learnhub/models"
)

type Controller struct {
	db *gorm.DB
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// slotSummary is the slot shape embedded in catalogue responses
func slotSummary(slot models.CourseSlot) fiber.Map {
	return fiber.Map{
		"id":                slot.ID,
		"date":              slot.Date,
		"time":              slot.Time,
		"max_students":      slot.MaxStudents,
		"enrolled_students": slot.EnrolledStudents,
		"available":         slot.Available,
	}
}

// courseSlots returns a course's live slots sorted by (date, time) ascending
func (ctrl *Controller) courseSlots(courseID uint) ([]models.CourseSlot, error) {
	var slots []models.CourseSlot
	err := ctrl.db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("date asc, time asc").
		Find(&slots).Error
	return slots, err
}

func (ctrl *Controller) courseWithSlots(course models.Course) (fiber.Map, error) {
	slots, err := ctrl.courseSlots(course.ID)
	if err != nil {
		return nil, err
	}
	embedded := make([]fiber.Map, len(slots))
	for i, slot := range slots {
		embedded[i] = slotSummary(slot)
	}
	return fiber.Map{
		"id":                course.ID,
		"title":             course.Title,
		"description":       course.Description,
		"full_description":  course.FullDescription,
		"instructor":        course.Instructor,
		"duration":          course.Duration,
		"price":             course.Price,
		"image":             course.Image,
		"category":          course.Category,
		"level":             course.Level,
		"status":            course.Status,
		"students_count":    course.StudentsCount,
		"rating":            course.Rating,
		"curriculum":        course.Curriculum,
		"requirements":      course.Requirements,
		"learning_outcomes": course.LearningOutcomes,
		"created_at":        course.CreatedAt,
		"slots":             embedded,
	}, nil
}

// GetAllCourses lists the catalogue with optional category/level/status
// filters. Status defaults to active; "all" disables the filter.
func (ctrl *Controller) GetAllCourses(c *fiber.Ctx) error {
	category := c.Query("category")
	level := c.Query("level")
	status := c.Query("status", "active")

	db := ctrl.db.Where("is_deleted = ?", false)
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if level != "" {
		db = db.Where("level = ?", level)
	}
	if status != "all" {
		db = db.Where("status = ?", status)
	}

	var courses []models.Course
	if err := db.Order("created_at desc").Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses", nil)
	}

	result := make([]fiber.Map, len(courses))
	for i, course := range courses {
		item, err := ctrl.courseWithSlots(course)
		if err != nil {
			log.Printf("Error fetching slots for course %d: %v", course.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses", nil)
		}
		result[i] = item
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// GetCourseDetails returns a single course with its slots
func (ctrl *Controller) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	result, err := ctrl.courseWithSlots(course)
	if err != nil {
		log.Printf("Error fetching slots for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", result)
}
