package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

type CreateCourseRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	FullDescription  string   `json:"fullDescription"`
	Instructor       string   `json:"instructor"`
	Duration         string   `json:"duration"`
	Price            *float64 `json:"price"`
	Image            string   `json:"image"`
	Category         string   `json:"category"`
	Level            string   `json:"level"`
	Curriculum       []string `json:"curriculum"`
	Requirements     []string `json:"requirements"`
	LearningOutcomes []string `json:"learningOutcomes"`
}

type UpdateCourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Instructor  string   `json:"instructor"`
	Price       *float64 `json:"price"`
	Status      string   `json:"status"`
}

type CreateSlotRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	MaxStudents *int   `json:"maxStudents"`
}

// CreateCourse validates the admin course creation body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.Instructor) == "" {
			errors["instructor"] = "Instructor is required!"
		}
		if strings.TrimSpace(reqData.Duration) == "" {
			errors["duration"] = "Duration is required!"
		}
		if reqData.Price == nil {
			errors["price"] = "Price is required!"
		} else if *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}
		if !isValidLevel(reqData.Level) {
			errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validates the admin course update body; all fields optional
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if reqData.Status != "" && !isValidCourseStatus(reqData.Status) {
			errors["status"] = "Status must be draft, active or archived!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CreateSlot validates the slot creation body
func CreateSlot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSlotRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Date) == "" {
			errors["date"] = "Date is required!"
		}
		if strings.TrimSpace(reqData.Time) == "" {
			errors["time"] = "Time is required!"
		}
		if reqData.MaxStudents != nil && *reqData.MaxStudents < 1 {
			errors["maxStudents"] = "Max students must be at least 1!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSlot", reqData)
		return c.Next()
	}
}
