package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

func isValidLevel(level string) bool {
	switch level {
	case "Beginner", "Intermediate", "Advanced":
		return true
	}
	return false
}

func isValidCourseStatus(status string) bool {
	switch status {
	case "draft", "active", "archived":
		return true
	}
	return false
}

// CourseID validates the :id route parameter and stores it in the locals
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

type EnrollmentRequest struct {
	CourseID uint `json:"courseId"`
	SlotID   uint `json:"slotId"`
}

// Enroll validates the enrollment request body
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if reqData.SlotID == 0 {
			errors["slotId"] = "Slot ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}
