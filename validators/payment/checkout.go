package paymentValidator

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type CheckoutSessionRequest struct {
	CourseID    uint     `json:"courseId"`
	CourseTitle string   `json:"courseTitle"`
	Price       *float64 `json:"price"`
	UserEmail   string   `json:"userEmail"`
}

// CreateCheckoutSession validates the checkout session body
func CreateCheckoutSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CheckoutSessionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CourseID == 0 {
			errors["courseId"] = "Course ID is required!"
		}
		if strings.TrimSpace(reqData.CourseTitle) == "" {
			errors["courseTitle"] = "Course title is required!"
		}
		if reqData.Price == nil || *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if reqData.UserEmail == "" || !emailRe.MatchString(reqData.UserEmail) {
			errors["userEmail"] = "Invalid email address!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCheckout", reqData)
		return c.Next()
	}
}
