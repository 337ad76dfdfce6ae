package notificationValidator

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/middleware"
)

type MarkReadRequest struct {
	NotificationID uint `json:"notificationId"`
}

// MarkRead validates the mark-read body
func MarkRead() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MarkReadRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.NotificationID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"notificationId": "Notification ID is required!",
			})
		}

		c.Locals("validatedMarkRead", reqData)
		return c.Next()
	}
}
