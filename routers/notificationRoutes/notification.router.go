package notificationRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationControllers "learnhub/controllers/notification"
	"learnhub/middleware"
	notificationValidators "learnhub/validators/notification"
)

// SetupNotificationRoutes sets up the admin notification feed routes
func SetupNotificationRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := notificationControllers.NewController(db)

	notificationGroup := app.Group("/notifications", middleware.JWTMiddleware, middleware.AdminOnly)

	notificationGroup.Get("/", ctrl.ListNotifications)
	notificationGroup.Put("/", notificationValidators.MarkRead(), ctrl.MarkRead)
}
