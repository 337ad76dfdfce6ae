package adminRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminControllers "learnhub/controllers/admin"
	"learnhub/middleware"
)

// SetupAdminRoutes sets up the back-office dashboard routes
func SetupAdminRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := adminControllers.NewController(db)

	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/stats", ctrl.GetStats)
	adminGroup.Get("/students", ctrl.GetStudents)
	adminGroup.Get("/transactions", ctrl.GetTransactions)
}
