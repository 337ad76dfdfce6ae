package courseRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	validators "learnhub/validators/course"
)

// SetupAdminCourseRoutes sets up admin course and slot management routes
func SetupAdminCourseRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controllers.NewController(db)

	courseGroup := app.Group("/courses")

	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly, validators.CreateCourse(), ctrl.AdminCreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.CourseID(), validators.UpdateCourse(), ctrl.AdminUpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly, validators.CourseID(), ctrl.AdminDeleteCourse)
	courseGroup.Post("/:id/slots", middleware.JWTMiddleware, middleware.AdminOnly, validators.CourseID(), validators.CreateSlot(), ctrl.AdminCreateSlot)
}
