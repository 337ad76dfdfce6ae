package courseRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	validators "learnhub/validators/course"
)

// SetupCourseRoutes sets up the public catalogue and enrollment routes
func SetupCourseRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controllers.NewController(db)

	courseGroup := app.Group("/courses")

	// Catalogue browsing is public
	courseGroup.Get("/", ctrl.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), ctrl.GetCourseDetails)
	courseGroup.Get("/:id/slots", validators.CourseID(), ctrl.GetCourseSlots)

	// Enrollment requires a verified identity
	enrollGroup := app.Group("/enrollments")
	enrollGroup.Post("/", middleware.JWTMiddleware, validators.Enroll(), ctrl.EnrollInCourse)
	enrollGroup.Get("/", middleware.JWTMiddleware, ctrl.GetEnrollments)
}
