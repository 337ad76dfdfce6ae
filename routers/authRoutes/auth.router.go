package authRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authControllers "learnhub/controllers/auth"
	authValidators "learnhub/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authControllers.NewController(db)

	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), ctrl.Register)
	authGroup.Post("/login", authValidators.Login(), ctrl.Login)
}
