package paymentRoutes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentControllers "learnhub/controllers/payment"
	"learnhub/middleware"
	paymentValidators "learnhub/validators/payment"
)

// SetupPaymentRoutes sets up the checkout handoff route
func SetupPaymentRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := paymentControllers.NewController(db)

	app.Post("/checkout-session", middleware.JWTMiddleware, paymentValidators.CreateCheckoutSession(), ctrl.CreateCheckoutSession)
}
