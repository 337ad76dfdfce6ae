package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"learnhub/config"
	"learnhub/database"
	adminRoutes "learnhub/routers/adminRoutes"
	authRoutes "learnhub/routers/authRoutes"
	courseRoutes "learnhub/routers/courseRoutes"
	notificationRoutes "learnhub/routers/notificationRoutes"
	paymentRoutes "learnhub/routers/paymentRoutes"
	"learnhub/utils"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, db)
	courseRoutes.SetupCourseRoutes(app, db)
	courseRoutes.SetupAdminCourseRoutes(app, db)
	notificationRoutes.SetupNotificationRoutes(app, db)
	paymentRoutes.SetupPaymentRoutes(app, db)
	adminRoutes.SetupAdminRoutes(app, db)

	utils.InitializeReminderScheduler(db)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
