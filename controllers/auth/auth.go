package authController

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"learnhub/config"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	authValidator "learnhub/validators/auth"
)

type Controller struct {
	db *gorm.DB
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// publicUser strips everything a client should not see
func publicUser(user models.User) fiber.Map {
	return fiber.Map{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
	}
}

// Register creates a student account and returns it with a signed token
func (ctrl *Controller) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	// Check if email already exists
	if err := ctrl.db.Where("email = ? AND is_deleted = ?", email, false).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already exists with this email", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.BcryptCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	// Role is always student on self-registration; admins are provisioned
	// through the seed script.
	newUser := models.User{
		Name:     strings.TrimSpace(reqData.Name),
		Email:    email,
		Password: string(hashedPassword),
		Role:     "student",
	}

	if err := ctrl.db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	// Best-effort admin notification; registration succeeds regardless
	notification := models.Notification{
		Type:    "new_registration",
		Message: fmt.Sprintf("New user registered: %s (%s)", newUser.Name, newUser.Email),
	}
	if err := ctrl.db.Create(&notification).Error; err != nil {
		log.Printf("Error creating registration notification: %v", err)
	}

	go utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Name, newUser.Email, newUser.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user":  publicUser(newUser),
		"token": token,
	})
}

// Login verifies credentials and returns the user with a signed token
func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	var user models.User
	if err := ctrl.db.Where("email = ? AND is_deleted = ?", email, false).First(&user).Error; err != nil {
		// Same message for unknown email and wrong password
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid email or password", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  publicUser(user),
		"token": token,
	})
}
