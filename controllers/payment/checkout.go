package paymentController

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"learnhub/config"
	"learnhub/middleware"
	"learnhub/models"
	paymentValidator "learnhub/validators/payment"
)

type Controller struct {
	db     *gorm.DB
	client *resty.Client
}

func NewController(db *gorm.DB) *Controller {
	client := resty.New().
		SetBaseURL(config.AppConfig.CheckoutApiURL).
		SetAuthToken(config.AppConfig.CheckoutApiKey).
		SetTimeout(15 * time.Second)
	return &Controller{db: db, client: client}
}

type checkoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCheckoutSession opens a payment session at the external provider and
// returns its redirect URL. Payment capture itself is the provider's job;
// after the success redirect the client calls POST /enrollments, which is
// idempotent against replays.
func (ctrl *Controller) CreateCheckoutSession(c *fiber.Ctx) error {
	if _, ok := c.Locals("identity").(middleware.Identity); !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCheckout").(*paymentValidator.CheckoutSessionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := ctrl.db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	origin := c.Get("Origin")
	if origin == "" {
		origin = config.AppConfig.FrontendURL
	}

	payload := map[string]interface{}{
		"mode":                "payment",
		"customer_email":      reqData.UserEmail,
		"client_reference_id": uuid.NewString(),
		"line_items": []map[string]interface{}{
			{
				"name":     reqData.CourseTitle,
				"amount":   int64(math.Round(*reqData.Price * 100)), // cents
				"currency": "usd",
				"quantity": 1,
			},
		},
		"metadata":    map[string]string{"courseId": strconv.FormatUint(uint64(course.ID), 10)},
		"success_url": origin + "/payment/success",
		"cancel_url":  fmt.Sprintf("%s/courses/%d", origin, course.ID),
	}

	var session checkoutSession
	resp, err := ctrl.client.R().
		SetBody(payload).
		SetResult(&session).
		Post("/checkout/sessions")
	if err != nil {
		log.Printf("Checkout provider request failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create checkout session", nil)
	}
	if resp.IsError() || session.URL == "" {
		log.Printf("Checkout provider returned status %d: %s", resp.StatusCode(), resp.String())
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create checkout session", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout session created.", fiber.Map{
		"url": session.URL,
	})
}
