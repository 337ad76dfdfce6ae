package notificationController

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub/middleware"
	"learnhub/models"
	notificationValidator "learnhub/validators/notification"
)

const defaultFeedLimit = 50

type Controller struct {
	db *gorm.DB
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// ListNotifications returns the feed newest first, capped at the limit
func (ctrl *Controller) ListNotifications(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultFeedLimit)
	if limit < 1 || limit > 200 {
		limit = defaultFeedLimit
	}

	var notifications []models.Notification
	if err := ctrl.db.Order("created_at desc").Limit(limit).Find(&notifications).Error; err != nil {
		log.Printf("Error fetching notifications: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", notifications)
}

// MarkRead flips the read flag. Marking an already-read notification is a
// no-op, not an error.
func (ctrl *Controller) MarkRead(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMarkRead").(*notificationValidator.MarkReadRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var notification models.Notification
	if err := ctrl.db.First(&notification, reqData.NotificationID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found", nil)
	}

	if !notification.Read {
		if err := ctrl.db.Model(&notification).Update("read", true).Error; err != nil {
			log.Printf("Error marking notification %d as read: %v", notification.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read", nil)
}
