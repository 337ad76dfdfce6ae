package courseController

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub/middleware"
	"learnhub/models"
	courseValidator "learnhub/validators/course"
)

const defaultMaxStudents = 20

// AdminCreateSlot adds a bookable slot to a course and records a
// slot_created notification in the same transaction.
func (ctrl *Controller) AdminCreateSlot(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	reqData, ok := c.Locals("validatedSlot").(*courseValidator.CreateSlotRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	maxStudents := defaultMaxStudents
	if reqData.MaxStudents != nil {
		maxStudents = *reqData.MaxStudents
	}

	slot := models.CourseSlot{
		CourseID:    course.ID,
		Date:        reqData.Date,
		Time:        reqData.Time,
		MaxStudents: maxStudents,
		Available:   true,
	}

	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&slot).Error; err != nil {
			return err
		}
		notification := models.Notification{
			Type:    "slot_created",
			Message: fmt.Sprintf("New slot added to %s: %s at %s", course.Title, slot.Date, slot.Time),
		}
		return tx.Create(&notification).Error
	})
	if err != nil {
		log.Printf("Error creating slot for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create slot", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Slot created successfully!", slot)
}

// GetCourseSlots lists a course's slots sorted by (date, time) ascending
func (ctrl *Controller) GetCourseSlots(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	slots, err := ctrl.courseSlots(course.ID)
	if err != nil {
		log.Printf("Error fetching slots for course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch slots", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Slots fetched successfully!", slots)
}
