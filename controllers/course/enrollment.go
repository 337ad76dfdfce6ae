package courseController

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"
	courseValidator "learnhub/validators/course"
)

var (
	errAlreadyEnrolled = errors.New("already enrolled")
	errSlotFull        = errors.New("slot full")
)

// EnrollInCourse books a seat for the caller. The uniqueness check, seat
// reservation, counter updates, payment record and notification are one
// transaction: either everything commits or nothing does. Replayed checkout
// success redirects fail the uniqueness check and get a 409.
func (ctrl *Controller) EnrollInCourse(c *fiber.Ctx) error {
	identity, ok := c.Locals("identity").(middleware.Identity)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollment").(*courseValidator.EnrollmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := ctrl.db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	// The slot must belong to the requested course
	var slot models.CourseSlot
	if err := ctrl.db.Where("id = ? AND course_id = ? AND is_deleted = ?", reqData.SlotID, course.ID, false).First(&slot).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Slot not found", nil)
	}

	if !slot.Available || slot.EnrolledStudents >= slot.MaxStudents {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slot is not available", nil)
	}

	var enrollment models.Enrollment
	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Enrollment
		err := tx.Where("user_id = ? AND course_id = ? AND status <> ? AND is_deleted = ?",
			identity.UserID, course.ID, "cancelled", false).First(&existing).Error
		if err == nil {
			return errAlreadyEnrolled
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Conditional seat reservation: the guard runs in the database, so
		// two requests racing for the last seat cannot both succeed.
		res := tx.Model(&models.CourseSlot{}).
			Where("id = ? AND enrolled_students < max_students", slot.ID).
			Updates(map[string]interface{}{
				"enrolled_students": gorm.Expr("enrolled_students + 1"),
				"available":         gorm.Expr("enrolled_students + 1 < max_students"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errSlotFull
		}

		enrollment = models.Enrollment{
			UserID:   identity.UserID,
			CourseID: course.ID,
			SlotID:   slot.ID,
			Status:   "active",
			Progress: 0,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Course{}).
			Where("id = ?", course.ID).
			Update("students_count", gorm.Expr("students_count + 1")).Error; err != nil {
			return err
		}

		payment := models.Transaction{
			UserID:        identity.UserID,
			CourseID:      course.ID,
			Amount:        course.Price,
			Status:        "completed",
			PaymentMethod: "card",
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		notification := models.Notification{
			Type:    "new_enrollment",
			Message: fmt.Sprintf("New enrollment: %s - $%.2f", course.Title, course.Price),
		}
		return tx.Create(&notification).Error
	})

	switch {
	case errors.Is(err, errAlreadyEnrolled):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course", nil)
	case errors.Is(err, errSlotFull):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slot is not available", nil)
	case err != nil:
		log.Printf("Enrollment failed for user %d in course %d: %v", identity.UserID, course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course", nil)
	}

	go utils.SendEnrollmentEmail(identity.Email, identity.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrollments lists the caller's enrollments with denormalized course and
// slot display fields, newest first
func (ctrl *Controller) GetEnrollments(c *fiber.Ctx) error {
	identity, ok := c.Locals("identity").(middleware.Identity)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	if err := ctrl.db.
		Where("user_id = ? AND is_deleted = ?", identity.UserID, false).
		Preload("Course").
		Preload("Slot").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments for user %d: %v", identity.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments", nil)
	}

	result := make([]fiber.Map, len(enrollments))
	for i, enrollment := range enrollments {
		result[i] = fiber.Map{
			"id":              enrollment.ID,
			"course_id":       enrollment.CourseID,
			"slot_id":         enrollment.SlotID,
			"status":          enrollment.Status,
			"progress":        enrollment.Progress,
			"course_title":    enrollment.Course.Title,
			"instructor":      enrollment.Course.Instructor,
			"next_class_date": enrollment.Slot.Date,
			"next_class_time": enrollment.Slot.Time,
			"enrolled_at":     enrollment.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}
