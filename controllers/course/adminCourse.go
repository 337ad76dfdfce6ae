package courseController

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"learnhub/middleware"
	"learnhub/models"
	courseValidator "learnhub/validators/course"
)

func jsonArray(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return datatypes.JSON(data)
}

// AdminCreateCourse creates a new course. New courses always start as drafts.
func (ctrl *Controller) AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	fullDescription := reqData.FullDescription
	if fullDescription == "" {
		fullDescription = reqData.Description
	}

	course := models.Course{
		Title:            reqData.Title,
		Description:      reqData.Description,
		FullDescription:  fullDescription,
		Instructor:       reqData.Instructor,
		Duration:         reqData.Duration,
		Price:            *reqData.Price,
		Image:            reqData.Image,
		Category:         reqData.Category,
		Level:            reqData.Level,
		Status:           "draft",
		Curriculum:       jsonArray(reqData.Curriculum),
		Requirements:     jsonArray(reqData.Requirements),
		LearningOutcomes: jsonArray(reqData.LearningOutcomes),
	}

	if err := ctrl.db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates only the provided fields
func (ctrl *Controller) AdminUpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*courseValidator.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Instructor != "" {
		course.Instructor = reqData.Instructor
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Status != "" {
		course.Status = reqData.Status
	}

	if err := ctrl.db.Save(&course).Error; err != nil {
		log.Printf("Error updating course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse soft deletes a course, its slots and cancels every
// enrollment referencing it, all in one transaction.
func (ctrl *Controller) AdminDeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	if err := ctrl.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
	}

	err := ctrl.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.CourseSlot{}).
			Where("course_id = ?", course.ID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Enrollment{}).
			Where("course_id = ? AND status <> ?", course.ID, "cancelled").
			Update("status", "cancelled").Error; err != nil {
			return err
		}
		return tx.Model(&course).Update("is_deleted", true).Error
	})
	if err != nil {
		log.Printf("Error deleting course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
