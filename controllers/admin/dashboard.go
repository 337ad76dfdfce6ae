package adminController

import (
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub/middleware"
	"learnhub/models"
)

type Controller struct {
	db *gorm.DB
}

func NewController(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// GetStats returns the back-office dashboard counters
func (ctrl *Controller) GetStats(c *fiber.Ctx) error {
	var totalCourses int64
	if err := ctrl.db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses).Error; err != nil {
		log.Printf("Error counting courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats", nil)
	}

	var totalStudents int64
	if err := ctrl.db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "student", false).Count(&totalStudents).Error; err != nil {
		log.Printf("Error counting students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats", nil)
	}

	var totalRevenue float64
	if err := ctrl.db.Model(&models.Transaction{}).
		Where("status = ? AND is_deleted = ?", "completed", false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		log.Printf("Error summing revenue: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats", nil)
	}

	var totalEnrollments int64
	if err := ctrl.db.Model(&models.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments).Error; err != nil {
		log.Printf("Error counting enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats", nil)
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	var recentEnrollments int64
	if err := ctrl.db.Model(&models.Enrollment{}).
		Where("created_at >= ? AND is_deleted = ?", thirtyDaysAgo, false).
		Count(&recentEnrollments).Error; err != nil {
		log.Printf("Error counting recent enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats", nil)
	}

	growthPercentage := 0
	if totalEnrollments > 0 {
		growthPercentage = int(math.Round(float64(recentEnrollments) / float64(totalEnrollments) * 100))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"totalCourses":     totalCourses,
		"totalStudents":    totalStudents,
		"totalRevenue":     totalRevenue,
		"totalEnrollments": totalEnrollments,
		"growthPercentage": growthPercentage,
	})
}

// GetStudents lists registered students, newest first
func (ctrl *Controller) GetStudents(c *fiber.Ctx) error {
	var students []models.User
	if err := ctrl.db.
		Where("role = ? AND is_deleted = ?", "student", false).
		Order("created_at desc").
		Find(&students).Error; err != nil {
		log.Printf("Error fetching students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students", nil)
	}

	result := make([]fiber.Map, len(students))
	for i, student := range students {
		result[i] = fiber.Map{
			"id":     student.ID,
			"name":   student.Name,
			"email":  student.Email,
			"joined": student.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", result)
}

// GetTransactions lists payments newest first with the course title attached
func (ctrl *Controller) GetTransactions(c *fiber.Ctx) error {
	var transactions []models.Transaction
	if err := ctrl.db.
		Where("is_deleted = ?", false).
		Preload("Course").
		Order("created_at desc").
		Find(&transactions).Error; err != nil {
		log.Printf("Error fetching transactions: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions", nil)
	}

	result := make([]fiber.Map, len(transactions))
	for i, transaction := range transactions {
		courseTitle := transaction.Course.Title
		if courseTitle == "" {
			courseTitle = "Unknown Course"
		}
		result[i] = fiber.Map{
			"id":             transaction.ID,
			"user_id":        transaction.UserID,
			"course_id":      transaction.CourseID,
			"course_title":   courseTitle,
			"amount":         transaction.Amount,
			"status":         transaction.Status,
			"payment_method": transaction.PaymentMethod,
			"date":           transaction.CreatedAt,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched successfully!", result)
}
