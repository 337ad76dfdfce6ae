package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"learnhub/models"
)

// InitializeReminderScheduler sets up the daily class-reminder job
func InitializeReminderScheduler(db *gorm.DB) *cron.Cron {
	log.Println("[REMINDER-SCHEDULER] Initializing class reminder scheduler...")

	c := cron.New()

	// Run daily at 8 AM to remind students about next-day classes
	c.AddFunc("0 8 * * *", func() {
		log.Println("[REMINDER-SCHEDULER] Running daily class reminder check...")
		SendClassReminders(db)
	})

	c.Start()
	log.Println("[REMINDER-SCHEDULER] Class reminder scheduler started - runs daily at 8 AM")
	return c
}

// SendClassReminders emails every active enrollment whose slot is tomorrow
func SendClassReminders(db *gorm.DB) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var enrollments []models.Enrollment
	if err := db.
		Where("status = ? AND is_deleted = ?", "active", false).
		Preload("Course").
		Preload("Slot").
		Find(&enrollments).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching enrollments: %v", err)
		return
	}

	count := 0
	for _, enrollment := range enrollments {
		if enrollment.Slot.Date != tomorrow || enrollment.Slot.IsDeleted {
			continue
		}

		var user models.User
		if err := db.First(&user, enrollment.UserID).Error; err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error fetching user %d: %v", enrollment.UserID, err)
			continue
		}

		SendClassReminderEmail(user.Email, user.Name, enrollment.Course.Title, enrollment.Slot.Date, enrollment.Slot.Time)
		count++
	}

	log.Printf("[REMINDER-SCHEDULER] Sent %d class reminders", count)
}
