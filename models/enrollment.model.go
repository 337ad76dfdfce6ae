package models

import (
	"gorm.io/gorm"
)

// Enrollment binds a student to a course and slot after successful payment.
// At most one non-cancelled enrollment may exist per (UserID, CourseID) pair.
type Enrollment struct {
	gorm.Model
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	CourseID  uint       `json:"course_id" gorm:"index;not null"`
	SlotID    uint       `json:"slot_id" gorm:"index;not null"`
	Status    string     `json:"status" gorm:"default:'active'"` // active, completed, cancelled
	Progress  float64    `json:"progress" gorm:"default:0"`      // Completion percentage (0-100)
	Course    Course     `json:"-" gorm:"foreignKey:CourseID"`
	Slot      CourseSlot `json:"-" gorm:"foreignKey:SlotID"`
	IsDeleted bool       `json:"-" gorm:"default:false"`
}
