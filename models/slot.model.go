package models

import (
	"gorm.io/gorm"
)

// CourseSlot is a bookable date/time session of a course.
// Invariant: 0 <= EnrolledStudents <= MaxStudents and
// Available == (EnrolledStudents < MaxStudents). Seat increments go through
// a conditional UPDATE, never a read-modify-write.
type CourseSlot struct {
	gorm.Model
	CourseID         uint   `json:"course_id" gorm:"index;not null"`
	Date             string `json:"date" gorm:"not null"` // YYYY-MM-DD
	Time             string `json:"time" gorm:"not null"`
	MaxStudents      int    `json:"max_students" gorm:"default:20"`
	EnrolledStudents int    `json:"enrolled_students" gorm:"default:0"`
	Available        bool   `json:"available" gorm:"default:true"`
	IsDeleted        bool   `json:"-" gorm:"default:false"`
}
