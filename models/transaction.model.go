package models

import (
	"gorm.io/gorm"
)

// Transaction records a payment for an enrollment
type Transaction struct {
	gorm.Model
	UserID        uint    `json:"user_id" gorm:"index;not null"`
	CourseID      uint    `json:"course_id" gorm:"index;not null"`
	Amount        float64 `json:"amount" gorm:"not null"`
	Status        string  `json:"status" gorm:"default:'completed'"` // pending, completed, failed, refunded
	PaymentMethod string  `json:"payment_method"`
	Course        Course  `json:"-" gorm:"foreignKey:CourseID"`
	IsDeleted     bool    `json:"-" gorm:"default:false"`
}
