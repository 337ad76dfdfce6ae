package models

import (
	"gorm.io/gorm"
)

// Notification is an append-only admin-facing event. Only the Read flag is
// ever mutated after creation.
type Notification struct {
	gorm.Model
	Type    string `json:"type" gorm:"not null"` // new_registration, new_enrollment, slot_created
	Message string `json:"message" gorm:"not null"`
	Read    bool   `json:"read" gorm:"default:false"`
}
