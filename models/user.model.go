package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string `json:"name" gorm:"default:''"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"-" gorm:"not null"`
	Role      string `json:"role" gorm:"default:'student'"` // student, admin, instructor
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
