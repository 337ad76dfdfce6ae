package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course represents a bookable course in the catalogue
type Course struct {
	gorm.Model
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description"`
	FullDescription  string         `json:"full_description"`
	Instructor       string         `json:"instructor"`
	Duration         string         `json:"duration"` // e.g. "8 weeks"
	Price            float64        `json:"price" gorm:"default:0"`
	Image            string         `json:"image"`
	Category         string         `json:"category" gorm:"index"`
	Level            string         `json:"level"`                               // Beginner, Intermediate, Advanced
	Status           string         `json:"status" gorm:"default:'draft';index"` // draft, active, archived
	StudentsCount    int64          `json:"students_count" gorm:"default:0"`
	Rating           float64        `json:"rating" gorm:"default:0"`
	Curriculum       datatypes.JSON `json:"curriculum"`
	Requirements     datatypes.JSON `json:"requirements"`
	LearningOutcomes datatypes.JSON `json:"learning_outcomes"`
	IsDeleted        bool           `json:"-" gorm:"default:false"`
}
