package main

import (
	"encoding/json"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"learnhub/config"
	"learnhub/database"
	"learnhub/models"
)

func jsonArray(values []string) datatypes.JSON {
	data, _ := json.Marshal(values)
	return datatypes.JSON(data)
}

func main() {
	config.LoadConfig()

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	seedAdmin(db)
	seedCourses(db)

	log.Println("Sample data initialization completed!")
}

func seedAdmin(db *gorm.DB) {
	var existing models.User
	if err := db.Where("email = ?", "admin@learnhub.io").First(&existing).Error; err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), config.AppConfig.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{
		Name:     "Admin User",
		Email:    "admin@learnhub.io",
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Println("Admin user created: admin@learnhub.io / admin123")
}

func seedCourses(db *gorm.DB) {
	courses := []models.Course{
		{
			Title:           "Full Stack Web Development",
			Description:     "Master modern web development with React, Node.js, and MongoDB.",
			FullDescription: "This comprehensive course will take you from beginner to advanced full-stack developer covering the most in-demand technologies.",
			Instructor:      "John Smith",
			Duration:        "12 weeks",
			Price:           299,
			Category:        "Programming",
			Level:           "Intermediate",
			Status:          "active",
			Curriculum: jsonArray([]string{
				"HTML5 & CSS3 Fundamentals",
				"JavaScript ES6+ Features",
				"React.js & Component Architecture",
				"Node.js & Express.js",
				"Database Design",
				"Authentication & Security",
			}),
			Requirements: jsonArray([]string{
				"Basic understanding of HTML and CSS",
				"Familiarity with programming concepts",
			}),
			LearningOutcomes: jsonArray([]string{
				"Build full-stack web applications",
				"Create RESTful APIs",
				"Design and implement databases",
			}),
		},
		{
			Title:           "Data Science & Machine Learning",
			Description:     "Learn Python, pandas, scikit-learn, and deep learning.",
			FullDescription: "Dive deep into data science and machine learning, from data analysis and visualization to building sophisticated models.",
			Instructor:      "Sarah Johnson",
			Duration:        "16 weeks",
			Price:           399,
			Category:        "Data Science",
			Level:           "Advanced",
			Status:          "active",
			Curriculum: jsonArray([]string{
				"Python for Data Science",
				"NumPy & Pandas",
				"Data Visualization",
				"Machine Learning Fundamentals",
				"Deep Learning with TensorFlow",
			}),
			Requirements: jsonArray([]string{
				"Basic Python programming knowledge",
				"Understanding of mathematics and statistics",
			}),
			LearningOutcomes: jsonArray([]string{
				"Analyze and visualize complex datasets",
				"Build machine learning models",
				"Create predictive models",
			}),
		},
		{
			Title:           "Digital Marketing Mastery",
			Description:     "Complete guide to digital marketing including SEO, social media and analytics.",
			FullDescription: "Master the art and science of digital marketing: effective campaigns, search engine optimization and measurement.",
			Instructor:      "Michael Brown",
			Duration:        "8 weeks",
			Price:           199,
			Category:        "Marketing",
			Level:           "Beginner",
			Status:          "active",
			Curriculum: jsonArray([]string{
				"Digital Marketing Fundamentals",
				"Search Engine Optimization (SEO)",
				"Social Media Marketing",
				"Email Marketing",
				"Analytics and Measurement",
			}),
			Requirements: jsonArray([]string{
				"Basic computer skills",
				"Understanding of social media platforms",
			}),
			LearningOutcomes: jsonArray([]string{
				"Create effective marketing campaigns",
				"Optimize websites for search engines",
				"Measure and analyze marketing performance",
			}),
		},
	}

	for _, course := range courses {
		var existing models.Course
		if err := db.Where("title = ?", course.Title).First(&existing).Error; err == nil {
			log.Printf("Course already exists: %s", course.Title)
			continue
		}

		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to create course %q: %v", course.Title, err)
		}

		slots := []models.CourseSlot{
			{CourseID: course.ID, Date: "2026-09-15", Time: "10:00 AM - 12:00 PM", MaxStudents: 20, Available: true},
			{CourseID: course.ID, Date: "2026-09-22", Time: "2:00 PM - 4:00 PM", MaxStudents: 20, Available: true},
			{CourseID: course.ID, Date: "2026-09-29", Time: "10:00 AM - 12:00 PM", MaxStudents: 20, Available: true},
		}
		if err := db.Create(&slots).Error; err != nil {
			log.Fatalf("Failed to create slots for %q: %v", course.Title, err)
		}

		log.Printf("Course created: %s", course.Title)
	}
}
