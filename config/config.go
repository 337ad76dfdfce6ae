package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port       string
	JWTKey     string
	BcryptCost int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	CheckoutApiURL string // Payment provider base URL
	CheckoutApiKey string // Payment provider secret key

	SendgridApiKey string
	EmailSender    string

	FrontendURL string // Fallback origin for checkout redirect URLs
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:       getEnv("PORT", "3000"),
		JWTKey:     getEnv("JWT_SECRET_KEY", "defaultSecret"),
		BcryptCost: getEnvInt("BCRYPT_COST", 12),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "learnhub"),
		DBPort:     getEnv("DB_PORT", "5432"),

		CheckoutApiURL: getEnv("CHECKOUT_API_URL", "https://api.checkout.example.com/v1"),
		CheckoutApiKey: getEnv("CHECKOUT_API_KEY", ""),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "noreply@learnhub.io"),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.CheckoutApiKey == "" {
		log.Println("Warning: CHECKOUT_API_KEY is not set. Checkout sessions will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
