package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"learnhub/config"
)

// Identity is the verified (id, email, name, role) tuple derived from a
// request's bearer token.
type Identity struct {
	UserID uint
	Email  string
	Name   string
	Role   string
}

// GenerateJWT generates a JWT token for the user
func GenerateJWT(userID uint, name, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"name":   name,
		"email":  email,
		"role":   role,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(7 * 24 * time.Hour).Unix(), // expiry 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request.
// On success the verified identity is stored in the request locals; the role
// always comes from the signed claims, never from the request body.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	// Fails closed: any malformed, tampered or expired token ends here
	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid or expired token", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	userID, ok := claims["userId"].(float64) // JWT numbers decode as float64
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token payload", nil)
	}

	identity := Identity{UserID: uint(userID)}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		identity.Role = role
	}

	c.Locals("userId", identity.UserID)
	c.Locals("identity", identity)

	return c.Next()
}

// AdminOnly allows the request through only when the verified token carries
// the admin role. Must run after JWTMiddleware.
func AdminOnly(c *fiber.Ctx) error {
	identity, ok := c.Locals("identity").(Identity)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	if identity.Role != "admin" {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}
	return c.Next()
}

// JsonResponse writes the uniform response envelope. Failures carry the
// message under "error", successes under "message".
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	body := fiber.Map{"success": success}
	if success {
		body["message"] = message
		if data != nil {
			body["data"] = data
		}
	} else {
		body["error"] = message
		if data != nil {
			body["data"] = data
		}
	}
	return c.Status(statusCode).JSON(body)
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
