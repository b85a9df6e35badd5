package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// The signed-in identity travels in the JWT that middleware.Protected
// parked on the request context. Which class or test the user is looking at
// arrives as a path parameter on every call, so handlers never keep
// per-user state between requests.

func currentClaims(c *fiber.Ctx) jwt.MapClaims {
	token := c.Locals("user").(*jwt.Token)
	return token.Claims.(jwt.MapClaims)
}

func currentUserID(c *fiber.Ctx) uuid.UUID {
	id, _ := uuid.Parse(currentClaims(c)["user_id"].(string))
	return id
}

func currentDisplayName(c *fiber.Ctx) string {
	name, _ := currentClaims(c)["display_name"].(string)
	return name
}
