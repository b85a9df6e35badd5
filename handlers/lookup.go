package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wsulistia/kelasku/database"
)

// findByParam loads the row whose id arrives in the named path parameter.
// A malformed id reads the same as an absent row, so callers see one
// not-found shape for both.
func findByParam(c *fiber.Ctx, dest interface{}, param string) error {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return gorm.ErrRecordNotFound
	}
	return database.DB.First(dest, "id = ?", id).Error
}

// lookupError turns a failed lookup into the response: an absent row is
// the caller's 404, anything else means the store itself failed.
func lookupError(c *fiber.Ctx, err error, missing string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": missing})
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
}
