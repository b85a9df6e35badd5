package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wsulistia/kelasku/database"
	"github.com/wsulistia/kelasku/models"
	"github.com/wsulistia/kelasku/services"
)

type BroadcastRequest struct {
	Message string `json:"message" validate:"required"`
}

func BroadcastNotification(c *fiber.Ctx) error {
	var class models.Class
	if err := findByParam(c, &class, "classId"); err != nil {
		return lookupError(c, err, "Class not found")
	}

	var req BroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message cannot be empty"})
	}

	notification, err := services.PostClassNotification(database.DB, class.ID, message)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.Status(fiber.StatusCreated).JSON(notification)
}

// ListNotifications is a plain read; polling it any number of times leaves
// the feed untouched. There is no per-user read state to update.
func ListNotifications(c *fiber.Ctx) error {
	var class models.Class
	if err := findByParam(c, &class, "classId"); err != nil {
		return lookupError(c, err, "Class not found")
	}

	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}

	var notifications []models.Notification
	err := database.DB.Where("class_id = ?", class.ID).
		Order("created_at desc").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.JSON(notifications)
}
