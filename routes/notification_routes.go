package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsulistia/kelasku/handlers"
	"github.com/wsulistia/kelasku/middleware"
)

func NotificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/classes/:classId/notifications", middleware.Protected(), middleware.TeacherRequired(), handlers.BroadcastNotification)
	api.Get("/classes/:classId/notifications", middleware.Protected(), handlers.ListNotifications)
}
