package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsulistia/kelasku/handlers"
	"github.com/wsulistia/kelasku/middleware"
)

func AttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/classes/:classId/attendance", middleware.Protected(), handlers.RecordAttendance)
	api.Get("/classes/:classId/attendance", middleware.Protected(), handlers.ListRecentAttendance)
}
