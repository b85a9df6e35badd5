package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsulistia/kelasku/handlers"
	"github.com/wsulistia/kelasku/middleware"
)

func ClassRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/classes", middleware.Protected(), handlers.ListClasses)
	api.Post("/classes", middleware.Protected(), middleware.TeacherRequired(), handlers.CreateClass)
	api.Post("/classes/:classId/enter", middleware.Protected(), handlers.EnterClass)
}
