package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsulistia/kelasku/handlers"
	"github.com/wsulistia/kelasku/middleware"
)

func MaterialRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/classes/:classId/materials", middleware.Protected(), handlers.ListMaterials)
	api.Post("/classes/:classId/materials", middleware.Protected(), middleware.TeacherRequired(), handlers.AddMaterial)

	api.Post("/materials/:materialId/open", middleware.Protected(), handlers.OpenMaterial)
}
