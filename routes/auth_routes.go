package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsulistia/kelasku/handlers"
	"github.com/wsulistia/kelasku/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login", handlers.LoginUser)

	api.Get("/me", middleware.Protected(), handlers.GetMe)
}
