package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsulistia/kelasku/handlers"
	"github.com/wsulistia/kelasku/middleware"
)

func ForumRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/classes/:classId/posts", middleware.Protected(), handlers.PostToForum)
	api.Get("/classes/:classId/posts", middleware.Protected(), handlers.ListForumPosts)
}
