package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wsulistia/kelasku/handlers"
	"github.com/wsulistia/kelasku/middleware"
)

func TestRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/classes/:classId/tests", middleware.Protected(), handlers.ListTests)
	api.Post("/classes/:classId/tests", middleware.Protected(), middleware.TeacherRequired(), handlers.CreateTest)

	api.Get("/tests/:testId/questions", middleware.Protected(), middleware.TeacherRequired(), handlers.ListQuestions)
	api.Post("/tests/:testId/questions", middleware.Protected(), middleware.TeacherRequired(), handlers.AddQuestion)

	api.Post("/tests/:testId/start", middleware.Protected(), handlers.StartTest)
	api.Post("/tests/:testId/submit", middleware.Protected(), handlers.SubmitAttempt)
	api.Get("/tests/:testId/attempts", middleware.Protected(), middleware.TeacherRequired(), handlers.ListTestAttempts)

	api.Get("/me/attempts", middleware.Protected(), handlers.ListMyAttempts)
}
