package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	config "github.com/wsulistia/kelasku/configs"
	"github.com/wsulistia/kelasku/database"
	"github.com/wsulistia/kelasku/routes"
	"github.com/wsulistia/kelasku/storage"
)

func main() {
	database.ConnectDB()
	database.Migrate()

	if err := storage.Init(); err != nil {
		log.Fatalf("🔥 Failed to initialize file storage: %v", err)
	}

	app := fiber.New(fiber.Config{
		Prefork:       false,
		AppName:       "Kelasku",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length, Authorization",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to Kelasku API",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Local uploads are served straight back; Cloudinary references are
	// absolute URLs and need no route.
	if local, ok := storage.Files.(*storage.LocalStore); ok {
		app.Static("/uploads", local.Dir)
	}

	routes.AuthRoutes(app)
	routes.ClassRoutes(app)
	routes.MaterialRoutes(app)
	routes.AttendanceRoutes(app)
	routes.ForumRoutes(app)
	routes.NotificationRoutes(app)
	routes.TestRoutes(app)

	port := config.ConfigDefault("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
