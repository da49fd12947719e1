package routes

import (
	"github.com/gofiber/fiber/v2"

	"sprintdeck/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	// Setup health and root routes
	SetupHealthRoutes(app)

	// API version group
	api := app.Group("/api/v1")

	// Setup all route groups
	SetupUserRoutes(api, h, jwtSecret)
	SetupAuthRoutes(api, h, jwtSecret)
	SetupTaskRoutes(api, h, jwtSecret)
	SetupSprintRoutes(api, h, jwtSecret)
}
