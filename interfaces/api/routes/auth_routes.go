package routes

import (
	"github.com/gofiber/fiber/v2"

	"sprintdeck/interfaces/api/handlers"
	"sprintdeck/interfaces/api/middleware"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	auth := api.Group("/auth")
	auth.Get("/me", middleware.Protected(jwtSecret), h.UserHandler.Me)
}
