package routes

import (
	"github.com/gofiber/fiber/v2"

	"sprintdeck/interfaces/api/handlers"
	"sprintdeck/interfaces/api/middleware"
)

// SetupUserRoutes registers the user directory. Registration and login live
// here; the lookup endpoints serve safe profiles without authentication, but
// a valid bearer token still attributes the request in the logs.
func SetupUserRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	users := api.Group("/user")
	users.Use(middleware.Optional(jwtSecret))
	users.Post("/", h.UserHandler.Register)
	users.Post("/login", h.UserHandler.Login)
	users.Get("/", h.UserHandler.ListUsers)
	users.Get("/:id", h.UserHandler.GetUser)
}
