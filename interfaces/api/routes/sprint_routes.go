package routes

import (
	"github.com/gofiber/fiber/v2"

	"sprintdeck/interfaces/api/handlers"
	"sprintdeck/interfaces/api/middleware"
)

func SetupSprintRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	sprints := api.Group("/sprints")
	sprints.Use(middleware.Protected(jwtSecret))

	// active is registered before :id so the literal wins
	sprints.Get("/active", h.SprintHandler.GetActiveSprint)

	sprints.Post("/", h.SprintHandler.CreateSprint)
	sprints.Get("/", h.SprintHandler.GetSprints)
	sprints.Get("/:id", h.SprintHandler.GetSprint)
	sprints.Get("/:id/metrics", h.SprintHandler.GetSprintMetrics)
	sprints.Patch("/:id", h.SprintHandler.UpdateSprint)
	sprints.Patch("/:id/activate", h.SprintHandler.ActivateSprint)
	sprints.Delete("/:id", h.SprintHandler.DeleteSprint)
}
