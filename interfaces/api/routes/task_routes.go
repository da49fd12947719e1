package routes

import (
	"github.com/gofiber/fiber/v2"

	"sprintdeck/interfaces/api/handlers"
	"sprintdeck/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers, jwtSecret string) {
	tasks := api.Group("/tasks")
	tasks.Use(middleware.Protected(jwtSecret))

	// daily-report is registered before :id so the literal wins
	tasks.Get("/daily-report", h.TaskHandler.GetDailyReport)

	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/", h.TaskHandler.GetTasks)
	tasks.Put("/:id", h.TaskHandler.UpdateTask)
	tasks.Put("/:id/toggle", h.TaskHandler.ToggleTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
	tasks.Get("/:id/details", h.TaskHandler.GetTaskDetails)

	tasks.Post("/:id/notes", h.TaskHandler.CreateNote)
	tasks.Get("/:id/notes", h.TaskHandler.GetNotes)
	tasks.Put("/:id/notes/:noteId", h.TaskHandler.UpdateNote)
	tasks.Delete("/:id/notes/:noteId", h.TaskHandler.DeleteNote)

	tasks.Post("/:id/time-entries", h.TaskHandler.CreateTimeEntry)
	tasks.Get("/:id/time-entries", h.TaskHandler.GetTimeEntries)
	tasks.Put("/:id/time-entries/:entryId", h.TaskHandler.UpdateTimeEntry)
	tasks.Delete("/:id/time-entries/:entryId", h.TaskHandler.DeleteTimeEntry)
}
