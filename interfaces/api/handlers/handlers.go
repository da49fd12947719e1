package handlers

import (
	"sprintdeck/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	UserService   services.UserService
	TaskService   services.TaskService
	SprintService services.SprintService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	UserHandler   *UserHandler
	TaskHandler   *TaskHandler
	SprintHandler *SprintHandler
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		UserHandler:   NewUserHandler(s.UserService),
		TaskHandler:   NewTaskHandler(s.TaskService),
		SprintHandler: NewSprintHandler(s.SprintService),
	}
}
