package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title          string     `json:"title" validate:"required,min=1"`
	Description    string     `json:"description" validate:"required,min=1"`
	Points         *int       `json:"points" validate:"omitempty,min=0,max=13"`
	TaskLink       *string    `json:"taskLink" validate:"omitempty,max=2048"`
	Priority       *string    `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	SprintID       *uuid.UUID `json:"sprintId"`
	EstimatedHours *float64   `json:"estimatedHours" validate:"omitempty,min=0"`
}

// UpdateTaskRequest carries only the fields the caller supplied; nil means
// "leave unchanged". Completed drives the server-side completedAt derivation.
type UpdateTaskRequest struct {
	Title          *string    `json:"title" validate:"omitempty,min=1"`
	Description    *string    `json:"description" validate:"omitempty,min=1"`
	Points         *int       `json:"points" validate:"omitempty,min=0,max=13"`
	TaskLink       *string    `json:"taskLink" validate:"omitempty,max=2048"`
	Priority       *string    `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	SprintID       *uuid.UUID `json:"sprintId"`
	Completed      *bool      `json:"completed"`
	EstimatedHours *float64   `json:"estimatedHours" validate:"omitempty,min=0"`
}

type TaskResponse struct {
	ID             uuid.UUID           `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Completed      bool                `json:"completed"`
	CompletedAt    *time.Time          `json:"completedAt,omitempty"`
	Points         int                 `json:"points"`
	TaskLink       *string             `json:"taskLink,omitempty"`
	Priority       string              `json:"priority"`
	EstimatedHours *float64            `json:"estimatedHours,omitempty"`
	TimeSpent      float64             `json:"timeSpent"`
	UserID         uuid.UUID           `json:"userId"`
	SprintID       *uuid.UUID          `json:"sprintId,omitempty"`
	Sprint         *SprintSummary      `json:"sprint,omitempty"`
	Notes          []TaskNoteResponse  `json:"notes,omitempty"`
	TimeEntries    []TimeEntryResponse `json:"timeEntries,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Meta  PaginationMeta `json:"meta"`
}
