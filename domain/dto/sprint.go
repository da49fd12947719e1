package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSprintRequest struct {
	Name        string  `json:"name" validate:"required,min=1"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate" validate:"required"`
	EndDate     string  `json:"endDate" validate:"required"`
	Status      *string `json:"status" validate:"omitempty,oneof=PLANNING ACTIVE COMPLETED CANCELLED"`
}

type UpdateSprintRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Status      *string `json:"status" validate:"omitempty,oneof=PLANNING ACTIVE COMPLETED CANCELLED"`
}

// SprintSummary is the joined view embedded in task responses.
type SprintSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// SprintTaskItem is the lightweight task projection used by the sprint list.
type SprintTaskItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	Points    int       `json:"points"`
	Priority  string    `json:"priority"`
}

type SprintTaskCount struct {
	Tasks int `json:"tasks"`
}

type SprintResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	StartDate   time.Time        `json:"startDate"`
	EndDate     time.Time        `json:"endDate"`
	Status      string           `json:"status"`
	UserID      uuid.UUID        `json:"userId"`
	Tasks       []TaskResponse   `json:"tasks"`
	Count       *SprintTaskCount `json:"_count,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// SprintListItem mirrors the list contract: lightweight tasks plus a count.
type SprintListItem struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	StartDate   time.Time        `json:"startDate"`
	EndDate     time.Time        `json:"endDate"`
	Status      string           `json:"status"`
	UserID      uuid.UUID        `json:"userId"`
	Tasks       []SprintTaskItem `json:"tasks"`
	Count       SprintTaskCount  `json:"_count"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type SprintMetrics struct {
	TotalTasks           int     `json:"totalTasks"`
	CompletedTasks       int     `json:"completedTasks"`
	PendingTasks         int     `json:"pendingTasks"`
	CompletionRate       float64 `json:"completionRate"`
	TotalPoints          int     `json:"totalPoints"`
	CompletedPoints      int     `json:"completedPoints"`
	PendingPoints        int     `json:"pendingPoints"`
	PointsCompletionRate float64 `json:"pointsCompletionRate"`
}

type SprintMetricsResponse struct {
	Sprint  SprintResponse `json:"sprint"`
	Metrics SprintMetrics  `json:"metrics"`
}
