package dto

import (
	"time"

	"github.com/google/uuid"
)

// Daily report shapes. "Sprint" fields carry the sprint name, empty when the
// task is not assigned to one.

type DailyReportSummary struct {
	CompletedTasks  int `json:"completedTasks"`
	CompletedPoints int `json:"completedPoints"`
	PendingTasks    int `json:"pendingTasks"`
	PendingPoints   int `json:"pendingPoints"`
}

type ReportCompletedTask struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Points      int       `json:"points"`
	CompletedAt time.Time `json:"completedAt"`
	Sprint      string    `json:"sprint"`
	TaskLink    *string   `json:"taskLink,omitempty"`
}

type ReportPendingTask struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Points   int       `json:"points"`
	Priority string    `json:"priority"`
	Sprint   string    `json:"sprint"`
	TaskLink *string   `json:"taskLink,omitempty"`
}

type SprintProgress struct {
	TotalTasks      int     `json:"totalTasks"`
	CompletedTasks  int     `json:"completedTasks"`
	TotalPoints     int     `json:"totalPoints"`
	CompletedPoints int     `json:"completedPoints"`
	CompletionRate  float64 `json:"completionRate"`
}

type DailyReportResponse struct {
	Date           string                `json:"date"`
	Summary        DailyReportSummary    `json:"summary"`
	CompletedTasks []ReportCompletedTask `json:"completedTasks"`
	PendingTasks   []ReportPendingTask   `json:"pendingTasks"`
	SprintProgress SprintProgress        `json:"sprintProgress"`
}
