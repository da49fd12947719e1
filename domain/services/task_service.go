package services

import (
	"context"

	"github.com/google/uuid"

	"sprintdeck/domain/dto"
	"sprintdeck/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, userID uuid.UUID, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTasks(ctx context.Context, userID uuid.UUID, page, limit int) ([]*models.Task, int64, error)
	UpdateTask(ctx context.Context, taskID, userID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	ToggleTask(ctx context.Context, taskID, userID uuid.UUID) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error
	GetTaskWithDetails(ctx context.Context, taskID, userID uuid.UUID) (*models.Task, error)

	// GetDailyReport aggregates the caller's day: date is YYYY-MM-DD, empty
	// means today.
	GetDailyReport(ctx context.Context, userID uuid.UUID, date string) (*dto.DailyReportResponse, error)

	CreateNote(ctx context.Context, taskID, userID uuid.UUID, req *dto.CreateNoteRequest) (*models.TaskNote, error)
	GetNotes(ctx context.Context, taskID, userID uuid.UUID) ([]*models.TaskNote, error)
	UpdateNote(ctx context.Context, noteID, taskID, userID uuid.UUID, req *dto.UpdateNoteRequest) (*models.TaskNote, error)
	DeleteNote(ctx context.Context, noteID, taskID, userID uuid.UUID) error

	CreateTimeEntry(ctx context.Context, taskID, userID uuid.UUID, req *dto.CreateTimeEntryRequest) (*models.TimeEntry, error)
	GetTimeEntries(ctx context.Context, taskID, userID uuid.UUID) ([]*models.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, entryID, taskID, userID uuid.UUID, req *dto.UpdateTimeEntryRequest) (*models.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, entryID, taskID, userID uuid.UUID) error
}
