package repositories

import (
	"context"

	"github.com/google/uuid"

	"sprintdeck/domain/models"
)

// NoteRepository matches child rows by id, parent task and owner together;
// a mismatch on any of the three reads as not found.
type NoteRepository interface {
	Create(ctx context.Context, note *models.TaskNote) error
	GetByID(ctx context.Context, id, taskID, userID uuid.UUID) (*models.TaskNote, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*models.TaskNote, error)
	Update(ctx context.Context, note *models.TaskNote) error
	Delete(ctx context.Context, id, taskID, userID uuid.UUID) error
}
