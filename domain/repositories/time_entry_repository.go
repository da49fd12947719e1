package repositories

import (
	"context"

	"github.com/google/uuid"

	"sprintdeck/domain/models"
)

type TimeEntryRepository interface {
	Create(ctx context.Context, entry *models.TimeEntry) error
	GetByID(ctx context.Context, id, taskID, userID uuid.UUID) (*models.TimeEntry, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*models.TimeEntry, error)
	Update(ctx context.Context, entry *models.TimeEntry) error
	Delete(ctx context.Context, id, taskID, userID uuid.UUID) error
}
