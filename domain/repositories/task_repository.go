package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sprintdeck/domain/models"
)

// TaskRepository scopes every lookup and mutation by the owning user.
// Mutations are single conditional statements; implementations return
// gorm.ErrRecordNotFound when no owned row was touched, so ownership
// failures are indistinguishable from absence.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Task, error)
	GetWithDetails(ctx context.Context, id, userID uuid.UUID) (*models.Task, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Task, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// RecalcTimeSpent rewrites the task's timeSpent from the sum of its time
	// entries in one statement (0 when no entries remain).
	RecalcTimeSpent(ctx context.Context, taskID uuid.UUID) error

	// ListCompletedBetween returns the user's tasks completed inside the
	// window, sprint preloaded, for the daily report.
	ListCompletedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.Task, error)
}
