package repositories

import (
	"context"

	"github.com/google/uuid"

	"sprintdeck/domain/models"
)

type SprintRepository interface {
	Create(ctx context.Context, sprint *models.Sprint) error
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Sprint, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Sprint, error)
	Update(ctx context.Context, sprint *models.Sprint) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	GetActive(ctx context.Context, userID uuid.UUID) (*models.Sprint, error)

	// Activate completes the user's currently ACTIVE sprints and marks the
	// target ACTIVE, both inside one transaction so a crash or a concurrent
	// call can never leave zero or two active sprints.
	Activate(ctx context.Context, id, userID uuid.UUID) error
}
