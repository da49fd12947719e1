package services

import (
	"context"

	"github.com/google/uuid"

	"sprintdeck/domain/dto"
	"sprintdeck/domain/models"
)

type SprintService interface {
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSprintRequest) (*models.Sprint, error)
	List(ctx context.Context, userID uuid.UUID) ([]*models.Sprint, error)
	GetOne(ctx context.Context, id, userID uuid.UUID) (*models.Sprint, error)
	Update(ctx context.Context, id, userID uuid.UUID, req *dto.UpdateSprintRequest) (*models.Sprint, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// GetActive returns (nil, nil) when the user has no ACTIVE sprint.
	GetActive(ctx context.Context, userID uuid.UUID) (*models.Sprint, error)

	// Activate supersedes any currently ACTIVE sprint (it becomes COMPLETED)
	// and returns the newly activated one.
	Activate(ctx context.Context, id, userID uuid.UUID) (*models.Sprint, error)
	GetMetrics(ctx context.Context, id, userID uuid.UUID) (*dto.SprintMetricsResponse, error)
}
