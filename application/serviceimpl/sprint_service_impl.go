package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sprintdeck/domain/dto"
	"sprintdeck/domain/models"
	"sprintdeck/domain/repositories"
	"sprintdeck/domain/services"
	"sprintdeck/pkg/logger"
)

type SprintServiceImpl struct {
	sprintRepo repositories.SprintRepository
}

func NewSprintService(sprintRepo repositories.SprintRepository) services.SprintService {
	return &SprintServiceImpl{sprintRepo: sprintRepo}
}

func (s *SprintServiceImpl) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateSprintRequest) (*models.Sprint, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sprint := &models.Sprint{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      models.SprintStatusPlanning,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Status != nil {
		sprint.Status = *req.Status
	}

	if err := s.sprintRepo.Create(ctx, sprint); err != nil {
		logger.ErrorContext(ctx, "Failed to create sprint", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Sprint created", "sprint_id", sprint.ID, "user_id", userID)

	return s.sprintRepo.GetByID(ctx, sprint.ID, userID)
}

func (s *SprintServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]*models.Sprint, error) {
	return s.sprintRepo.ListByUser(ctx, userID)
}

func (s *SprintServiceImpl) GetOne(ctx context.Context, id, userID uuid.UUID) (*models.Sprint, error) {
	sprint, err := s.sprintRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, services.ErrSprintNotFound
	}
	return sprint, nil
}

func (s *SprintServiceImpl) Update(ctx context.Context, id, userID uuid.UUID, req *dto.UpdateSprintRequest) (*models.Sprint, error) {
	sprint, err := s.GetOne(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sprint.Name = *req.Name
	}
	if req.Description != nil {
		sprint.Description = *req.Description
	}
	if req.StartDate != nil {
		startDate, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		sprint.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		sprint.EndDate = endDate
	}
	if req.Status != nil {
		sprint.Status = *req.Status
	}
	sprint.UpdatedAt = time.Now()

	if err := s.sprintRepo.Update(ctx, sprint); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrSprintNotFound
		}
		logger.ErrorContext(ctx, "Failed to update sprint", "sprint_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Sprint updated", "sprint_id", id, "user_id", userID)

	return s.sprintRepo.GetByID(ctx, id, userID)
}

func (s *SprintServiceImpl) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.sprintRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return services.ErrSprintNotFound
		}
		logger.ErrorContext(ctx, "Failed to delete sprint", "sprint_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Sprint deleted", "sprint_id", id, "user_id", userID)
	return nil
}

func (s *SprintServiceImpl) GetActive(ctx context.Context, userID uuid.UUID) (*models.Sprint, error) {
	sprint, err := s.sprintRepo.GetActive(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sprint, nil
}

func (s *SprintServiceImpl) Activate(ctx context.Context, id, userID uuid.UUID) (*models.Sprint, error) {
	if err := s.sprintRepo.Activate(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrSprintNotFound
		}
		logger.ErrorContext(ctx, "Failed to activate sprint", "sprint_id", id, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Sprint activated", "sprint_id", id, "user_id", userID)

	return s.sprintRepo.GetByID(ctx, id, userID)
}

func (s *SprintServiceImpl) GetMetrics(ctx context.Context, id, userID uuid.UUID) (*dto.SprintMetricsResponse, error) {
	sprint, err := s.GetOne(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	metrics := dto.SprintMetrics{
		TotalTasks: len(sprint.Tasks),
	}
	for _, task := range sprint.Tasks {
		metrics.TotalPoints += task.Points
		if task.Completed {
			metrics.CompletedTasks++
			metrics.CompletedPoints += task.Points
		}
	}
	metrics.PendingTasks = metrics.TotalTasks - metrics.CompletedTasks
	metrics.PendingPoints = metrics.TotalPoints - metrics.CompletedPoints
	if metrics.TotalTasks > 0 {
		metrics.CompletionRate = float64(metrics.CompletedTasks) / float64(metrics.TotalTasks) * 100
	}
	if metrics.TotalPoints > 0 {
		metrics.PointsCompletionRate = float64(metrics.CompletedPoints) / float64(metrics.TotalPoints) * 100
	}

	return &dto.SprintMetricsResponse{
		Sprint:  *dto.SprintToSprintResponse(sprint),
		Metrics: metrics,
	}, nil
}

// parseDate accepts either a plain date (2006-01-02) or a full RFC3339
// timestamp, which is what the SPA sends.
func parseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, services.ErrInvalidDate
	}
	return parsed, nil
}
