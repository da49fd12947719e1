package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sprintdeck/domain/models"
	"sprintdeck/domain/repositories"
)

type SprintRepositoryImpl struct {
	db *gorm.DB
}

func NewSprintRepository(db *gorm.DB) repositories.SprintRepository {
	return &SprintRepositoryImpl{db: db}
}

func (r *SprintRepositoryImpl) Create(ctx context.Context, sprint *models.Sprint) error {
	return r.db.WithContext(ctx).Create(sprint).Error
}

func (r *SprintRepositoryImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Sprint, error) {
	var sprint models.Sprint
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&sprint).Error
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

func (r *SprintRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Sprint, error) {
	var sprints []*models.Sprint
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sprints).Error
	return sprints, err
}

func (r *SprintRepositoryImpl) Update(ctx context.Context, sprint *models.Sprint) error {
	res := r.db.WithContext(ctx).Model(&models.Sprint{}).
		Where("id = ? AND user_id = ?", sprint.ID, sprint.UserID).
		Select("name", "description", "start_date", "end_date", "status", "updated_at").
		Updates(sprint)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the sprint and detaches its tasks; tasks themselves survive.
func (r *SprintRepositoryImpl) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Sprint{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.Task{}).
			Where("sprint_id = ?", id).
			Update("sprint_id", nil).Error
	})
}

func (r *SprintRepositoryImpl) GetActive(ctx context.Context, userID uuid.UUID) (*models.Sprint, error) {
	var sprint models.Sprint
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("user_id = ? AND status = ?", userID, models.SprintStatusActive).
		First(&sprint).Error
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

// Activate completes any currently ACTIVE sprint before marking the target
// ACTIVE. Both statements run in one transaction: the single-active invariant
// must hold even across a crash or a concurrent activate call.
func (r *SprintRepositoryImpl) Activate(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Sprint{}).
			Where("user_id = ? AND status = ?", userID, models.SprintStatusActive).
			Update("status", models.SprintStatusCompleted).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Sprint{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("status", models.SprintStatusActive)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// rolls back the deactivation above
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
