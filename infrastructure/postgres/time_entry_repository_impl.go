package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sprintdeck/domain/models"
	"sprintdeck/domain/repositories"
)

type TimeEntryRepositoryImpl struct {
	db *gorm.DB
}

func NewTimeEntryRepository(db *gorm.DB) repositories.TimeEntryRepository {
	return &TimeEntryRepositoryImpl{db: db}
}

func (r *TimeEntryRepositoryImpl) Create(ctx context.Context, entry *models.TimeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *TimeEntryRepositoryImpl) GetByID(ctx context.Context, id, taskID, userID uuid.UUID) (*models.TimeEntry, error) {
	var entry models.TimeEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ? AND user_id = ?", id, taskID, userID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *TimeEntryRepositoryImpl) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*models.TimeEntry, error) {
	var entries []*models.TimeEntry
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *TimeEntryRepositoryImpl) Update(ctx context.Context, entry *models.TimeEntry) error {
	res := r.db.WithContext(ctx).Model(&models.TimeEntry{}).
		Where("id = ? AND task_id = ? AND user_id = ?", entry.ID, entry.TaskID, entry.UserID).
		Select("description", "hours", "start_time", "end_time").
		Updates(entry)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TimeEntryRepositoryImpl) Delete(ctx context.Context, id, taskID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ? AND user_id = ?", id, taskID, userID).
		Delete(&models.TimeEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
