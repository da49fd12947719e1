package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sprintdeck/domain/models"
	"sprintdeck/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Sprint").
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) GetWithDetails(ctx context.Context, id, userID uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Sprint").
		Preload("Notes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("TimeEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Preload("Sprint").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// Update persists the full derived state through one conditional statement.
// The explicit column list keeps zero values (completed=false, cleared
// completedAt, detached sprint) from being dropped by gorm's struct update.
func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	res := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Select("title", "description", "points", "task_link", "priority",
			"sprint_id", "completed", "completed_at", "estimated_hours", "updated_at").
		Updates(task)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Task{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// children go with the task
		if err := tx.Where("task_id = ?", id).Delete(&models.TaskNote{}).Error; err != nil {
			return err
		}
		return tx.Where("task_id = ?", id).Delete(&models.TimeEntry{}).Error
	})
}

func (r *TaskRepositoryImpl) RecalcTimeSpent(ctx context.Context, taskID uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(
		`UPDATE tasks
		 SET time_spent = COALESCE((SELECT SUM(hours) FROM time_entries WHERE task_id = ?), 0)
		 WHERE id = ?`,
		taskID, taskID,
	).Error
}

func (r *TaskRepositoryImpl) ListCompletedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Preload("Sprint").
		Where("user_id = ? AND completed = ? AND completed_at >= ? AND completed_at <= ?", userID, true, from, to).
		Order("completed_at DESC").
		Find(&tasks).Error
	return tasks, err
}
