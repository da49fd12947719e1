package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sprintdeck/domain/models"
	"sprintdeck/domain/repositories"
)

type NoteRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) repositories.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *models.TaskNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *NoteRepositoryImpl) GetByID(ctx context.Context, id, taskID, userID uuid.UUID) (*models.TaskNote, error) {
	var note models.TaskNote
	err := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ? AND user_id = ?", id, taskID, userID).
		First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepositoryImpl) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*models.TaskNote, error) {
	var notes []*models.TaskNote
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *models.TaskNote) error {
	res := r.db.WithContext(ctx).Model(&models.TaskNote{}).
		Where("id = ? AND task_id = ? AND user_id = ?", note.ID, note.TaskID, note.UserID).
		Select("content", "updated_at").
		Updates(note)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id, taskID, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ? AND user_id = ?", id, taskID, userID).
		Delete(&models.TaskNote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
