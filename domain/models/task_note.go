package models

import (
	"time"

	"github.com/google/uuid"
)

type TaskNote struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Content   string    `gorm:"not null"`
	TaskID    uuid.UUID `gorm:"not null;index"`
	UserID    uuid.UUID `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TaskNote) TableName() string {
	return "task_notes"
}
