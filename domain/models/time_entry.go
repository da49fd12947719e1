package models

import (
	"time"

	"github.com/google/uuid"
)

type TimeEntry struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Description string
	Hours       float64 `gorm:"not null"`
	StartTime   *time.Time
	EndTime     *time.Time
	TaskID      uuid.UUID `gorm:"not null;index"`
	UserID      uuid.UUID `gorm:"not null"`
	CreatedAt   time.Time
}

func (TimeEntry) TableName() string {
	return "time_entries"
}
