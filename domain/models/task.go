package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
	PriorityUrgent = "URGENT"
)

// Task invariants: CompletedAt is set exactly while Completed is true, and
// TimeSpent always equals the sum of hours over the task's time entries.
// Both are derived server-side, never taken from a request body.
type Task struct {
	ID             uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title          string    `gorm:"not null"`
	Description    string
	Completed      bool `gorm:"default:false"`
	CompletedAt    *time.Time
	Points         int `gorm:"default:0"` // story points, 0-13
	TaskLink       *string
	Priority       string `gorm:"default:'MEDIUM'"`
	EstimatedHours *float64
	TimeSpent      float64     `gorm:"default:0"`
	UserID         uuid.UUID   `gorm:"not null;index"`
	SprintID       *uuid.UUID  `gorm:"index"`
	Sprint         *Sprint     `gorm:"foreignKey:SprintID;constraint:OnDelete:SET NULL"`
	Notes          []TaskNote  `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	TimeEntries    []TimeEntry `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Task) TableName() string {
	return "tasks"
}
