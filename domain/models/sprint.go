package models

import (
	"time"

	"github.com/google/uuid"
)

// Sprint lifecycle statuses. At most one sprint per user may be ACTIVE;
// ActivateSprint enforces this inside a single transaction.
const (
	SprintStatusPlanning  = "PLANNING"
	SprintStatusActive    = "ACTIVE"
	SprintStatusCompleted = "COMPLETED"
	SprintStatusCancelled = "CANCELLED"
)

type Sprint struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name        string    `gorm:"not null"`
	Description string
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Status      string    `gorm:"default:'PLANNING';index"`
	UserID      uuid.UUID `gorm:"not null;index"`
	Tasks       []Task    `gorm:"foreignKey:SprintID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Sprint) TableName() string {
	return "sprints"
}
