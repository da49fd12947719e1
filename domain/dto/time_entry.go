package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTimeEntryRequest struct {
	Description *string  `json:"description"`
	Hours       *float64 `json:"hours" validate:"required,min=0"`
	StartTime   *string  `json:"startTime" validate:"omitempty"`
	EndTime     *string  `json:"endTime" validate:"omitempty"`
}

type UpdateTimeEntryRequest struct {
	Description *string  `json:"description"`
	Hours       *float64 `json:"hours" validate:"omitempty,min=0"`
	StartTime   *string  `json:"startTime" validate:"omitempty"`
	EndTime     *string  `json:"endTime" validate:"omitempty"`
}

type TimeEntryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description,omitempty"`
	Hours       float64    `json:"hours"`
	StartTime   *time.Time `json:"startTime,omitempty"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	TaskID      uuid.UUID  `json:"taskId"`
	UserID      uuid.UUID  `json:"userId"`
	CreatedAt   time.Time  `json:"createdAt"`
}
