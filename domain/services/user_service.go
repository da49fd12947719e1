package services

import (
	"context"

	"github.com/google/uuid"

	"sprintdeck/domain/dto"
	"sprintdeck/domain/models"
)

type UserService interface {
	// Register creates the user and issues a bearer token in one step.
	// Fails with ErrEmailTaken when the email is already registered.
	Register(ctx context.Context, req *dto.CreateUserRequest) (string, *models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// GetUser returns (nil, nil) when the id is unknown.
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	// ListUsers reads safe profiles through the "users" cache key.
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
}
