package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sprintdeck/domain/dto"
	"sprintdeck/domain/models"
	"sprintdeck/domain/ports"
	"sprintdeck/domain/repositories"
	"sprintdeck/domain/services"
	"sprintdeck/pkg/logger"
	"sprintdeck/pkg/utils"
)

const (
	usersCacheKey = "users"
	usersCacheTTL = 5 * time.Minute
)

type UserServiceImpl struct {
	userRepo  repositories.UserRepository
	cache     ports.Cache
	jwtSecret string
}

func NewUserService(userRepo repositories.UserRepository, cache ports.Cache, jwtSecret string) services.UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		cache:     cache,
		jwtSecret: jwtSecret,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.CreateUserRequest) (string, *models.User, error) {
	existingUser, _ := s.userRepo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		logger.WarnContext(ctx, "Email already registered", "email", req.Email)
		return "", nil, services.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return "", nil, err
	}

	user := &models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Username:  req.Username,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return "", nil, err
	}

	// the cached users list is stale now
	if err := s.cache.Del(ctx, usersCacheKey); err != nil {
		logger.WarnContext(ctx, "Failed to invalidate users cache", "error", err)
	}

	token, err := utils.GenerateToken(user, s.jwtSecret)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "email", user.Email)

	return token, user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.WarnContext(ctx, "Login failed - email not found", "email", req.Email)
		return "", nil, services.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return "", nil, services.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtSecret)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID, "email", user.Email)

	return token, user, nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, services.ErrUserNotFound
	}
	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	var cached []dto.UserResponse
	err := s.cache.GetJSON(ctx, usersCacheKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ports.ErrCacheMiss) {
		// cache trouble must not take the endpoint down
		logger.WarnContext(ctx, "Users cache read failed, falling back to database", "error", err)
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list users", "error", err)
		return nil, err
	}

	profiles := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, *dto.UserToUserResponse(user))
	}

	if err := s.cache.SetJSON(ctx, usersCacheKey, profiles, usersCacheTTL); err != nil {
		logger.WarnContext(ctx, "Failed to populate users cache", "error", err)
	}

	return profiles, nil
}
