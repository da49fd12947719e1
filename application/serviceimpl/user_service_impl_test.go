package serviceimpl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprintdeck/domain/dto"
	"sprintdeck/domain/models"
	"sprintdeck/domain/services"
	"sprintdeck/infrastructure/postgres"
	"sprintdeck/pkg/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	cache := newMemoryCache()
	svc := NewUserService(postgres.NewUserRepository(db), cache, testJWTSecret)
	ctx := context.Background()

	token, user, err := svc.Register(ctx, &dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "secret123", user.Password, "password must be hashed")

	// the issued token must verify against the same secret
	claims, err := utils.ValidateToken(token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.ID)
	assert.Equal(t, "alice@example.com", claims.Email)

	loginToken, loginUser, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loginUser.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(postgres.NewUserRepository(db), newMemoryCache(), testJWTSecret)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, &dto.CreateUserRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "different",
	})
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(postgres.NewUserRepository(db), newMemoryCache(), testJWTSecret)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestGetUserUnknownIDReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(postgres.NewUserRepository(db), newMemoryCache(), testJWTSecret)

	user, err := svc.GetUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestListUsersCaching(t *testing.T) {
	db := setupTestDB(t)
	cache := newMemoryCache()
	svc := NewUserService(postgres.NewUserRepository(db), cache, testJWTSecret)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, &dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, cache.contains("users"))

	// a row inserted behind the cache's back stays invisible until expiry
	seedUser(t, db, "shadow@example.com")
	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	// registering invalidates, so the next read sees everything
	_, _, err = svc.Register(ctx, &dto.CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.False(t, cache.contains("users"))

	users, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestListUsersNeverExposesPasswordHash(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(postgres.NewUserRepository(db), newMemoryCache(), testJWTSecret)
	ctx := context.Background()

	_, registered, err := svc.Register(ctx, &dto.CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, registered.ID, users[0].ID)
	assert.Equal(t, "alice@example.com", users[0].Email)

	var model models.User
	require.NoError(t, db.First(&model, "id = ?", registered.ID).Error)
	assert.NotEmpty(t, model.Password)
}
