package impl

import (
	"context"
	"testing"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/repository"
	mockRepo "mutualaid/internal/mocks/repository"
	mockSvc "mutualaid/internal/mocks/service"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register_Succeeds(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := NewUserService(UserServiceParams{UserRepo: userRepo, Hasher: hasher, TokenService: tokenSvc})

	ctx := context.Background()

	hasher.EXPECT().
		Hash("hunter2hunter2").
		Return("$2a$10$hash", nil)

	userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	user, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", user.Email)
	assert.Equal(t, "$2a$10$hash", user.PasswordHash)
	assert.True(t, user.Active)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := NewUserService(UserServiceParams{UserRepo: userRepo, Hasher: hasher, TokenService: tokenSvc})

	ctx := context.Background()

	hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("$2a$10$hash", nil)

	userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_Login_Succeeds(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := NewUserService(UserServiceParams{UserRepo: userRepo, Hasher: hasher, TokenService: tokenSvc})

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{ID: userID, Email: "alex@example.com", PasswordHash: "$2a$10$hash"}

	userRepo.EXPECT().
		FindUserByEmail(ctx, "alex@example.com").
		Return(stored, nil)

	hasher.EXPECT().
		Check("hunter2hunter2", "$2a$10$hash").
		Return(true)

	tokenSvc.EXPECT().
		GenerateTokens(userID).
		Return("access", "refresh", nil)

	user, tokens, err := service.Login(ctx, "alex@example.com", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "access", tokens.AccessToken)
	assert.Equal(t, "refresh", tokens.RefreshToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := NewUserService(UserServiceParams{UserRepo: userRepo, Hasher: hasher, TokenService: tokenSvc})

	ctx := context.Background()
	stored := &entity.User{ID: uuid.New(), Email: "alex@example.com", PasswordHash: "$2a$10$hash"}

	userRepo.EXPECT().
		FindUserByEmail(ctx, "alex@example.com").
		Return(stored, nil)

	hasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	_, _, err := service.Login(ctx, "alex@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailIsIndistinguishable(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	service := NewUserService(UserServiceParams{UserRepo: userRepo, Hasher: hasher, TokenService: tokenSvc})

	ctx := context.Background()

	userRepo.EXPECT().
		FindUserByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, _, err := service.Login(ctx, "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
