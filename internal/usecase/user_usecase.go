package usecase

import (
	"context"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Location *orb.Point
}

// TokenPair bundles the signed access and refresh tokens issued at login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// UserUsecase covers account registration, authentication and profile
// reads for the matching engine's participants.
type UserUsecase interface {
	// Register creates an account; the email must be unused.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*entity.User, *TokenPair, error)

	// GetProfile retrieves a user by id.
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
