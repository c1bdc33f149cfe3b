package usecase

import (
	"context"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryUsecase exposes the read-only category catalog used to tag
// help requests and offers.
type CategoryUsecase interface {
	// List returns every category.
	List(ctx context.Context) ([]*entity.Category, error)

	// GetByID retrieves a single category.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
}
