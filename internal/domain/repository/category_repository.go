package repository

import (
	"context"

	"mutualaid/internal/domain/entity"
	"mutualaid/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository exposes the static category catalog. The engine
// treats category IDs as an opaque identifier set.
type CategoryRepository interface {
	// FindAllCategories retrieves the whole catalog.
	FindAllCategories(ctx context.Context) ([]*entity.Category, error)

	// FindCategoryByID retrieves a single category.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindCategoriesByIDs retrieves the categories for a set of IDs,
	// used for read-time projection joins. Unknown IDs are skipped.
	FindCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error)
}
