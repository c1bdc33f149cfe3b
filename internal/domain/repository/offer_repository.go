package repository

import (
	"context"

	"mutualaid/internal/domain/entity"
	"mutualaid/internal/errors"

	"github.com/google/uuid"
)

// ErrOfferNotFound is returned when an offer is not found.
var ErrOfferNotFound = errors.New("offer not found")

// OfferRepository defines the persistence contract for offers. It
// mirrors HelpRequestRepository with helped-user terminology; offers
// have no creation cap.
type OfferRepository interface {
	// Create persists a new offer, stamping creation and update times.
	Create(ctx context.Context, offer *entity.Offer) error

	// FindByID retrieves an offer by its unique ID, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindByOwner retrieves all active offers owned by a user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Offer, error)

	// FindWaiting retrieves the open (active, waiting) offers in the
	// owner's scope, optionally narrowed by category intersection.
	FindWaiting(ctx context.Context, ownerID uuid.UUID, categoryIDs []uuid.UUID) ([]*entity.Offer, error)

	// FindByHelpedUser retrieves the active offers whose helped-user
	// list contains the given user.
	FindByHelpedUser(ctx context.Context, helpedUserID uuid.UUID) ([]*entity.Offer, error)

	// Update replaces the stored aggregate under the same optimistic
	// version discipline as HelpRequestRepository.Update.
	Update(ctx context.Context, offer *entity.Offer) error
}
