package usecase

import (
	"context"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// OfferWithDistance is the read model returned by offer proximity search.
type OfferWithDistance struct {
	*entity.Offer
	DistanceKm float64 `json:"distance"`
}

// OfferDetail is the read model for single-offer reads with joined
// owner and categories.
type OfferDetail struct {
	*entity.Offer
	User       *UserSummary       `json:"user"`
	Categories []*entity.Category `json:"categories"`
}

// OfferUsecase drives the offer side of the matching engine. Offers
// mirror help requests but accept many helped users instead of a single
// helper, and only the owner closes them.
type OfferUsecase interface {
	// Create opens an offer for ownerID.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateHelpRequestInput) (*entity.Offer, error)

	// GetDetail retrieves an offer with joined owner and categories.
	GetDetail(ctx context.Context, id uuid.UUID) (*OfferDetail, error)

	// ListByOwner retrieves the caller's active offers.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Offer, error)

	// ListNearby returns open offers ranked by distance from ref,
	// optionally narrowed by category.
	ListNearby(ctx context.Context, ownerID uuid.UUID, ref orb.Point, categoryIDs []uuid.UUID) ([]*OfferWithDistance, error)

	// ListByHelpedUser retrieves offers in which userID has been
	// accepted as a helped user.
	ListByHelpedUser(ctx context.Context, userID uuid.UUID) ([]*entity.Offer, error)

	// AddPossibleHelpedUser proposes a candidate helped user.
	AddPossibleHelpedUser(ctx context.Context, offerID, userID uuid.UUID) (*entity.Offer, error)

	// ChooseHelpedUser accepts a roster candidate as a helped user.
	ChooseHelpedUser(ctx context.Context, offerID, userID uuid.UUID) (*entity.Offer, error)

	// Finish closes an offer; only the owner may do so.
	Finish(ctx context.Context, offerID, ownerID uuid.UUID) (*entity.Offer, error)
}
