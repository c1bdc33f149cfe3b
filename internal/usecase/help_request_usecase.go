// Package usecase defines the application's use case interfaces and the
// value objects they exchange with the delivery layer.
package usecase

import (
	"context"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// CreateHelpRequestInput carries the fields needed to open a help
// request or an offer.
type CreateHelpRequestInput struct {
	Title       string
	Description string
	CategoryIDs []uuid.UUID
	Location    *orb.Point
}

// UserSummary is the joined owner projection attached to detail reads.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// HelpRequestWithDistance is the read model returned by proximity
// search: the aggregate plus a derived, non-persisted distance.
type HelpRequestWithDistance struct {
	*entity.HelpRequest
	DistanceKm float64 `json:"distance"`
}

// HelpRequestDetail is the read model for single-aggregate reads with
// explicit owner and category joins.
type HelpRequestDetail struct {
	*entity.HelpRequest
	User       *UserSummary       `json:"user"`
	Categories []*entity.Category `json:"categories"`
}

// HelpRequestUsecase drives the help request side of the matching
// engine: creation under the per-owner cap, discovery, candidate roster
// management and the completion state machine.
type HelpRequestUsecase interface {
	// Create opens a help request for ownerID, enforcing the per-owner
	// cap on simultaneously active requests.
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateHelpRequestInput) (*entity.HelpRequest, error)

	// GetDetail retrieves a help request with joined owner and categories.
	GetDetail(ctx context.Context, id uuid.UUID) (*HelpRequestDetail, error)

	// ListByOwner retrieves the caller's active help requests.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.HelpRequest, error)

	// ListWaitingNearby returns open help requests ranked by distance
	// from ref, optionally narrowed by category. An empty result is
	// surfaced as an error to preserve the upstream wire behavior.
	ListWaitingNearby(ctx context.Context, ownerID uuid.UUID, ref orb.Point, categoryIDs []uuid.UUID) ([]*HelpRequestWithDistance, error)

	// ListByStatuses retrieves the owner's help requests in the given
	// statuses; unknown status names are rejected.
	ListByStatuses(ctx context.Context, ownerID uuid.UUID, statuses []string) ([]*entity.HelpRequest, error)

	// Deactivate irreversibly retires a help request from matching.
	Deactivate(ctx context.Context, id uuid.UUID) (*entity.HelpRequest, error)

	// AddPossibleHelper proposes a candidate helper.
	AddPossibleHelper(ctx context.Context, helpID, helperID uuid.UUID) (*entity.HelpRequest, error)

	// ChooseHelper promotes a roster candidate to the single helper slot.
	ChooseHelper(ctx context.Context, helpID, helperID uuid.UUID) (*entity.HelpRequest, error)

	// HelperConfirmation records the helper's completion confirmation.
	HelperConfirmation(ctx context.Context, helpID, helperID uuid.UUID) (*entity.HelpRequest, error)

	// OwnerConfirmation records the owner's completion confirmation.
	OwnerConfirmation(ctx context.Context, helpID, ownerID uuid.UUID) (*entity.HelpRequest, error)
}
