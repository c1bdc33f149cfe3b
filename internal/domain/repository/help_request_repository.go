// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mutualaid/internal/domain/entity"
	"mutualaid/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for help request persistence.
var (
	// ErrHelpRequestNotFound is returned when a help request is not found.
	ErrHelpRequestNotFound = errors.New("help request not found")
	// ErrVersionMismatch is returned when an update lost the optimistic
	// version race: the stored aggregate changed since it was loaded.
	ErrVersionMismatch = errors.New("help request version mismatch")
)

// HelpRequestRepository defines the persistence contract the matching
// engine requires for help requests. Aggregates are never physically
// deleted; termination is modeled as active=false.
type HelpRequestRepository interface {
	// Create persists a new help request, stamping creation and update times.
	Create(ctx context.Context, help *entity.HelpRequest) error

	// FindByID retrieves a help request by its unique ID, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HelpRequest, error)

	// FindByOwner retrieves all active help requests owned by a user.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.HelpRequest, error)

	// FindWaiting retrieves the open (active, waiting) help requests in
	// the owner's waiting-list scope, optionally narrowed to requests
	// whose categories intersect categoryIDs. Results keep the store's
	// creation order; distance ranking happens in the engine.
	FindWaiting(ctx context.Context, ownerID uuid.UUID, categoryIDs []uuid.UUID) ([]*entity.HelpRequest, error)

	// CountActiveByOwner counts the owner's active, non-finished help
	// requests. Used to enforce the per-owner creation cap.
	CountActiveByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// FindByStatuses retrieves the owner's help requests whose status is
	// in the given set.
	FindByStatuses(ctx context.Context, ownerID uuid.UUID, statuses []entity.Status) ([]*entity.HelpRequest, error)

	// Update replaces the stored aggregate. The write is conditional on
	// the in-memory Version matching the stored one and fails with
	// ErrVersionMismatch otherwise; on success the Version is bumped and
	// the update timestamp refreshed.
	Update(ctx context.Context, help *entity.HelpRequest) error
}
