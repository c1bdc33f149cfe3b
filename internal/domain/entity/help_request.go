// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	domainerrors "mutualaid/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// HelpRequest is a plea for help published by an owner. It collects
// candidate helpers until the owner picks exactly one, then walks
// through mutual completion confirmation. All transitions are pure and
// in-memory; persistence happens afterwards through the repository.
type HelpRequest struct {
	ID              uuid.UUID   `json:"id"`
	OwnerID         uuid.UUID   `json:"ownerId"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	CategoryIDs     []uuid.UUID `json:"categoryIds"`
	Status          Status      `json:"status"`
	PossibleHelpers []uuid.UUID `json:"possibleHelpers"` // candidate roster, insertion order preserved
	HelperID        *uuid.UUID  `json:"helperId"`        // the single matched helper, nil until chosen
	Location        *orb.Point  `json:"location"`        // optional (lon, lat); used only for discovery
	Active          bool        `json:"active"`
	Version         int64       `json:"-"` // optimistic concurrency guard, bumped on every persist
	CreatedAt       time.Time   `json:"creationDate"`
	UpdatedAt       time.Time   `json:"lastUpdateDate"`
	FinishedAt      *time.Time  `json:"finishedDate"`
}

// NewHelpRequest creates an open help request for the given owner.
func NewHelpRequest(ownerID uuid.UUID, title, description string, categoryIDs []uuid.UUID, location *orb.Point) *HelpRequest {
	now := time.Now()

	return &HelpRequest{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		CategoryIDs: categoryIDs,
		Status:      StatusWaiting,
		Location:    location,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AddPossibleHelper appends a candidate to the roster.
func (h *HelpRequest) AddPossibleHelper(helperID uuid.UUID) error {
	if helperID == h.OwnerID {
		return domainerrors.ErrOwnHelpRequest
	}
	if h.HelperID != nil {
		return domainerrors.ErrHelpRequestTaken
	}
	if containsID(h.PossibleHelpers, helperID) {
		return domainerrors.ErrAlreadyPossibleHelper
	}

	h.PossibleHelpers = append(h.PossibleHelpers, helperID)

	return nil
}

// ChooseHelper promotes a candidate to the single helper slot. The roster
// is cleared on success and the request moves to on_going.
func (h *HelpRequest) ChooseHelper(helperID uuid.UUID) error {
	if h.HelperID != nil {
		return domainerrors.ErrHelpRequestTaken
	}
	if !containsID(h.PossibleHelpers, helperID) {
		return domainerrors.ErrNotPossibleHelper
	}

	chosen := helperID
	h.HelperID = &chosen
	h.PossibleHelpers = nil
	h.Status = StatusOnGoing

	return nil
}

// ConfirmByHelper records the helper's completion confirmation. When the
// owner has already confirmed, the request finishes and deactivates.
func (h *HelpRequest) ConfirmByHelper(helperID uuid.UUID) error {
	if h.HelperID == nil || *h.HelperID != helperID {
		return domainerrors.ErrNotHelper
	}

	switch h.Status {
	case StatusFinished:
		return domainerrors.ErrHelpRequestFinished
	case StatusHelperFinished:
		return domainerrors.ErrHelperAlreadyConfirmed
	case StatusOwnerFinished:
		h.finish()
	default:
		h.Status = StatusHelperFinished
	}

	return nil
}

// ConfirmByOwner records the owner's completion confirmation. When the
// helper has already confirmed, the request finishes and deactivates.
func (h *HelpRequest) ConfirmByOwner(ownerID uuid.UUID) error {
	if h.OwnerID != ownerID {
		return domainerrors.ErrNotOwner
	}

	switch h.Status {
	case StatusFinished:
		return domainerrors.ErrHelpRequestFinished
	case StatusOwnerFinished:
		return domainerrors.ErrOwnerAlreadyConfirmed
	case StatusHelperFinished:
		h.finish()
	default:
		h.Status = StatusOwnerFinished
	}

	return nil
}

// Deactivate retires the request from discovery and matching. The flag
// never flips back; calling it again is a no-op.
func (h *HelpRequest) Deactivate() {
	h.Active = false
}

// Coordinate reports the request's location for proximity ranking.
func (h *HelpRequest) Coordinate() (orb.Point, bool) {
	if h.Location == nil {
		return orb.Point{}, false
	}

	return *h.Location, true
}

func (h *HelpRequest) finish() {
	now := time.Now()
	h.Status = StatusFinished
	h.Active = false
	h.FinishedAt = &now
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	remaining := make([]uuid.UUID, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			remaining = append(remaining, candidate)
		}
	}

	return remaining
}
