package entity

import (
	"time"

	domainerrors "mutualaid/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Offer is help volunteered by an owner. Unlike a HelpRequest it can
// serve several people: candidates are promoted into the helped-user
// list one at a time, and the roster stays open for new proposals.
type Offer struct {
	ID                  uuid.UUID   `json:"id"`
	OwnerID             uuid.UUID   `json:"ownerId"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	CategoryIDs         []uuid.UUID `json:"categoryIds"`
	Status              Status      `json:"status"`
	PossibleHelpedUsers []uuid.UUID `json:"possibleHelpedUsers"`
	HelpedUserIDs       []uuid.UUID `json:"helpedUserId"`
	Location            *orb.Point  `json:"location"`
	Active              bool        `json:"active"`
	Version             int64       `json:"-"`
	CreatedAt           time.Time   `json:"creationDate"`
	UpdatedAt           time.Time   `json:"lastUpdateDate"`
	FinishedAt          *time.Time  `json:"finishedDate"`
}

// NewOffer creates an open offer for the given owner.
func NewOffer(ownerID uuid.UUID, title, description string, categoryIDs []uuid.UUID, location *orb.Point) *Offer {
	now := time.Now()

	return &Offer{
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

// AddPossibleHelpedUser appends a candidate to the roster. A user already
// being helped by this offer cannot be proposed again.
func (o *Offer) AddPossibleHelpedUser(userID uuid.UUID) error {
	if userID == o.OwnerID {
		return domainerrors.ErrOwnOffer
	}
	if containsID(o.HelpedUserIDs, userID) {
		return domainerrors.ErrOfferTaken
	}
	if containsID(o.PossibleHelpedUsers, userID) {
		return domainerrors.ErrAlreadyPossibleHelpedUser
	}

	o.PossibleHelpedUsers = append(o.PossibleHelpedUsers, userID)

	return nil
}

// ChooseHelpedUser promotes a candidate into the helped-user list and
// removes it from the roster. The first promotion moves the offer to
// on_going; later ones leave the status untouched.
func (o *Offer) ChooseHelpedUser(userID uuid.UUID) error {
	if userID == o.OwnerID {
		return domainerrors.ErrOwnOffer
	}
	if containsID(o.HelpedUserIDs, userID) {
		return domainerrors.ErrOfferTaken
	}
	if !containsID(o.PossibleHelpedUsers, userID) {
		return domainerrors.ErrNotPossibleHelpedUser
	}

	o.HelpedUserIDs = append(o.HelpedUserIDs, userID)
	o.PossibleHelpedUsers = removeID(o.PossibleHelpedUsers, userID)
	if o.Status == StatusWaiting {
		o.Status = StatusOnGoing
	}

	return nil
}

// Finish closes the offer: it leaves discovery and accepts no further
// matches. Only the owner may finish an offer; the caller checks that.
func (o *Offer) Finish() {
	now := time.Now()
	o.Status = StatusFinished
	o.Active = false
	o.FinishedAt = &now
}

// Deactivate retires the offer from discovery and matching, irreversibly.
func (o *Offer) Deactivate() {
	o.Active = false
}

// Coordinate reports the offer's location for proximity ranking.
func (o *Offer) Coordinate() (orb.Point, bool) {
	if o.Location == nil {
		return orb.Point{}, false
	}

	return *o.Location, true
}
