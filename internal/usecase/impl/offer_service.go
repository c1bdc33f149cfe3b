package impl

import (
	"context"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/geo"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type offerService struct {
	offerRepo    repository.OfferRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	txManager    repository.TransactionManager
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	OfferRepo    repository.OfferRepository
	UserRepo     repository.UserRepository
	CategoryRepo repository.CategoryRepository
	TxManager    repository.TransactionManager
}

// NewOfferService creates a new offer service instance
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		offerRepo:    params.OfferRepo,
		userRepo:     params.UserRepo,
		categoryRepo: params.CategoryRepo,
		txManager:    params.TxManager,
	}
}

// Create opens an offer. Offers carry no per-owner cap.
func (s *offerService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateHelpRequestInput) (*entity.Offer, error) {
	if err := s.validateCategories(ctx, input.CategoryIDs); err != nil {
		return nil, err
	}

	offer := entity.NewOffer(ownerID, input.Title, input.Description, input.CategoryIDs, input.Location)
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	return offer, nil
}

// GetDetail retrieves an offer with joined owner and categories.
func (s *offerService) GetDetail(ctx context.Context, id uuid.UUID) (*usecase.OfferDetail, error) {
	offer, err := s.findOffer(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindUserByID(ctx, offer.OwnerID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find offer owner")
	}

	categories, err := s.categoryRepo.FindCategoriesByIDs(ctx, offer.CategoryIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offer categories")
	}

	detail := &usecase.OfferDetail{
		Offer:      offer,
		Categories: categories,
	}
	if owner != nil {
		detail.User = &usecase.UserSummary{ID: owner.ID, Name: owner.Name, Email: owner.Email}
	}

	return detail, nil
}

// ListByOwner retrieves the caller's active offers.
func (s *offerService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Offer, error) {
	offers, err := s.offerRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offers by owner")
	}

	return offers, nil
}

// ListNearby ranks the owner's open offers by distance from ref. An
// empty result set is reported through the error channel.
func (s *offerService) ListNearby(ctx context.Context, ownerID uuid.UUID, ref orb.Point, categoryIDs []uuid.UUID) ([]*usecase.OfferWithDistance, error) {
	if !geo.IsValid(ref) {
		return nil, domainerrors.ErrCoordinatesRequired
	}

	offers, err := s.offerRepo.FindWaiting(ctx, ownerID, categoryIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find waiting offers")
	}

	ranked := geo.Rank(ref, offers)
	if len(ranked) == 0 {
		return nil, domainerrors.ErrNoWaitingOffers
	}

	results := make([]*usecase.OfferWithDistance, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, &usecase.OfferWithDistance{
			Offer:      r.Item,
			DistanceKm: r.DistanceKm,
		})
	}

	return results, nil
}

// ListByHelpedUser retrieves offers in which userID is a helped user.
func (s *offerService) ListByHelpedUser(ctx context.Context, userID uuid.UUID) ([]*entity.Offer, error) {
	offers, err := s.offerRepo.FindByHelpedUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offers by helped user")
	}

	return offers, nil
}

// AddPossibleHelpedUser proposes a candidate helped user for an offer.
func (s *offerService) AddPossibleHelpedUser(ctx context.Context, offerID, userID uuid.UUID) (*entity.Offer, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	return s.mutate(ctx, offerID, func(offer *entity.Offer) error {
		return offer.AddPossibleHelpedUser(userID)
	})
}

// ChooseHelpedUser accepts a roster candidate as a helped user.
func (s *offerService) ChooseHelpedUser(ctx context.Context, offerID, userID uuid.UUID) (*entity.Offer, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	return s.mutate(ctx, offerID, func(offer *entity.Offer) error {
		return offer.ChooseHelpedUser(userID)
	})
}

// Finish closes an offer. Only the owner may finish it; there is no
// mutual confirmation handshake on the offer side.
func (s *offerService) Finish(ctx context.Context, offerID, ownerID uuid.UUID) (*entity.Offer, error) {
	return s.mutate(ctx, offerID, func(offer *entity.Offer) error {
		if offer.OwnerID != ownerID {
			return domainerrors.ErrNotAuthorized
		}

		offer.Finish()

		return nil
	})
}

// mutate loads the offer, applies fn and persists the result inside a
// transaction under the optimistic version discipline.
func (s *offerService) mutate(ctx context.Context, id uuid.UUID, fn func(offer *entity.Offer) error) (*entity.Offer, error) {
	var mutated *entity.Offer
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		offerRepo := txRepoFactory.NewOfferRepository()

		offer, err := offerRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOfferNotFound) {
				return domainerrors.ErrOfferNotFound
			}

			return errors.Wrap(err, "failed to find offer")
		}

		if err := fn(offer); err != nil {
			return err
		}

		if err := offerRepo.Update(ctx, offer); err != nil {
			if errors.Is(err, repository.ErrVersionMismatch) {
				return domainerrors.ErrConcurrentModification
			}

			return errors.Wrap(err, "failed to update offer")
		}

		mutated = offer

		return nil
	})
	if err != nil {
		return nil, err
	}

	return mutated, nil
}

func (s *offerService) ensureUserExists(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	return nil
}

func (s *offerService) validateCategories(ctx context.Context, categoryIDs []uuid.UUID) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	found, err := s.categoryRepo.FindCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return errors.Wrap(err, "failed to find categories")
	}

	known := make(map[uuid.UUID]struct{}, len(found))
	for _, category := range found {
		known[category.ID] = struct{}{}
	}
	for _, id := range categoryIDs {
		if _, ok := known[id]; !ok {
			return domainerrors.ErrCategoryNotFound
		}
	}

	return nil
}

func (s *offerService) findOffer(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	offer, err := s.offerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOfferNotFound) {
			return nil, domainerrors.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer")
	}

	return offer, nil
}
