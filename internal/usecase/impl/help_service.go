// Package impl provides the concrete use case services wired together
// by fx at startup.
package impl

import (
	"context"

	"mutualaid/config"
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

type helpService struct {
	helpRepo     repository.HelpRequestRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	txManager    repository.TransactionManager
	config       *config.Config
}

// HelpServiceParams holds dependencies for HelpService, injected by Fx.
type HelpServiceParams struct {
	fx.In

	HelpRepo     repository.HelpRequestRepository
	UserRepo     repository.UserRepository
	CategoryRepo repository.CategoryRepository
	TxManager    repository.TransactionManager
	Config       *config.Config
}

// NewHelpService creates a new help request service instance
func NewHelpService(params HelpServiceParams) usecase.HelpRequestUsecase {
	return &helpService{
		helpRepo:     params.HelpRepo,
		userRepo:     params.UserRepo,
		categoryRepo: params.CategoryRepo,
		txManager:    params.TxManager,
		config:       params.Config,
	}
}

// Create opens a help request, enforcing the per-owner cap on
// simultaneously active requests inside a transaction so two concurrent
// creations cannot both pass the count check.
func (s *helpService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateHelpRequestInput) (*entity.HelpRequest, error) {
	if err := s.validateCategories(ctx, input.CategoryIDs); err != nil {
		return nil, err
	}

	var created *entity.HelpRequest
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		helpRepo := txRepoFactory.NewHelpRequestRepository()

		maxActive := s.config.MutualAid.MaxActiveHelpRequests
		count, err := helpRepo.CountActiveByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to count active help requests")
		}
		if count >= int64(maxActive) {
			return domainerrors.NewHelpRequestLimitError(maxActive)
		}

		help := entity.NewHelpRequest(ownerID, input.Title, input.Description, input.CategoryIDs, input.Location)
		if err := helpRepo.Create(ctx, help); err != nil {
			return errors.Wrap(err, "failed to create help request")
		}

		created = help

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetDetail retrieves a help request with joined owner and categories.
func (s *helpService) GetDetail(ctx context.Context, id uuid.UUID) (*usecase.HelpRequestDetail, error) {
	help, err := s.findHelp(ctx, id)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindUserByID(ctx, help.OwnerID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find help request owner")
	}

	categories, err := s.categoryRepo.FindCategoriesByIDs(ctx, help.CategoryIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find help request categories")
	}

	detail := &usecase.HelpRequestDetail{
		HelpRequest: help,
		Categories:  categories,
	}
	if owner != nil {
		detail.User = &usecase.UserSummary{ID: owner.ID, Name: owner.Name, Email: owner.Email}
	}

	return detail, nil
}

// ListByOwner retrieves the caller's active help requests.
func (s *helpService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.HelpRequest, error) {
	helps, err := s.helpRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find help requests by owner")
	}
	if len(helps) == 0 {
		return nil, domainerrors.ErrNoUserHelpRequests
	}

	return helps, nil
}

// ListWaitingNearby ranks the owner's open help requests by distance
// from ref. An empty result set is reported through the error channel.
func (s *helpService) ListWaitingNearby(ctx context.Context, ownerID uuid.UUID, ref orb.Point, categoryIDs []uuid.UUID) ([]*usecase.HelpRequestWithDistance, error) {
	if !geo.IsValid(ref) {
		return nil, domainerrors.ErrCoordinatesRequired
	}

	helps, err := s.helpRepo.FindWaiting(ctx, ownerID, categoryIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find waiting help requests")
	}

	ranked := geo.Rank(ref, helps)
	if len(ranked) == 0 {
		return nil, domainerrors.ErrNoWaitingHelpRequests
	}

	results := make([]*usecase.HelpRequestWithDistance, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, &usecase.HelpRequestWithDistance{
			HelpRequest: r.Item,
			DistanceKm:  r.DistanceKm,
		})
	}

	return results, nil
}

// ListByStatuses retrieves the owner's help requests in the given
// statuses. Status names are matched case-insensitively.
func (s *helpService) ListByStatuses(ctx context.Context, ownerID uuid.UUID, statuses []string) ([]*entity.HelpRequest, error) {
	if len(statuses) == 0 {
		return nil, domainerrors.ErrStatusListRequired
	}

	parsed, err := entity.ParseStatusList(statuses)
	if err != nil {
		return nil, domainerrors.ErrInvalidStatus
	}

	helps, err := s.helpRepo.FindByStatuses(ctx, ownerID, parsed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find help requests by statuses")
	}
	if len(helps) == 0 {
		return nil, domainerrors.ErrNoUserHelpRequests
	}

	return helps, nil
}

// Deactivate retires a help request from matching (soft delete).
func (s *helpService) Deactivate(ctx context.Context, id uuid.UUID) (*entity.HelpRequest, error) {
	return s.mutate(ctx, id, func(help *entity.HelpRequest) error {
		help.Deactivate()

		return nil
	})
}

// AddPossibleHelper proposes a candidate helper for a help request.
func (s *helpService) AddPossibleHelper(ctx context.Context, helpID, helperID uuid.UUID) (*entity.HelpRequest, error) {
	if err := s.ensureUserExists(ctx, helperID); err != nil {
		return nil, err
	}

	return s.mutate(ctx, helpID, func(help *entity.HelpRequest) error {
		return help.AddPossibleHelper(helperID)
	})
}

// ChooseHelper promotes a roster candidate to the single helper slot.
func (s *helpService) ChooseHelper(ctx context.Context, helpID, helperID uuid.UUID) (*entity.HelpRequest, error) {
	if err := s.ensureUserExists(ctx, helperID); err != nil {
		return nil, err
	}

	return s.mutate(ctx, helpID, func(help *entity.HelpRequest) error {
		return help.ChooseHelper(helperID)
	})
}

// HelperConfirmation records the helper's completion confirmation.
func (s *helpService) HelperConfirmation(ctx context.Context, helpID, helperID uuid.UUID) (*entity.HelpRequest, error) {
	return s.mutate(ctx, helpID, func(help *entity.HelpRequest) error {
		return help.ConfirmByHelper(helperID)
	})
}

// OwnerConfirmation records the owner's completion confirmation.
func (s *helpService) OwnerConfirmation(ctx context.Context, helpID, ownerID uuid.UUID) (*entity.HelpRequest, error) {
	return s.mutate(ctx, helpID, func(help *entity.HelpRequest) error {
		return help.ConfirmByOwner(ownerID)
	})
}

// mutate loads the aggregate, applies fn and persists the result inside
// a transaction. A lost version race surfaces as a conflict the client
// can retry.
func (s *helpService) mutate(ctx context.Context, id uuid.UUID, fn func(help *entity.HelpRequest) error) (*entity.HelpRequest, error) {
	var mutated *entity.HelpRequest
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		helpRepo := txRepoFactory.NewHelpRequestRepository()

		help, err := helpRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrHelpRequestNotFound) {
				return domainerrors.ErrHelpRequestNotFound
			}

			return errors.Wrap(err, "failed to find help request")
		}

		if err := fn(help); err != nil {
			return err
		}

		if err := helpRepo.Update(ctx, help); err != nil {
			if errors.Is(err, repository.ErrVersionMismatch) {
				return domainerrors.ErrConcurrentModification
			}

			return errors.Wrap(err, "failed to update help request")
		}

		mutated = help

		return nil
	})
	if err != nil {
		return nil, err
	}

	return mutated, nil
}

// ensureUserExists resolves a candidate ID against the identity store
// before it is allowed into a roster.
func (s *helpService) ensureUserExists(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	return nil
}

// validateCategories rejects creation referencing unknown categories.
func (s *helpService) validateCategories(ctx context.Context, categoryIDs []uuid.UUID) error {
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

func (s *helpService) findHelp(ctx context.Context, id uuid.UUID) (*entity.HelpRequest, error) {
	help, err := s.helpRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHelpRequestNotFound) {
			return nil, domainerrors.ErrHelpRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find help request")
	}

	return help, nil
}
