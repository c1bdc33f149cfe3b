// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"mutualaid/internal/domain/entity"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryOverlap matches rows whose jsonb category array intersects the
// given set. jsonb_array_elements_text unnests the stored UUID strings.
const categoryOverlap = `EXISTS (SELECT 1 FROM jsonb_array_elements_text(category_ids) AS cid WHERE cid IN ?)`

// helpRequestRepository implements the repository.HelpRequestRepository interface.
type helpRequestRepository struct {
	db *gorm.DB
}

// NewHelpRequestRepository is the constructor for helpRequestRepository.
func NewHelpRequestRepository(db *gorm.DB) repository.HelpRequestRepository {
	return &helpRequestRepository{
		db: db,
	}
}

// Create persists a new help request.
func (repo *helpRequestRepository) Create(ctx context.Context, help *entity.HelpRequest) error {
	helpM := fromHelpRequestDomain(help)

	if err := repo.db.WithContext(ctx).Create(helpM).Error; err != nil {
		return errors.Wrap(err, "failed to create help request")
	}

	// Carry back generated values
	help.ID = helpM.ID
	help.CreatedAt = helpM.CreatedAt
	help.UpdatedAt = helpM.UpdatedAt

	return nil
}

// FindByID retrieves a help request by its unique ID, active or not.
func (repo *helpRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HelpRequest, error) {
	var helpM model.HelpRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&helpM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHelpRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find help request by ID")
	}

	return toHelpRequestDomain(&helpM), nil
}

// FindByOwner retrieves all active help requests owned by a user.
func (repo *helpRequestRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.HelpRequest, error) {
	var helpModels []*model.HelpRequestModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND active = ?", ownerID, true).
		Order("created_at DESC").
		Find(&helpModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find help requests by owner")
	}

	return toHelpRequestDomainList(helpModels), nil
}

// FindWaiting retrieves the owner's open help requests, optionally
// narrowed to requests whose categories intersect categoryIDs.
func (repo *helpRequestRepository) FindWaiting(ctx context.Context, ownerID uuid.UUID, categoryIDs []uuid.UUID) ([]*entity.HelpRequest, error) {
	var helpModels []*model.HelpRequestModel

	query := repo.db.WithContext(ctx).
		Where("owner_id = ? AND active = ? AND status = ?", ownerID, true, entity.StatusWaiting.String())
	if len(categoryIDs) > 0 {
		query = query.Where(categoryOverlap, uuidStrings(categoryIDs))
	}

	if err := query.
		Order("created_at DESC").
		Find(&helpModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find waiting help requests")
	}

	return toHelpRequestDomainList(helpModels), nil
}

// CountActiveByOwner counts the owner's active, non-finished help requests.
func (repo *helpRequestRepository) CountActiveByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.HelpRequestModel{}).
		Where("owner_id = ? AND active = ? AND status <> ?", ownerID, true, entity.StatusFinished.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active help requests")
	}

	return count, nil
}

// FindByStatuses retrieves the owner's help requests whose status is in
// the given set, regardless of the active flag.
func (repo *helpRequestRepository) FindByStatuses(ctx context.Context, ownerID uuid.UUID, statuses []entity.Status) ([]*entity.HelpRequest, error) {
	names := make([]string, 0, len(statuses))
	for _, status := range statuses {
		names = append(names, status.String())
	}

	var helpModels []*model.HelpRequestModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND status IN ?", ownerID, names).
		Order("created_at DESC").
		Find(&helpModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find help requests by statuses")
	}

	return toHelpRequestDomainList(helpModels), nil
}

// Update replaces the stored aggregate, conditional on the in-memory
// version matching the stored one. On success the entity's version is
// bumped to the persisted value.
func (repo *helpRequestRepository) Update(ctx context.Context, help *entity.HelpRequest) error {
	helpM := fromHelpRequestDomain(help)
	now := time.Now()
	helpM.Version = help.Version + 1
	helpM.UpdatedAt = now

	// Struct-based Updates keeps the jsonb serializer in play for the ID
	// arrays; Select forces zero values (cleared roster, active=false) in.
	result := repo.db.WithContext(ctx).
		Model(&model.HelpRequestModel{}).
		Where("id = ? AND version = ?", help.ID, help.Version).
		Select("title", "description", "category_ids", "status", "possible_helpers",
			"helper_id", "longitude", "latitude", "active", "finished_at", "version", "updated_at").
		Updates(helpM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update help request")
	}

	if result.RowsAffected == 0 {
		// Either the row is gone or another writer won the version race.
		var exists int64
		if err := repo.db.WithContext(ctx).
			Model(&model.HelpRequestModel{}).
			Where("id = ?", help.ID).
			Count(&exists).Error; err != nil {
			return errors.Wrap(err, "failed to check help request existence")
		}
		if exists == 0 {
			return repository.ErrHelpRequestNotFound
		}

		return repository.ErrVersionMismatch
	}

	help.Version++
	help.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

// toHelpRequestDomain converts a GORM HelpRequestModel to a domain HelpRequest entity.
func toHelpRequestDomain(data *model.HelpRequestModel) *entity.HelpRequest {
	if data == nil {
		return nil
	}

	return &entity.HelpRequest{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Title:           data.Title,
		Description:     data.Description,
		CategoryIDs:     data.CategoryIDs,
		Status:          entity.Status(data.Status),
		PossibleHelpers: data.PossibleHelpers,
		HelperID:        data.HelperID,
		Location:        toPoint(data.Longitude, data.Latitude),
		Active:          data.Active,
		Version:         data.Version,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		FinishedAt:      data.FinishedAt,
	}
}

func toHelpRequestDomainList(models []*model.HelpRequestModel) []*entity.HelpRequest {
	helps := make([]*entity.HelpRequest, 0, len(models))
	for _, helpM := range models {
		helps = append(helps, toHelpRequestDomain(helpM))
	}

	return helps
}

// fromHelpRequestDomain converts a domain HelpRequest entity to a GORM HelpRequestModel.
func fromHelpRequestDomain(data *entity.HelpRequest) *model.HelpRequestModel {
	if data == nil {
		return nil
	}

	longitude, latitude := fromPoint(data.Location)

	return &model.HelpRequestModel{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Title:           data.Title,
		Description:     data.Description,
		CategoryIDs:     data.CategoryIDs,
		Status:          data.Status.String(),
		PossibleHelpers: data.PossibleHelpers,
		HelperID:        data.HelperID,
		Longitude:       longitude,
		Latitude:        latitude,
		Active:          data.Active,
		Version:         data.Version,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		FinishedAt:      data.FinishedAt,
	}
}
