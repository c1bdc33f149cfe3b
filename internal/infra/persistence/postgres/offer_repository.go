package postgres

import (
	"context"
	"fmt"
	"time"

	"mutualaid/internal/domain/entity"
	"mutualaid/internal/domain/repository"
	"mutualaid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// Create persists a new offer.
func (repo *offerRepository) Create(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		return errors.Wrap(err, "failed to create offer")
	}

	// Carry back generated values
	offer.ID = offerM.ID
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// FindByID retrieves an offer by its unique ID, active or not.
func (repo *offerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, errors.Wrap(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// FindByOwner retrieves all active offers owned by a user.
func (repo *offerRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND active = ?", ownerID, true).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by owner")
	}

	return toOfferDomainList(offerModels), nil
}

// FindWaiting retrieves the owner's open offers, optionally narrowed by
// category intersection.
func (repo *offerRepository) FindWaiting(ctx context.Context, ownerID uuid.UUID, categoryIDs []uuid.UUID) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	query := repo.db.WithContext(ctx).
		Where("owner_id = ? AND active = ? AND status = ?", ownerID, true, entity.StatusWaiting.String())
	if len(categoryIDs) > 0 {
		query = query.Where(categoryOverlap, uuidStrings(categoryIDs))
	}

	if err := query.
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find waiting offers")
	}

	return toOfferDomainList(offerModels), nil
}

// FindByHelpedUser retrieves the active offers whose helped-user list
// contains the given user, via jsonb containment.
func (repo *offerRepository) FindByHelpedUser(ctx context.Context, helpedUserID uuid.UUID) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	member := fmt.Sprintf(`[%q]`, helpedUserID.String())

	if err := repo.db.WithContext(ctx).
		Where("active = ? AND helped_user_ids @> ?::jsonb", true, member).
		Order("created_at DESC").
		Find(&offerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find offers by helped user")
	}

	return toOfferDomainList(offerModels), nil
}

// Update replaces the stored aggregate under the same optimistic version
// discipline as help requests.
func (repo *offerRepository) Update(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)
	now := time.Now()
	offerM.Version = offer.Version + 1
	offerM.UpdatedAt = now

	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ? AND version = ?", offer.ID, offer.Version).
		Select("title", "description", "category_ids", "status", "possible_helped_users",
			"helped_user_ids", "longitude", "latitude", "active", "finished_at", "version", "updated_at").
		Updates(offerM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update offer")
	}

	if result.RowsAffected == 0 {
		var exists int64
		if err := repo.db.WithContext(ctx).
			Model(&model.OfferModel{}).
			Where("id = ?", offer.ID).
			Count(&exists).Error; err != nil {
			return errors.Wrap(err, "failed to check offer existence")
		}
		if exists == 0 {
			return repository.ErrOfferNotFound
		}

		return repository.ErrVersionMismatch
	}

	offer.Version++
	offer.UpdatedAt = now

	return nil
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:                  data.ID,
		OwnerID:             data.OwnerID,
		Title:               data.Title,
		Description:         data.Description,
		CategoryIDs:         data.CategoryIDs,
		Status:              entity.Status(data.Status),
		PossibleHelpedUsers: data.PossibleHelpedUsers,
		HelpedUserIDs:       data.HelpedUserIDs,
		Location:            toPoint(data.Longitude, data.Latitude),
		Active:              data.Active,
		Version:             data.Version,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
		FinishedAt:          data.FinishedAt,
	}
}

func toOfferDomainList(models []*model.OfferModel) []*entity.Offer {
	offers := make([]*entity.Offer, 0, len(models))
	for _, offerM := range models {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	longitude, latitude := fromPoint(data.Location)

	return &model.OfferModel{
		ID:                  data.ID,
		OwnerID:             data.OwnerID,
		Title:               data.Title,
		Description:         data.Description,
		CategoryIDs:         data.CategoryIDs,
		Status:              data.Status.String(),
		PossibleHelpedUsers: data.PossibleHelpedUsers,
		HelpedUserIDs:       data.HelpedUserIDs,
		Longitude:           longitude,
		Latitude:            latitude,
		Active:              data.Active,
		Version:             data.Version,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
		FinishedAt:          data.FinishedAt,
	}
}
