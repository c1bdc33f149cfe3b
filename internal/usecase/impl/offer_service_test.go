package impl

import (
	"context"
	"testing"

	"mutualaid/internal/domain/entity"
	domainerrors "mutualaid/internal/domain/errors"
	"mutualaid/internal/domain/repository"
	mockRepo "mutualaid/internal/mocks/repository"
	"mutualaid/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type offerServiceFixture struct {
	offerRepo    *mockRepo.MockOfferRepository
	userRepo     *mockRepo.MockUserRepository
	categoryRepo *mockRepo.MockCategoryRepository
	service      usecase.OfferUsecase
}

func newOfferServiceFixture(t *testing.T) *offerServiceFixture {
	t.Helper()

	offerRepo := mockRepo.NewMockOfferRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewOfferService(OfferServiceParams{
		OfferRepo:    offerRepo,
		UserRepo:     userRepo,
		CategoryRepo: categoryRepo,
		TxManager:    mockRepo.NewFakeTransactionManager(nil, offerRepo, userRepo),
	})

	return &offerServiceFixture{
		offerRepo:    offerRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		service:      service,
	}
}

func TestOfferService_Create_Succeeds(t *testing.T) {
	f := newOfferServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.offerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Offer")).
		Return(nil)

	offer, err := f.service.Create(ctx, ownerID, &usecase.CreateHelpRequestInput{
		Title: "Free groceries",
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, offer.OwnerID)
	assert.Equal(t, entity.StatusWaiting, offer.Status)
}

func TestOfferService_ListNearby_EmptyResultIsAnError(t *testing.T) {
	f := newOfferServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.offerRepo.EXPECT().
		FindWaiting(ctx, ownerID, []uuid.UUID(nil)).
		Return([]*entity.Offer{}, nil)

	_, err := f.service.ListNearby(ctx, ownerID, orb.Point{0, 0}, nil)
	require.Error(t, err)
	assert.Equal(t, "Offers not found in your distance range", err.Error())
}

func TestOfferService_ListNearby_RanksByDistance(t *testing.T) {
	f := newOfferServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	far := entity.NewOffer(ownerID, "far", "", nil, &orb.Point{0, 4})
	near := entity.NewOffer(ownerID, "near", "", nil, &orb.Point{0, 1})

	f.offerRepo.EXPECT().
		FindWaiting(ctx, ownerID, []uuid.UUID(nil)).
		Return([]*entity.Offer{far, near}, nil)

	results, err := f.service.ListNearby(ctx, ownerID, orb.Point{0, 0}, nil)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "near", results[0].Title)
	assert.Equal(t, "far", results[1].Title)
}

func TestOfferService_AddPossibleHelpedUser_RejectsOwner(t *testing.T) {
	f := newOfferServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	offer := entity.NewOffer(ownerID, "Free groceries", "", nil, nil)

	f.userRepo.EXPECT().
		FindUserByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID}, nil)

	f.offerRepo.EXPECT().
		FindByID(ctx, offer.ID).
		Return(offer, nil)

	_, err := f.service.AddPossibleHelpedUser(ctx, offer.ID, ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrOwnOffer)
}

func TestOfferService_ChooseHelpedUser_Succeeds(t *testing.T) {
	f := newOfferServiceFixture(t)
	ctx := context.Background()
	candidate := uuid.New()
	offer := entity.NewOffer(uuid.New(), "Free groceries", "", nil, nil)
	require.NoError(t, offer.AddPossibleHelpedUser(candidate))

	f.userRepo.EXPECT().
		FindUserByID(ctx, candidate).
		Return(&entity.User{ID: candidate}, nil)

	f.offerRepo.EXPECT().
		FindByID(ctx, offer.ID).
		Return(offer, nil)

	f.offerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Offer")).
		Return(nil)

	updated, err := f.service.ChooseHelpedUser(ctx, offer.ID, candidate)
	require.NoError(t, err)
	assert.Contains(t, updated.HelpedUserIDs, candidate)
	assert.Equal(t, entity.StatusOnGoing, updated.Status)
}

func TestOfferService_Finish_RejectsNonOwner(t *testing.T) {
	f := newOfferServiceFixture(t)
	ctx := context.Background()
	offer := entity.NewOffer(uuid.New(), "Free groceries", "", nil, nil)

	f.offerRepo.EXPECT().
		FindByID(ctx, offer.ID).
		Return(offer, nil)

	_, err := f.service.Finish(ctx, offer.ID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, "User not authorized", err.Error())
}

func TestOfferService_Finish_Succeeds(t *testing.T) {
	f := newOfferServiceFixture(t)
	ctx := context.Background()
	offer := entity.NewOffer(uuid.New(), "Free groceries", "", nil, nil)

	f.offerRepo.EXPECT().
		FindByID(ctx, offer.ID).
		Return(offer, nil)

	f.offerRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Offer")).
		Return(nil)

	finished, err := f.service.Finish(ctx, offer.ID, offer.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusFinished, finished.Status)
	assert.False(t, finished.Active)
}

func TestOfferService_UnknownOffer(t *testing.T) {
	f := newOfferServiceFixture(t)
	ctx := context.Background()
	offerID := uuid.New()

	f.offerRepo.EXPECT().
		FindByID(ctx, offerID).
		Return(nil, repository.ErrOfferNotFound)

	_, err := f.service.Finish(ctx, offerID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrOfferNotFound)
}
