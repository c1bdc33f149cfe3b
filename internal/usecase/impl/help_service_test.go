package impl

import (
	"context"
	"fmt"
	"testing"

	"mutualaid/config"
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

type helpServiceFixture struct {
	helpRepo     *mockRepo.MockHelpRequestRepository
	userRepo     *mockRepo.MockUserRepository
	categoryRepo *mockRepo.MockCategoryRepository
	service      usecase.HelpRequestUsecase
}

func newHelpServiceFixture(t *testing.T) *helpServiceFixture {
	t.Helper()

	helpRepo := mockRepo.NewMockHelpRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	cfg := &config.Config{}
	cfg.MutualAid.MaxActiveHelpRequests = 15

	service := NewHelpService(HelpServiceParams{
		HelpRepo:     helpRepo,
		UserRepo:     userRepo,
		CategoryRepo: categoryRepo,
		TxManager:    mockRepo.NewFakeTransactionManager(helpRepo, nil, userRepo),
		Config:       cfg,
	})

	return &helpServiceFixture{
		helpRepo:     helpRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		service:      service,
	}
}

func TestHelpService_Create_Succeeds(t *testing.T) {
	f := newHelpServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.helpRepo.EXPECT().
		CountActiveByOwner(ctx, ownerID).
		Return(int64(3), nil)

	f.helpRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.HelpRequest")).
		Return(nil)

	help, err := f.service.Create(ctx, ownerID, &usecase.CreateHelpRequestInput{
		Title:       "Move a couch",
		Description: "Need two extra hands",
	})
	require.NoError(t, err)
	require.NotNil(t, help)
	assert.Equal(t, ownerID, help.OwnerID)
	assert.Equal(t, entity.StatusWaiting, help.Status)
	assert.True(t, help.Active)
}

func TestHelpService_Create_RejectsWhenCapReached(t *testing.T) {
	f := newHelpServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.helpRepo.EXPECT().
		CountActiveByOwner(ctx, ownerID).
		Return(int64(15), nil)

	_, err := f.service.Create(ctx, ownerID, &usecase.CreateHelpRequestInput{Title: "One too many"})
	require.Error(t, err)
	assert.Equal(t, fmt.Sprintf("User has reached the maximum number of help requests: %d", 15), err.Error())
}

func TestHelpService_Create_RejectsUnknownCategory(t *testing.T) {
	f := newHelpServiceFixture(t)
	ctx := context.Background()
	categoryID := uuid.New()

	f.categoryRepo.EXPECT().
		FindCategoriesByIDs(ctx, []uuid.UUID{categoryID}).
		Return([]*entity.Category{}, nil)

	_, err := f.service.Create(ctx, uuid.New(), &usecase.CreateHelpRequestInput{
		Title:       "Tagged",
		CategoryIDs: []uuid.UUID{categoryID},
	})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestHelpService_ListWaitingNearby_RanksByDistance(t *testing.T) {
	f := newHelpServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()
	ref := orb.Point{0, 0}

	far := entity.NewHelpRequest(ownerID, "far", "", nil, &orb.Point{0, 5})
	near := entity.NewHelpRequest(ownerID, "near", "", nil, &orb.Point{0, 1})
	mid := entity.NewHelpRequest(ownerID, "mid", "", nil, &orb.Point{0, 3})

	f.helpRepo.EXPECT().
		FindWaiting(ctx, ownerID, []uuid.UUID(nil)).
		Return([]*entity.HelpRequest{far, near, mid}, nil)

	results, err := f.service.ListWaitingNearby(ctx, ownerID, ref, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "near", results[0].Title)
	assert.Equal(t, "mid", results[1].Title)
	assert.Equal(t, "far", results[2].Title)
	assert.Less(t, results[0].DistanceKm, results[2].DistanceKm)
}

func TestHelpService_ListWaitingNearby_EmptyResultIsAnError(t *testing.T) {
	f := newHelpServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.helpRepo.EXPECT().
		FindWaiting(ctx, ownerID, []uuid.UUID(nil)).
		Return([]*entity.HelpRequest{}, nil)

	_, err := f.service.ListWaitingNearby(ctx, ownerID, orb.Point{0, 0}, nil)
	require.Error(t, err)
	assert.Equal(t, "Help requests not found in your distance range", err.Error())
}

func TestHelpService_ListWaitingNearby_RejectsInvalidCoordinates(t *testing.T) {
	f := newHelpServiceFixture(t)

	_, err := f.service.ListWaitingNearby(context.Background(), uuid.New(), orb.Point{200, 0}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrCoordinatesRequired)
}

func TestHelpService_ListByStatuses_RejectsUnknownStatus(t *testing.T) {
	f := newHelpServiceFixture(t)

	_, err := f.service.ListByStatuses(context.Background(), uuid.New(), []string{"waiting", "bogus"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
}

func TestHelpService_ListByStatuses_RequiresStatusList(t *testing.T) {
	f := newHelpServiceFixture(t)

	_, err := f.service.ListByStatuses(context.Background(), uuid.New(), nil)
	require.Error(t, err)
	assert.Equal(t, "Status List is required", err.Error())
}

func TestHelpService_ListByStatuses_EmptyResultIsAnError(t *testing.T) {
	f := newHelpServiceFixture(t)
	ctx := context.Background()
	ownerID := uuid.New()

	f.helpRepo.EXPECT().
		FindByStatuses(ctx, ownerID, []entity.Status{entity.StatusWaiting}).
		Return([]*entity.HelpRequest{}, nil)

	_, err := f.service.ListByStatuses(ctx, ownerID, []string{"waiting"})
	require.Error(t, err)
	assert.Equal(t, "User doesn't have any help requests", err.Error())
}

func TestHelpService_AddPossibleHelper_Succeeds(t *testing.T) {
	f := newHelpServiceFixture(t)
	ctx := context.Background()
	helperID := uuid.New()
	help := entity.NewHelpRequest(uuid.New(), "Move a couch", "", nil, nil)

	f.userRepo.EXPECT().
		FindUserByID(ctx, helperID).
		Return(&entity.User{ID: helperID}, nil)

	f.helpRepo.EXPECT().
		FindByID(ctx, help.ID).
		Return(help, nil)

	f.helpRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HelpRequest")).
		Return(nil)

	updated, err := f.service.AddPossibleHelper(ctx, help.ID, helperID)
	require.NoError(t, err)
	assert.Contains(t, updated.PossibleHelpers, helperID)
}

func TestHelpService_AddPossibleHelper_RejectsUnknownUser(t *testing.T) {
	f := newHelpServiceFixture(t)
	ctx := context.Background()
	helperID := uuid.New()

	f.userRepo.EXPECT().
		FindUserByID(ctx, helperID).
		Return(nil, repository.ErrUserNotFound)

	_, err := f.service.AddPossibleHelper(ctx, uuid.New(), helperID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestHelpService_AddPossibleHelper_UnknownHelpRequest(t *testing.T) {
	f := newHelpServiceFixture(t)
	ctx := context.Background()
	helpID := uuid.New()
	helperID := uuid.New()

	f.userRepo.EXPECT().
		FindUserByID(ctx, helperID).
		Return(&entity.User{ID: helperID}, nil)

	f.helpRepo.EXPECT().
		FindByID(ctx, helpID).
		Return(nil, repository.ErrHelpRequestNotFound)

	_, err := f.service.AddPossibleHelper(ctx, helpID, helperID)
	assert.ErrorIs(t, err, domainerrors.ErrHelpRequestNotFound)
}

func TestHelpService_LostVersionRaceSurfacesAsConflict(t *testing.T) {
	f := newHelpServiceFixture(t)
	ctx := context.Background()
	help := entity.NewHelpRequest(uuid.New(), "Move a couch", "", nil, nil)

	f.helpRepo.EXPECT().
		FindByID(ctx, help.ID).
		Return(help, nil)

	f.helpRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.HelpRequest")).
		Return(repository.ErrVersionMismatch)

	_, err := f.service.Deactivate(ctx, help.ID)
	assert.ErrorIs(t, err, domainerrors.ErrConcurrentModification)
}

func TestHelpService_HelperConfirmation_RejectsNonHelper(t *testing.T) {
	f := newHelpServiceFixture(t)
	ctx := context.Background()
	help := entity.NewHelpRequest(uuid.New(), "Move a couch", "", nil, nil)

	f.helpRepo.EXPECT().
		FindByID(ctx, help.ID).
		Return(help, nil)

	_, err := f.service.HelperConfirmation(ctx, help.ID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotHelper)
}
