package repository

import (
	"context"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockOfferRepository is a mock of repository.OfferRepository.
type MockOfferRepository struct {
	mock.Mock
}

type MockOfferRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockOfferRepository) EXPECT() *MockOfferRepositoryExpecter {
	return &MockOfferRepositoryExpecter{mock: &m.Mock}
}

// NewMockOfferRepository creates a new mock bound to the test lifecycle.
func NewMockOfferRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOfferRepository {
	m := &MockOfferRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOfferRepository) Create(ctx context.Context, offer *entity.Offer) error {
	args := m.Called(ctx, offer)

	return args.Error(0)
}

func (e *MockOfferRepositoryExpecter) Create(ctx any, offer any) *mock.Call {
	return e.mock.On("Create", ctx, offer)
}

func (m *MockOfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	args := m.Called(ctx, id)

	var offer *entity.Offer
	if args.Get(0) != nil {
		offer = args.Get(0).(*entity.Offer)
	}

	return offer, args.Error(1)
}

func (e *MockOfferRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (m *MockOfferRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Offer, error) {
	args := m.Called(ctx, ownerID)

	var offers []*entity.Offer
	if args.Get(0) != nil {
		offers = args.Get(0).([]*entity.Offer)
	}

	return offers, args.Error(1)
}

func (e *MockOfferRepositoryExpecter) FindByOwner(ctx any, ownerID any) *mock.Call {
	return e.mock.On("FindByOwner", ctx, ownerID)
}

func (m *MockOfferRepository) FindWaiting(ctx context.Context, ownerID uuid.UUID, categoryIDs []uuid.UUID) ([]*entity.Offer, error) {
	args := m.Called(ctx, ownerID, categoryIDs)

	var offers []*entity.Offer
	if args.Get(0) != nil {
		offers = args.Get(0).([]*entity.Offer)
	}

	return offers, args.Error(1)
}

func (e *MockOfferRepositoryExpecter) FindWaiting(ctx, ownerID, categoryIDs any) *mock.Call {
	return e.mock.On("FindWaiting", ctx, ownerID, categoryIDs)
}

func (m *MockOfferRepository) FindByHelpedUser(ctx context.Context, helpedUserID uuid.UUID) ([]*entity.Offer, error) {
	args := m.Called(ctx, helpedUserID)

	var offers []*entity.Offer
	if args.Get(0) != nil {
		offers = args.Get(0).([]*entity.Offer)
	}

	return offers, args.Error(1)
}

func (e *MockOfferRepositoryExpecter) FindByHelpedUser(ctx any, helpedUserID any) *mock.Call {
	return e.mock.On("FindByHelpedUser", ctx, helpedUserID)
}

func (m *MockOfferRepository) Update(ctx context.Context, offer *entity.Offer) error {
	args := m.Called(ctx, offer)

	return args.Error(0)
}

func (e *MockOfferRepositoryExpecter) Update(ctx any, offer any) *mock.Call {
	return e.mock.On("Update", ctx, offer)
}
