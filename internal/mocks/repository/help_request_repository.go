// Package repository provides testify mocks for the domain repository ports.
package repository

import (
	"context"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockHelpRequestRepository is a mock of repository.HelpRequestRepository.
type MockHelpRequestRepository struct {
	mock.Mock
}

type MockHelpRequestRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockHelpRequestRepository) EXPECT() *MockHelpRequestRepositoryExpecter {
	return &MockHelpRequestRepositoryExpecter{mock: &m.Mock}
}

// NewMockHelpRequestRepository creates a new mock bound to the test lifecycle.
func NewMockHelpRequestRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHelpRequestRepository {
	m := &MockHelpRequestRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockHelpRequestRepository) Create(ctx context.Context, help *entity.HelpRequest) error {
	args := m.Called(ctx, help)

	return args.Error(0)
}

func (e *MockHelpRequestRepositoryExpecter) Create(ctx any, help any) *mock.Call {
	return e.mock.On("Create", ctx, help)
}

func (m *MockHelpRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HelpRequest, error) {
	args := m.Called(ctx, id)

	var help *entity.HelpRequest
	if args.Get(0) != nil {
		help = args.Get(0).(*entity.HelpRequest)
	}

	return help, args.Error(1)
}

func (e *MockHelpRequestRepositoryExpecter) FindByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (m *MockHelpRequestRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.HelpRequest, error) {
	args := m.Called(ctx, ownerID)

	var helps []*entity.HelpRequest
	if args.Get(0) != nil {
		helps = args.Get(0).([]*entity.HelpRequest)
	}

	return helps, args.Error(1)
}

func (e *MockHelpRequestRepositoryExpecter) FindByOwner(ctx any, ownerID any) *mock.Call {
	return e.mock.On("FindByOwner", ctx, ownerID)
}

func (m *MockHelpRequestRepository) FindWaiting(ctx context.Context, ownerID uuid.UUID, categoryIDs []uuid.UUID) ([]*entity.HelpRequest, error) {
	args := m.Called(ctx, ownerID, categoryIDs)

	var helps []*entity.HelpRequest
	if args.Get(0) != nil {
		helps = args.Get(0).([]*entity.HelpRequest)
	}

	return helps, args.Error(1)
}

func (e *MockHelpRequestRepositoryExpecter) FindWaiting(ctx, ownerID, categoryIDs any) *mock.Call {
	return e.mock.On("FindWaiting", ctx, ownerID, categoryIDs)
}

func (m *MockHelpRequestRepository) CountActiveByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)

	return args.Get(0).(int64), args.Error(1)
}

func (e *MockHelpRequestRepositoryExpecter) CountActiveByOwner(ctx any, ownerID any) *mock.Call {
	return e.mock.On("CountActiveByOwner", ctx, ownerID)
}

func (m *MockHelpRequestRepository) FindByStatuses(ctx context.Context, ownerID uuid.UUID, statuses []entity.Status) ([]*entity.HelpRequest, error) {
	args := m.Called(ctx, ownerID, statuses)

	var helps []*entity.HelpRequest
	if args.Get(0) != nil {
		helps = args.Get(0).([]*entity.HelpRequest)
	}

	return helps, args.Error(1)
}

func (e *MockHelpRequestRepositoryExpecter) FindByStatuses(ctx, ownerID, statuses any) *mock.Call {
	return e.mock.On("FindByStatuses", ctx, ownerID, statuses)
}

func (m *MockHelpRequestRepository) Update(ctx context.Context, help *entity.HelpRequest) error {
	args := m.Called(ctx, help)

	return args.Error(0)
}

func (e *MockHelpRequestRepositoryExpecter) Update(ctx any, help any) *mock.Call {
	return e.mock.On("Update", ctx, help)
}
