package repository

import (
	"context"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

type MockUserRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockUserRepository) EXPECT() *MockUserRepositoryExpecter {
	return &MockUserRepositoryExpecter{mock: &m.Mock}
}

// NewMockUserRepository creates a new mock bound to the test lifecycle.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (e *MockUserRepositoryExpecter) CreateUser(ctx any, user any) *mock.Call {
	return e.mock.On("CreateUser", ctx, user)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)

	var user *entity.User
	if args.Get(0) != nil {
		user = args.Get(0).(*entity.User)
	}

	return user, args.Error(1)
}

func (e *MockUserRepositoryExpecter) FindUserByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindUserByID", ctx, id)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	var user *entity.User
	if args.Get(0) != nil {
		user = args.Get(0).(*entity.User)
	}

	return user, args.Error(1)
}

func (e *MockUserRepositoryExpecter) FindUserByEmail(ctx any, email any) *mock.Call {
	return e.mock.On("FindUserByEmail", ctx, email)
}
