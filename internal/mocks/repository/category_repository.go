package repository

import (
	"context"

	"mutualaid/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCategoryRepository is a mock of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

type MockCategoryRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockCategoryRepository) EXPECT() *MockCategoryRepositoryExpecter {
	return &MockCategoryRepositoryExpecter{mock: &m.Mock}
}

// NewMockCategoryRepository creates a new mock bound to the test lifecycle.
func NewMockCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) FindAllCategories(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)

	var categories []*entity.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]*entity.Category)
	}

	return categories, args.Error(1)
}

func (e *MockCategoryRepositoryExpecter) FindAllCategories(ctx any) *mock.Call {
	return e.mock.On("FindAllCategories", ctx)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)

	var category *entity.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*entity.Category)
	}

	return category, args.Error(1)
}

func (e *MockCategoryRepositoryExpecter) FindCategoryByID(ctx any, id any) *mock.Call {
	return e.mock.On("FindCategoryByID", ctx, id)
}

func (m *MockCategoryRepository) FindCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Category, error) {
	args := m.Called(ctx, ids)

	var categories []*entity.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]*entity.Category)
	}

	return categories, args.Error(1)
}

func (e *MockCategoryRepositoryExpecter) FindCategoriesByIDs(ctx any, ids any) *mock.Call {
	return e.mock.On("FindCategoriesByIDs", ctx, ids)
}
