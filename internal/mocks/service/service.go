// Package service provides testify mocks for the domain service ports.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

type MockPasswordHasherExpecter struct {
	mock *mock.Mock
}

func (m *MockPasswordHasher) EXPECT() *MockPasswordHasherExpecter {
	return &MockPasswordHasherExpecter{mock: &m.Mock}
}

// NewMockPasswordHasher creates a new mock bound to the test lifecycle.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (e *MockPasswordHasherExpecter) Hash(password any) *mock.Call {
	return e.mock.On("Hash", password)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func (e *MockPasswordHasherExpecter) Check(password, hash any) *mock.Call {
	return e.mock.On("Check", password, hash)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

type MockTokenServiceExpecter struct {
	mock *mock.Mock
}

func (m *MockTokenService) EXPECT() *MockTokenServiceExpecter {
	return &MockTokenServiceExpecter{mock: &m.Mock}
}

// NewMockTokenService creates a new mock bound to the test lifecycle.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	args := m.Called(userID)

	return args.String(0), args.String(1), args.Error(2)
}

func (e *MockTokenServiceExpecter) GenerateTokens(userID any) *mock.Call {
	return e.mock.On("GenerateTokens", userID)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (e *MockTokenServiceExpecter) ValidateAccessToken(tokenString any) *mock.Call {
	return e.mock.On("ValidateAccessToken", tokenString)
}

func (m *MockTokenService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	args := m.Called(tokenString, secret)

	var token *jwt.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*jwt.Token)
	}

	return token, args.Error(1)
}

func (e *MockTokenServiceExpecter) ValidateToken(tokenString, secret any) *mock.Call {
	return e.mock.On("ValidateToken", tokenString, secret)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

func (e *MockTokenServiceExpecter) GetRefreshTokenDuration() *mock.Call {
	return e.mock.On("GetRefreshTokenDuration")
}
