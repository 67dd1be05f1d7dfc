// Package usecase contains testify mocks for the usecase interfaces
// consumed by the handler tests.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ideadrop/internal/domain/entity"
	"ideadrop/internal/usecase"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a new mock instance and registers
// expectation assertions with the test's cleanup.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SessionOutput), args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SessionOutput), args.Error(1)
}

func (m *MockAuthUsecase) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RefreshOutput), args.Error(1)
}

// MockIdeaUsecase is a mock implementation of usecase.IdeaUsecase.
type MockIdeaUsecase struct {
	mock.Mock
}

// NewMockIdeaUsecase creates a new mock instance and registers
// expectation assertions with the test's cleanup.
func NewMockIdeaUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdeaUsecase {
	m := &MockIdeaUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdeaUsecase) List(ctx context.Context, limit int) ([]*entity.Idea, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Idea), args.Error(1)
}

func (m *MockIdeaUsecase) Get(ctx context.Context, rawID string) (*entity.Idea, error) {
	args := m.Called(ctx, rawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Idea), args.Error(1)
}

func (m *MockIdeaUsecase) Create(ctx context.Context, userID uuid.UUID, input *usecase.IdeaInput) (*entity.Idea, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Idea), args.Error(1)
}

func (m *MockIdeaUsecase) Update(ctx context.Context, userID uuid.UUID, rawID string, input *usecase.IdeaInput) (*entity.Idea, error) {
	args := m.Called(ctx, userID, rawID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Idea), args.Error(1)
}

func (m *MockIdeaUsecase) Delete(ctx context.Context, userID uuid.UUID, rawID string) error {
	args := m.Called(ctx, userID, rawID)

	return args.Error(0)
}
