package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ideadrop/internal/domain/entity"
)

// MockIdeaRepository is a mock implementation of repository.IdeaRepository.
type MockIdeaRepository struct {
	mock.Mock
}

// NewMockIdeaRepository creates a new mock instance and registers
// expectation assertions with the test's cleanup.
func NewMockIdeaRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockIdeaRepository {
	m := &MockIdeaRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdeaRepository) List(ctx context.Context, limit int) ([]*entity.Idea, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Idea), args.Error(1)
}

func (m *MockIdeaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Idea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Idea), args.Error(1)
}

func (m *MockIdeaRepository) Create(ctx context.Context, idea *entity.Idea) error {
	args := m.Called(ctx, idea)

	return args.Error(0)
}

func (m *MockIdeaRepository) Update(ctx context.Context, idea *entity.Idea) error {
	args := m.Called(ctx, idea)

	return args.Error(0)
}

func (m *MockIdeaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
