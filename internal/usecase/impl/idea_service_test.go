package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ideadrop/internal/domain/entity"
	domainerrors "ideadrop/internal/domain/errors"
	"ideadrop/internal/domain/repository"
	mockRepo "ideadrop/internal/mocks/repository"
	"ideadrop/internal/usecase"
)

// ideaServiceFixtures holds all test dependencies for idea service tests.
type ideaServiceFixtures struct {
	service  usecase.IdeaUsecase
	ideaRepo *mockRepo.MockIdeaRepository
}

func createTestIdeaService(t *testing.T) ideaServiceFixtures {
	ideaRepo := mockRepo.NewMockIdeaRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewIdeaService(IdeaServiceParams{
		IdeaRepo: ideaRepo,
		Logger:   logger,
	})

	return ideaServiceFixtures{
		service:  service,
		ideaRepo: ideaRepo,
	}
}

func ownedIdea(owner uuid.UUID) *entity.Idea {
	return &entity.Idea{
		ID:          uuid.New(),
		Title:       "Original title",
		Summary:     "Original summary",
		Description: "Original description",
		Tags:        []string{"original"},
		UserID:      owner,
		CreatedAt:   time.Now().Add(-time.Hour),
		UpdatedAt:   time.Now().Add(-time.Hour),
	}
}

func validIdeaInput() *usecase.IdeaInput {
	return &usecase.IdeaInput{
		Title:       "  New title ",
		Summary:     "New summary",
		Description: "New description",
		Tags:        usecase.TagList{"go", "api"},
	}
}

func TestIdeaService_List_PassesLimit(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()

	ideas := []*entity.Idea{ownedIdea(uuid.New()), ownedIdea(uuid.New())}
	fx.ideaRepo.On("List", ctx, 2).Return(ideas, nil)

	got, err := fx.service.List(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, ideas, got)
}

func TestIdeaService_Get_Success(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()

	idea := ownedIdea(uuid.New())
	fx.ideaRepo.On("FindByID", ctx, idea.ID).Return(idea, nil)

	got, err := fx.service.Get(ctx, idea.ID.String())
	require.NoError(t, err)
	assert.Equal(t, idea, got)
}

func TestIdeaService_Get_MalformedIDIsNotFound(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()

	// A malformed id is a not-found, never a validation error.
	got, err := fx.service.Get(ctx, "not-an-id")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.NotErrorIs(t, err, domainerrors.ErrValidation)
}

func TestIdeaService_Get_MissingRecord(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.ideaRepo.On("FindByID", ctx, id).Return(nil, repository.ErrIdeaNotFound)

	got, err := fx.service.Get(ctx, id.String())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestIdeaService_Create_Success(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()
	owner := uuid.New()

	fx.ideaRepo.On("Create", ctx, mock.AnythingOfType("*entity.Idea")).
		Run(func(args mock.Arguments) {
			idea := args.Get(1).(*entity.Idea)
			assert.Equal(t, "New title", idea.Title)
			assert.Equal(t, "New summary", idea.Summary)
			assert.Equal(t, "New description", idea.Description)
			assert.Equal(t, []string{"go", "api"}, idea.Tags)
			// Owner comes from the acting identity, never the input.
			assert.Equal(t, owner, idea.UserID)
		}).
		Return(nil)

	idea, err := fx.service.Create(ctx, owner, validIdeaInput())
	require.NoError(t, err)
	assert.Equal(t, owner, idea.UserID)
}

func TestIdeaService_Create_NilTagsBecomeEmpty(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()

	input := validIdeaInput()
	input.Tags = nil

	fx.ideaRepo.On("Create", ctx, mock.AnythingOfType("*entity.Idea")).Return(nil)

	idea, err := fx.service.Create(ctx, uuid.New(), input)
	require.NoError(t, err)
	assert.NotNil(t, idea.Tags)
	assert.Empty(t, idea.Tags)
}

func TestIdeaService_Create_MissingFields(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()

	for _, input := range []*usecase.IdeaInput{
		{Title: "", Summary: "s", Description: "d"},
		{Title: "t", Summary: "   ", Description: "d"},
		{Title: "t", Summary: "s", Description: ""},
	} {
		idea, err := fx.service.Create(ctx, uuid.New(), input)
		assert.Nil(t, idea)
		assert.ErrorIs(t, err, domainerrors.ErrValidation)
	}
}

func TestIdeaService_Update_Success(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()
	owner := uuid.New()
	existing := ownedIdea(owner)

	fx.ideaRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	fx.ideaRepo.On("Update", ctx, mock.AnythingOfType("*entity.Idea")).
		Run(func(args mock.Arguments) {
			idea := args.Get(1).(*entity.Idea)
			// Full replacement: every mutable field is overwritten.
			assert.Equal(t, "New title", idea.Title)
			assert.Equal(t, "New summary", idea.Summary)
			assert.Equal(t, "New description", idea.Description)
			assert.Equal(t, []string{"go", "api"}, idea.Tags)
			// The owner reference never changes.
			assert.Equal(t, owner, idea.UserID)
		}).
		Return(nil)

	idea, err := fx.service.Update(ctx, owner, existing.ID.String(), validIdeaInput())
	require.NoError(t, err)
	assert.Equal(t, "New title", idea.Title)
}

func TestIdeaService_Update_NotOwner(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()
	existing := ownedIdea(uuid.New())

	fx.ideaRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)

	idea, err := fx.service.Update(ctx, uuid.New(), existing.ID.String(), validIdeaInput())
	assert.Nil(t, idea)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestIdeaService_Update_MalformedID(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()

	idea, err := fx.service.Update(ctx, uuid.New(), "not-an-id", validIdeaInput())
	assert.Nil(t, idea)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestIdeaService_Update_OwnershipCheckedBeforeValidation(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()
	existing := ownedIdea(uuid.New())

	fx.ideaRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)

	// A non-owner with an invalid body still sees Forbidden, not a
	// validation error: the check order is fixed.
	idea, err := fx.service.Update(ctx, uuid.New(), existing.ID.String(), &usecase.IdeaInput{})
	assert.Nil(t, idea)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestIdeaService_Update_OwnerWithInvalidBody(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()
	owner := uuid.New()
	existing := ownedIdea(owner)

	fx.ideaRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)

	idea, err := fx.service.Update(ctx, owner, existing.ID.String(), &usecase.IdeaInput{})
	assert.Nil(t, idea)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestIdeaService_Delete_Success(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()
	owner := uuid.New()
	existing := ownedIdea(owner)

	fx.ideaRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	fx.ideaRepo.On("Delete", ctx, existing.ID).Return(nil)

	err := fx.service.Delete(ctx, owner, existing.ID.String())
	assert.NoError(t, err)
}

func TestIdeaService_Delete_NotOwner(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()
	existing := ownedIdea(uuid.New())

	fx.ideaRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)

	err := fx.service.Delete(ctx, uuid.New(), existing.ID.String())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	fx.ideaRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestIdeaService_Delete_MissingRecord(t *testing.T) {
	fx := createTestIdeaService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.ideaRepo.On("FindByID", ctx, id).Return(nil, repository.ErrIdeaNotFound)

	err := fx.service.Delete(ctx, uuid.New(), id.String())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
