package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"ideadrop/internal/domain/entity"
	domainerrors "ideadrop/internal/domain/errors"
	"ideadrop/internal/domain/repository"
	"ideadrop/internal/usecase"
)

// ideaService implements the IdeaUsecase interface. Mutating
// operations run their checks in a fixed order: authentication (done
// by the guard before this layer), existence, ownership, validation.
type ideaService struct {
	ideaRepo repository.IdeaRepository
	logger   *slog.Logger
}

// IdeaServiceParams holds dependencies for ideaService, injected by Fx.
type IdeaServiceParams struct {
	fx.In

	IdeaRepo repository.IdeaRepository
	Logger   *slog.Logger
}

// NewIdeaService is the constructor for ideaService.
func NewIdeaService(params IdeaServiceParams) usecase.IdeaUsecase {
	return &ideaService{
		ideaRepo: params.IdeaRepo,
		logger:   params.Logger,
	}
}

// List returns ideas newest-created-first, bounded by limit when positive.
func (srv *ideaService) List(ctx context.Context, limit int) ([]*entity.Idea, error) {
	ideas, err := srv.ideaRepo.List(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ideas")
	}

	return ideas, nil
}

// Get resolves a raw id path parameter into an idea. A malformed id is
// reported as not-found, never as a format error.
func (srv *ideaService) Get(ctx context.Context, rawID string) (*entity.Idea, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("Idea not found")
	}

	idea, err := srv.ideaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("Idea not found")
		}

		return nil, errors.Wrap(err, "failed to find idea")
	}

	return idea, nil
}

// Create stores a new idea. The owner is always the acting identity,
// never client-supplied.
func (srv *ideaService) Create(ctx context.Context, userID uuid.UUID, input *usecase.IdeaInput) (*entity.Idea, error) {
	title, summary, description, err := validateIdeaFields(input)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	idea := &entity.Idea{
		ID:          uuid.New(),
		Title:       title,
		Summary:     summary,
		Description: description,
		Tags:        canonicalTags(input.Tags),
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.ideaRepo.Create(ctx, idea); err != nil {
		srv.logger.Error("Failed to create idea", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create idea")
	}

	srv.logger.Debug("Idea created", slog.Any("ideaID", idea.ID), slog.Any("userID", userID))

	return idea, nil
}

// Update replaces all mutable fields of an owned idea. Check order is
// existence, then ownership, then validation.
func (srv *ideaService) Update(ctx context.Context, userID uuid.UUID, rawID string, input *usecase.IdeaInput) (*entity.Idea, error) {
	idea, err := srv.findOwned(ctx, userID, rawID, "update")
	if err != nil {
		return nil, err
	}

	title, summary, description, err := validateIdeaFields(input)
	if err != nil {
		return nil, err
	}

	idea.Title = title
	idea.Summary = summary
	idea.Description = description
	idea.Tags = canonicalTags(input.Tags)
	idea.UpdatedAt = time.Now()

	if err := srv.ideaRepo.Update(ctx, idea); err != nil {
		srv.logger.Error("Failed to update idea", slog.Any("error", err), slog.Any("ideaID", idea.ID))

		return nil, errors.Wrap(err, "failed to update idea")
	}

	return idea, nil
}

// Delete removes an owned idea permanently.
func (srv *ideaService) Delete(ctx context.Context, userID uuid.UUID, rawID string) error {
	idea, err := srv.findOwned(ctx, userID, rawID, "delete")
	if err != nil {
		return err
	}

	if err := srv.ideaRepo.Delete(ctx, idea.ID); err != nil {
		srv.logger.Error("Failed to delete idea", slog.Any("error", err), slog.Any("ideaID", idea.ID))

		return errors.Wrap(err, "failed to delete idea")
	}

	srv.logger.Debug("Idea deleted", slog.Any("ideaID", idea.ID), slog.Any("userID", userID))

	return nil
}

// findOwned resolves the id, confirms the idea exists, then confirms
// ownership. Ownership is only evaluated after existence so a
// non-owner probing a missing id still sees not-found.
func (srv *ideaService) findOwned(ctx context.Context, userID uuid.UUID, rawID, action string) (*entity.Idea, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("Idea not found")
	}

	idea, err := srv.ideaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIdeaNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("Idea not found")
		}

		return nil, errors.Wrap(err, "failed to find idea")
	}

	if !idea.OwnedBy(userID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("Not authorized to " + action + " this idea")
	}

	return idea, nil
}

// validateIdeaFields enforces the required text fields after trimming.
func validateIdeaFields(input *usecase.IdeaInput) (title, summary, description string, err error) {
	title = strings.TrimSpace(input.Title)
	summary = strings.TrimSpace(input.Summary)
	description = strings.TrimSpace(input.Description)

	if title == "" || summary == "" || description == "" {
		return "", "", "", domainerrors.ErrValidation.WrapMessage("Title, summary and description are required")
	}

	return title, summary, description, nil
}

// canonicalTags never stores a nil slice so responses always carry an
// array, even when the client omitted the field entirely.
func canonicalTags(tags usecase.TagList) []string {
	if tags == nil {
		return []string{}
	}

	return tags
}
