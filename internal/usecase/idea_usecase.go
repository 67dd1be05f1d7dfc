package usecase

import (
	"context"

	"github.com/google/uuid"

	"ideadrop/internal/domain/entity"
)

// IdeaInput defines the data for creating or replacing an idea. The
// same shape serves both operations: updates are full-field
// replacements, never partial.
type IdeaInput struct {
	Title       string  `json:"title"`
	Summary     string  `json:"summary"`
	Description string  `json:"description"`
	Tags        TagList `json:"tags"`
}

// IdeaUsecase defines the interface for idea-related business
// operations. List and Get are public; Create, Update and Delete act
// on behalf of the authenticated user resolved by the auth guard.
type IdeaUsecase interface {
	// List returns ideas newest-created-first, bounded by limit when
	// positive.
	List(ctx context.Context, limit int) ([]*entity.Idea, error)

	// Get resolves a raw id path parameter. A malformed id and a
	// missing record are deliberately indistinguishable.
	Get(ctx context.Context, rawID string) (*entity.Idea, error)

	// Create stores a new idea owned by the acting user.
	Create(ctx context.Context, userID uuid.UUID, input *IdeaInput) (*entity.Idea, error)

	// Update replaces all mutable fields of an owned idea.
	Update(ctx context.Context, userID uuid.UUID, rawID string, input *IdeaInput) (*entity.Idea, error)

	// Delete removes an owned idea permanently.
	Delete(ctx context.Context, userID uuid.UUID, rawID string) error
}
