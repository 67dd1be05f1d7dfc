package repository

import (
	"context"
	"errors"

	"ideadrop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrIdeaNotFound is a domain-specific error returned when an idea is not found.
var ErrIdeaNotFound = errors.New("idea not found")

// IdeaRepository defines the standard operations for idea persistence.
type IdeaRepository interface {
	// List retrieves ideas ordered newest-created-first. A limit of
	// zero or less returns all records.
	List(ctx context.Context, limit int) ([]*entity.Idea, error)

	// FindByID retrieves a single idea by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Idea, error)

	// Create persists a new idea entity to the storage.
	Create(ctx context.Context, idea *entity.Idea) error

	// Update replaces an existing idea's stored fields.
	Update(ctx context.Context, idea *entity.Idea) error

	// Delete removes an idea permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
