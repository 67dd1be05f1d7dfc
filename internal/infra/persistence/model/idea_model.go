package model

import (
	"time"

	"github.com/google/uuid"

	"ideadrop/internal/domain/entity"
)

// IdeaModel mirrors a document in the 'ideas' collection.
type IdeaModel struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Summary     string    `bson:"summary"`
	Description string    `bson:"description"`
	Tags        []string  `bson:"tags"`
	UserID      string    `bson:"user_id"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

// CollectionName returns the Mongo collection backing this model.
func (IdeaModel) CollectionName() string {
	return "ideas"
}

// FromIdeaEntity maps a pure domain entity to its persistence model.
func FromIdeaEntity(idea *entity.Idea) *IdeaModel {
	return &IdeaModel{
		ID:          idea.ID.String(),
		Title:       idea.Title,
		Summary:     idea.Summary,
		Description: idea.Description,
		Tags:        idea.Tags,
		UserID:      idea.UserID.String(),
		CreatedAt:   idea.CreatedAt,
		UpdatedAt:   idea.UpdatedAt,
	}
}

// ToEntity maps the persistence model back to a pure domain entity.
func (m *IdeaModel) ToEntity() (*entity.Idea, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(m.UserID)
	if err != nil {
		return nil, err
	}

	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Idea{
		ID:          id,
		Title:       m.Title,
		Summary:     m.Summary,
		Description: m.Description,
		Tags:        tags,
		UserID:      userID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}
