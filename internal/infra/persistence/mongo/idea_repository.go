package mongo

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ideadrop/internal/domain/entity"
	"ideadrop/internal/domain/repository"
	"ideadrop/internal/infra/persistence/model"
)

// ideaRepository implements the repository.IdeaRepository interface on
// top of the 'ideas' collection.
type ideaRepository struct {
	col *mongo.Collection
}

// NewIdeaRepository is the constructor for ideaRepository.
func NewIdeaRepository(db *mongo.Database) repository.IdeaRepository {
	return &ideaRepository{col: db.Collection(model.IdeaModel{}.CollectionName())}
}

// List retrieves ideas ordered newest-created-first. A non-positive
// limit returns every document.
func (repo *ideaRepository) List(ctx context.Context, limit int) ([]*entity.Idea, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := repo.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ideas")
	}
	defer cur.Close(ctx)

	ideas := []*entity.Idea{}
	for cur.Next(ctx) {
		var ideaM model.IdeaModel
		if err := cur.Decode(&ideaM); err != nil {
			return nil, errors.Wrap(err, "failed to decode idea")
		}

		idea, err := ideaM.ToEntity()
		if err != nil {
			return nil, errors.Wrap(err, "failed to map idea document")
		}
		ideas = append(ideas, idea)
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate ideas")
	}

	return ideas, nil
}

// FindByID retrieves a single idea by its unique ID.
func (repo *ideaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Idea, error) {
	var ideaM model.IdeaModel
	if err := repo.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&ideaM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrIdeaNotFound
		}

		return nil, errors.Wrap(err, "failed to find idea by id")
	}

	return ideaM.ToEntity()
}

// Create persists a new idea document.
func (repo *ideaRepository) Create(ctx context.Context, idea *entity.Idea) error {
	if _, err := repo.col.InsertOne(ctx, model.FromIdeaEntity(idea)); err != nil {
		return errors.Wrap(err, "failed to create idea")
	}

	return nil
}

// Update replaces the stored document with the given idea's fields.
// Updates are full-field replacements; there is no partial update path.
func (repo *ideaRepository) Update(ctx context.Context, idea *entity.Idea) error {
	res, err := repo.col.ReplaceOne(ctx, bson.M{"_id": idea.ID.String()}, model.FromIdeaEntity(idea))
	if err != nil {
		return errors.Wrap(err, "failed to update idea")
	}
	if res.MatchedCount == 0 {
		return repository.ErrIdeaNotFound
	}

	return nil
}

// Delete removes an idea permanently.
func (repo *ideaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := repo.col.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to delete idea")
	}
	if res.DeletedCount == 0 {
		return repository.ErrIdeaNotFound
	}

	return nil
}
