package mongo

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ideadrop/internal/domain/entity"
	"ideadrop/internal/domain/lifecycle"
	"ideadrop/internal/domain/repository"
	"ideadrop/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface on
// top of the 'users' collection.
type userRepository struct {
	col *mongo.Collection
}

// NewUserRepository is the constructor for userRepository. It ensures
// the unique index on email exists; the store, not application-level
// coordination, resolves concurrent registrations with the same email.
func NewUserRepository(db *mongo.Database) (repository.UserRepository, error) {
	col := db.Collection(model.UserModel{}.CollectionName())

	indexCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	_, err := col.Indexes().CreateOne(indexCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to ensure unique email index")
	}

	return &userRepository{col: col}, nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.col.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return userM.ToEntity()
}

// FindByEmail retrieves a single user by their email address. The
// caller normalizes the email; the lookup itself is exact.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.col.FindOne(ctx, bson.M{"email": email}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return userM.ToEntity()
}

// Create persists a new user document. A duplicate-key rejection from
// the unique email index maps to repository.ErrDuplicateEmail so the
// auth flow can treat the registration race as a duplicate email.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := repo.col.InsertOne(ctx, model.FromUserEntity(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}
