// Package model contains the persistence representations of the domain
// entities. Ids are stored as uuid strings in the Mongo _id field so
// documents stay readable and index-friendly.
package model

import (
	"time"

	"github.com/google/uuid"

	"ideadrop/internal/domain/entity"
)

// UserModel mirrors a document in the 'users' collection. The email
// field carries a unique index created at repository construction.
type UserModel struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// CollectionName returns the Mongo collection backing this model.
func (UserModel) CollectionName() string {
	return "users"
}

// FromUserEntity maps a pure domain entity to its persistence model.
func FromUserEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// ToEntity maps the persistence model back to a pure domain entity.
func (m *UserModel) ToEntity() (*entity.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}

	return &entity.User{
		ID:           id,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}
