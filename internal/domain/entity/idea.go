package entity

import (
	"time"

	"github.com/google/uuid"
)

// Idea is a user-authored record. The owning user reference is set at
// creation time and immutable afterwards; only the owner may mutate or
// delete the record.
type Idea struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	UserID      uuid.UUID `json:"user"`      // The owning user. Immutable once set.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the given identity owns this idea.
// Ownership is value equality on the opaque user id, never a string
// comparison.
func (i *Idea) OwnedBy(userID uuid.UUID) bool {
	return i.UserID == userID
}
