package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deck is a named, user-owned collection of sentences.
// Membership is replace-all on update: the caller sends the full sentence
// id set and the previous set is discarded.
type Deck struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatorID   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CardGroup is a second, independent grouping of sentences.
// Same ownership and membership semantics as Deck.
type CardGroup struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatorID   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
