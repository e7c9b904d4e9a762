// Package deck implements sentence grouping: decks for study scoping and
// card groups for ad-hoc collections. Both share ownership rules and
// replace-all membership updates.
package deck

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

type deckRepo interface {
	Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error)
	GetByID(ctx context.Context, creatorID, deckID uuid.UUID) (*domain.Deck, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Deck, error)
	Update(ctx context.Context, creatorID, deckID uuid.UUID, name string, description *string) (*domain.Deck, error)
	Delete(ctx context.Context, creatorID, deckID uuid.UUID) error
	SetSentences(ctx context.Context, deckID uuid.UUID, sentenceIDs []uuid.UUID) error
	SentenceIDs(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error)
}

type cardGroupRepo interface {
	Create(ctx context.Context, g *domain.CardGroup) (*domain.CardGroup, error)
	GetByID(ctx context.Context, creatorID, groupID uuid.UUID) (*domain.CardGroup, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.CardGroup, error)
	Delete(ctx context.Context, creatorID, groupID uuid.UUID) error
	SetSentences(ctx context.Context, groupID uuid.UUID, sentenceIDs []uuid.UUID) error
	SentenceIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides deck and card group management.
type Service struct {
	decks  deckRepo
	groups cardGroupRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new deck service.
func NewService(log *slog.Logger, decks deckRepo, groups cardGroupRepo, tx txManager) *Service {
	return &Service{
		decks:  decks,
		groups: groups,
		tx:     tx,
		log:    log.With("service", "deck"),
	}
}
