package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/pkg/ctxutil"
)

// DeckInput holds the editable deck fields.
type DeckInput struct {
	Name        string
	Description *string
}

// Validate checks required fields.
func (i *DeckInput) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}

// CreateDeck creates a new deck for the viewer.
func (s *Service) CreateDeck(ctx context.Context, input DeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.decks.Create(ctx, &domain.Deck{
		Name:        input.Name,
		Description: input.Description,
		CreatorID:   userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create deck: %w", err)
	}
	return created, nil
}

// GetDeck returns one of the viewer's decks with its member sentence ids.
func (s *Service) GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, []uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}

	d, err := s.decks.GetByID(ctx, userID, deckID)
	if err != nil {
		return nil, nil, fmt.Errorf("get deck: %w", err)
	}

	ids, err := s.decks.SentenceIDs(ctx, deckID)
	if err != nil {
		return nil, nil, fmt.Errorf("deck members: %w", err)
	}
	return d, ids, nil
}

// ListDecks returns the viewer's decks, newest first.
func (s *Service) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	decks, err := s.decks.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// UpdateDeck renames a deck.
func (s *Service) UpdateDeck(ctx context.Context, deckID uuid.UUID, input DeckInput) (*domain.Deck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.decks.Update(ctx, userID, deckID, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("update deck: %w", err)
	}
	return updated, nil
}

// DeleteDeck removes a deck. Its sentences stay; only the grouping goes.
func (s *Service) DeleteDeck(ctx context.Context, deckID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.decks.Delete(ctx, userID, deckID); err != nil {
		return fmt.Errorf("delete deck: %w", err)
	}
	return nil
}

// SetDeckSentences replaces the deck's member set in one transaction.
func (s *Service) SetDeckSentences(ctx context.Context, deckID uuid.UUID, sentenceIDs []uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	// Ownership check before touching membership.
	if _, err := s.decks.GetByID(ctx, userID, deckID); err != nil {
		return fmt.Errorf("get deck: %w", err)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.decks.SetSentences(ctx, deckID, sentenceIDs)
	})
	if err != nil {
		return fmt.Errorf("set deck sentences: %w", err)
	}
	return nil
}
