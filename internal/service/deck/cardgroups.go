package deck

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/pkg/ctxutil"
)

// CardGroupInput holds the editable card group fields.
type CardGroupInput struct {
	Name        string
	Description *string
}

// Validate checks required fields.
func (i *CardGroupInput) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}

// CreateCardGroup creates a new card group for the viewer.
func (s *Service) CreateCardGroup(ctx context.Context, input CardGroupInput) (*domain.CardGroup, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.groups.Create(ctx, &domain.CardGroup{
		Name:        input.Name,
		Description: input.Description,
		CreatorID:   userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create card group: %w", err)
	}
	return created, nil
}

// GetCardGroup returns one of the viewer's card groups with its member
// sentence ids.
func (s *Service) GetCardGroup(ctx context.Context, groupID uuid.UUID) (*domain.CardGroup, []uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, nil, domain.ErrUnauthorized
	}

	g, err := s.groups.GetByID(ctx, userID, groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("get card group: %w", err)
	}

	ids, err := s.groups.SentenceIDs(ctx, groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("card group members: %w", err)
	}
	return g, ids, nil
}

// ListCardGroups returns the viewer's card groups, newest first.
func (s *Service) ListCardGroups(ctx context.Context) ([]domain.CardGroup, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	groups, err := s.groups.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list card groups: %w", err)
	}
	return groups, nil
}

// DeleteCardGroup removes a card group, leaving its sentences in place.
func (s *Service) DeleteCardGroup(ctx context.Context, groupID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.groups.Delete(ctx, userID, groupID); err != nil {
		return fmt.Errorf("delete card group: %w", err)
	}
	return nil
}

// SetCardGroupSentences replaces the group's member set in one transaction.
func (s *Service) SetCardGroupSentences(ctx context.Context, groupID uuid.UUID, sentenceIDs []uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.groups.GetByID(ctx, userID, groupID); err != nil {
		return fmt.Errorf("get card group: %w", err)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.groups.SetSentences(ctx, groupID, sentenceIDs)
	})
	if err != nil {
		return fmt.Errorf("set card group sentences: %w", err)
	}
	return nil
}
