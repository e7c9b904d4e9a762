package sentence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/pkg/ctxutil"
)

// canAccess reports whether the user may read the sentence: owners always,
// everyone else only when it is public.
func canAccess(s *domain.Sentence, userID uuid.UUID) error {
	if s.CreatorID != nil && *s.CreatorID == userID {
		return nil
	}
	if s.IsPublic {
		return nil
	}
	return domain.ErrForbidden
}

// Get returns one sentence with the viewer's progress attached.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.SentenceView, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	snt, err := s.sentences.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sentence: %w", err)
	}
	if err := canAccess(snt, userID); err != nil {
		return nil, err
	}

	progressBySentence, err := s.progressFor(ctx, userID, []domain.Sentence{*snt})
	if err != nil {
		return nil, err
	}

	return &domain.SentenceView{
		Sentence: *snt,
		Progress: progressBySentence[snt.ID],
	}, nil
}

// Words returns the sentence's vocabulary in token order.
func (s *Service) Words(ctx context.Context, id uuid.UUID) ([]domain.WordAtPosition, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	snt, err := s.sentences.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sentence: %w", err)
	}
	if err := canAccess(snt, userID); err != nil {
		return nil, err
	}

	words, err := s.sentences.GetWords(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sentence words: %w", err)
	}
	return words, nil
}

// List returns one page of the viewer's sentences with progress attached,
// newest-practiced first, optionally narrowed to a deck.
func (s *Service) List(ctx context.Context, params domain.SentenceListParams) (*domain.SentencePage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if params.Limit <= 0 {
		params.Limit = defaultPageSize
	}
	if params.Limit > maxPageSize {
		params.Limit = maxPageSize
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	sentences, total, err := s.sentences.ListByCreator(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("list sentences: %w", err)
	}

	progressBySentence, err := s.progressFor(ctx, userID, sentences)
	if err != nil {
		return nil, err
	}

	views := make([]domain.SentenceView, len(sentences))
	for i, snt := range sentences {
		views[i] = domain.SentenceView{Sentence: snt, Progress: progressBySentence[snt.ID]}
	}

	page := params.Offset/params.Limit + 1
	return &domain.SentencePage{
		Sentences: views,
		Total:     total,
		Page:      page,
		HasMore:   params.Offset+len(sentences) < total,
	}, nil
}

// Update edits a sentence's text fields. Only the owner may edit; word
// associations are left as they are, re-segmentation requires re-ingesting.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Sentence, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	snt, err := s.sentences.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sentence: %w", err)
	}
	if snt.CreatorID == nil || *snt.CreatorID != userID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.sentences.Update(ctx, id, domain.SentenceUpdate{
		ChineseText:        input.ChineseText,
		Pinyin:             input.Pinyin,
		EnglishTranslation: input.EnglishTranslation,
		AudioFilename:      input.AudioFilename,
		IsPublic:           input.IsPublic,
	})
	if err != nil {
		return nil, fmt.Errorf("update sentence: %w", err)
	}
	return updated, nil
}

// Delete removes a sentence and, via cascade, its word associations and
// progress rows. It returns the audio filename, if any, so the caller can
// remove the file from storage after the row is gone.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	snt, err := s.sentences.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get sentence: %w", err)
	}
	if snt.CreatorID == nil || *snt.CreatorID != userID {
		return nil, domain.ErrForbidden
	}

	if err := s.sentences.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete sentence: %w", err)
	}

	s.log.Info("sentence deleted", slog.String("sentence_id", id.String()))
	return snt.AudioFilename, nil
}

// DeleteAll removes every sentence the viewer owns and returns how many
// went away. Shared vocabulary words stay.
func (s *Service) DeleteAll(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	deleted, err := s.sentences.DeleteByCreator(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("delete sentences: %w", err)
	}

	s.log.Info("all sentences deleted",
		slog.String("user_id", userID.String()),
		slog.Int("count", deleted),
	)
	return deleted, nil
}
