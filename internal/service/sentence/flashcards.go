package sentence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/pkg/ctxutil"
)

// Flashcards returns one page of the viewer's sentences enriched with
// progress, filtered for a study session.
//
// Pagination happens at the database before the filter is applied, and
// Total/HasMore describe the unfiltered set: a "due" page can therefore
// hold fewer than Limit cards while more pages remain. Clients page until
// HasMore is false rather than until a page comes back short.
func (s *Service) Flashcards(ctx context.Context, input FlashcardsInput) (*domain.SentencePage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.normalize()

	sentences, total, err := s.sentences.ListByCreator(ctx, userID, domain.SentenceListParams{
		DeckID: input.DeckID,
		Limit:  input.Limit,
		Offset: (input.Page - 1) * input.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list sentences: %w", err)
	}

	progressBySentence, err := s.progressFor(ctx, userID, sentences)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]domain.SentenceView, 0, len(sentences))
	for _, snt := range sentences {
		p := progressBySentence[snt.ID]
		if !matchesFilter(input.Filter, p, now) {
			continue
		}
		views = append(views, domain.SentenceView{Sentence: snt, Progress: p})
	}

	return &domain.SentencePage{
		Sentences: views,
		Total:     total,
		Page:      input.Page,
		HasMore:   input.Page*input.Limit < total,
	}, nil
}

// FlashcardCounts computes the per-filter sentence counts in one pass over
// the viewer's whole collection, so the UI can label its filter tabs.
func (s *Service) FlashcardCounts(ctx context.Context, deckID *uuid.UUID) (*domain.FlashcardCounts, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sentences, _, err := s.sentences.ListByCreator(ctx, userID, domain.SentenceListParams{DeckID: deckID})
	if err != nil {
		return nil, fmt.Errorf("list sentences: %w", err)
	}

	progressBySentence, err := s.progressFor(ctx, userID, sentences)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	counts := &domain.FlashcardCounts{All: len(sentences)}
	for _, snt := range sentences {
		p := progressBySentence[snt.ID]
		if p.IsDue(now) {
			counts.Due++
		}
		if p != nil && p.Difficult {
			counts.Difficult++
		}
	}
	return counts, nil
}

// progressFor loads the viewer's progress rows for the given sentences,
// keyed by sentence ID. Sentences without a row are simply absent.
func (s *Service) progressFor(ctx context.Context, userID uuid.UUID, sentences []domain.Sentence) (map[uuid.UUID]*domain.Progress, error) {
	if len(sentences) == 0 {
		return map[uuid.UUID]*domain.Progress{}, nil
	}

	ids := make([]uuid.UUID, len(sentences))
	for i, snt := range sentences {
		ids[i] = snt.ID
	}

	rows, err := s.progress.GetBySentenceIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.Progress, len(rows))
	for i := range rows {
		byID[rows[i].SentenceID] = &rows[i]
	}
	return byID, nil
}

// matchesFilter applies a flashcard filter to one sentence's progress.
// A nil progress means never practiced: due for "due", excluded for
// "difficult".
func matchesFilter(filter domain.FlashcardFilter, p *domain.Progress, now time.Time) bool {
	switch filter {
	case domain.FlashcardFilterDue:
		return p.IsDue(now)
	case domain.FlashcardFilterDifficult:
		return p != nil && p.Difficult
	default:
		return true
	}
}
