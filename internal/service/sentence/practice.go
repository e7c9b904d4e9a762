package sentence

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/pkg/ctxutil"
)

// RecordPractice registers one practice event: the viewer's progress row is
// created on first contact, XP grows by exactly one, and the next due date
// is recomputed from the new XP. The whole update is transactional.
func (s *Service) RecordPractice(ctx context.Context, sentenceID uuid.UUID) (*domain.Progress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	snt, err := s.sentences.GetByID(ctx, sentenceID)
	if err != nil {
		return nil, fmt.Errorf("get sentence: %w", err)
	}
	if err := mustOwn(snt, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	var saved *domain.Progress
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		progress, err := s.progress.FindOrCreate(ctx, userID, sentenceID)
		if err != nil {
			return fmt.Errorf("find or create progress: %w", err)
		}

		progress.XP++
		progress.LastPracticedAt = &now
		due := nextDueAt(now, progress.XP, progress.Difficult, s.cfg)
		progress.NextDueAt = &due

		saved, err = s.progress.Save(ctx, progress)
		if err != nil {
			return fmt.Errorf("save progress: %w", err)
		}

		if err := s.sentences.TouchLastPracticed(ctx, sentenceID, now); err != nil {
			return fmt.Errorf("touch sentence: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("practice recorded",
		slog.String("sentence_id", sentenceID.String()),
		slog.Int("xp", saved.XP),
	)
	return saved, nil
}

// SetDifficult flags or unflags a sentence as difficult for the viewer.
// Flagging a sentence that has no due date yet schedules it immediately on
// the difficult interval, so it enters the due queue without needing a
// first practice. An existing due date is never touched, and unflagging
// changes nothing but the flag.
func (s *Service) SetDifficult(ctx context.Context, sentenceID uuid.UUID, difficult bool) (*domain.Progress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	snt, err := s.sentences.GetByID(ctx, sentenceID)
	if err != nil {
		return nil, fmt.Errorf("get sentence: %w", err)
	}
	if err := mustOwn(snt, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	var saved *domain.Progress
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		progress, err := s.progress.FindOrCreate(ctx, userID, sentenceID)
		if err != nil {
			return fmt.Errorf("find or create progress: %w", err)
		}

		progress.Difficult = difficult
		if difficult && progress.NextDueAt == nil {
			due := nextDueAt(now, progress.XP, true, s.cfg)
			progress.NextDueAt = &due
		}

		saved, err = s.progress.Save(ctx, progress)
		if err != nil {
			return fmt.Errorf("save progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// mustOwn restricts progress mutations to the sentence's creator. Non-owners
// get ErrNotFound so they cannot tell a foreign sentence from a missing one.
func mustOwn(s *domain.Sentence, userID uuid.UUID) error {
	if s.CreatorID == nil || *s.CreatorID != userID {
		return fmt.Errorf("sentence %s: %w", s.ID, domain.ErrNotFound)
	}
	return nil
}
