package word

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/pkg/ctxutil"
)

// UpdateInput holds the editable word fields.
type UpdateInput struct {
	Pinyin             string
	EnglishTranslation string
	Description        *string
	AudioFilename      *string
}

// Validate checks required fields.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Pinyin) == "" {
		errs = append(errs, domain.FieldError{Field: "pinyin", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Get returns one word by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	w, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	return w, nil
}

// GetBySurface returns one word by its Chinese surface form.
func (s *Service) GetBySurface(ctx context.Context, chineseWord string) (*domain.Word, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(chineseWord) == "" {
		return nil, domain.NewValidationError("chinese_word", "required")
	}

	w, err := s.words.GetBySurface(ctx, chineseWord)
	if err != nil {
		return nil, fmt.Errorf("get word by surface: %w", err)
	}
	return w, nil
}

// List returns the words the viewer first introduced, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	words, err := s.words.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// Update edits a word's annotation fields. Words are shared across all
// sentences containing them, so the edit is visible everywhere; last
// writer wins.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Word, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.words.Update(ctx, id, domain.WordUpdate{
		Pinyin:             input.Pinyin,
		EnglishTranslation: input.EnglishTranslation,
		Description:        input.Description,
		AudioFilename:      input.AudioFilename,
	})
	if err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}
	return updated, nil
}

// Delete removes a word from the vocabulary. Sentence associations
// referencing it cascade away.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	if err := s.words.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	return nil
}

// Teach adds a surface form to the segmenter dictionary so future
// segmentation keeps it whole.
func (s *Service) Teach(ctx context.Context, surfaceForm string) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if strings.TrimSpace(surfaceForm) == "" {
		return domain.NewValidationError("chinese_word", "required")
	}

	s.seg.InsertWord(surfaceForm)
	return nil
}
