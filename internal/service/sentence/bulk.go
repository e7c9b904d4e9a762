package sentence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/pkg/ctxutil"
)

// CreateBulk ingests many sentences at once. Items are processed
// independently: a duplicate lands in Skipped, a failed item lands in
// Errors, and neither stops the rest. Per-word translation is suppressed
// for bulk uploads so a big import cannot drain the daily quota.
func (s *Service) CreateBulk(ctx context.Context, items []BulkItem) (*BulkResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if len(items) == 0 {
		return nil, domain.NewValidationError("sentences", "required")
	}

	texts := make([]string, 0, len(items))
	for _, item := range items {
		texts = append(texts, item.ChineseText)
	}
	existing, err := s.sentences.ExistingTexts(ctx, userID, texts)
	if err != nil {
		return nil, fmt.Errorf("check existing texts: %w", err)
	}
	existingSet := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		existingSet[t] = struct{}{}
	}

	result := &BulkResult{}
	for _, item := range items {
		if strings.TrimSpace(item.ChineseText) == "" {
			result.Errors = append(result.Errors, BulkError{
				Text:    item.ChineseText,
				Message: "chinese_text is required",
			})
			continue
		}
		if _, dup := existingSet[item.ChineseText]; dup {
			result.Skipped = append(result.Skipped, item.ChineseText)
			continue
		}

		created, err := s.Create(ctx, CreateInput{
			ChineseText:         item.ChineseText,
			EnglishTranslation:  item.EnglishTranslation,
			Pinyin:              item.Pinyin,
			DefinedWords:        item.DefinedWords,
			skipWordTranslation: true,
		})
		switch {
		case err == nil:
			result.Added = append(result.Added, created)
			existingSet[item.ChineseText] = struct{}{}
		case errors.Is(err, domain.ErrAlreadyExists):
			result.Skipped = append(result.Skipped, item.ChineseText)
		default:
			s.log.Warn("bulk item failed",
				slog.String("text", item.ChineseText),
				slog.String("error", err.Error()),
			)
			result.Errors = append(result.Errors, BulkError{
				Text:    item.ChineseText,
				Message: err.Error(),
			})
		}
	}

	return result, nil
}

// CheckExisting returns which of the given texts this user already has,
// so the client can mark duplicates before uploading.
func (s *Service) CheckExisting(ctx context.Context, texts []string) ([]string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if len(texts) == 0 {
		return []string{}, nil
	}

	existing, err := s.sentences.ExistingTexts(ctx, userID, texts)
	if err != nil {
		return nil, fmt.Errorf("check existing texts: %w", err)
	}
	return existing, nil
}
