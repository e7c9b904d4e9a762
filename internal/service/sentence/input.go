package sentence

import (
	"strings"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

// WordOverride is one user-curated token from the analyze/preview step.
// Empty Pinyin falls back to algorithmic romanization.
type WordOverride struct {
	ChineseWord        string
	Pinyin             string
	EnglishTranslation string
}

// CreateInput holds the parameters for ingesting one sentence.
type CreateInput struct {
	ChineseText        string
	EnglishTranslation string
	// Pinyin is optional; when empty it is derived from the tokens.
	Pinyin        string
	AudioFilename *string
	IsPublic      bool
	// DefinedWords, when present, replaces auto-segmentation with the
	// user's curated token list.
	DefinedWords []WordOverride

	// skipWordTranslation suppresses the per-word translation fetch.
	// Set by the bulk path to conserve quota.
	skipWordTranslation bool
}

// Validate checks required fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ChineseText) == "" {
		errs = append(errs, domain.FieldError{Field: "chinese_text", Message: "required"})
	}
	if strings.TrimSpace(i.EnglishTranslation) == "" {
		errs = append(errs, domain.FieldError{Field: "english_translation", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// BulkItem is one entry of a bulk upload.
type BulkItem struct {
	ChineseText        string
	EnglishTranslation string
	Pinyin             string
	DefinedWords       []WordOverride
}

// UpdateInput holds the mutable sentence fields for an update call.
type UpdateInput struct {
	ChineseText        string
	Pinyin             string
	EnglishTranslation string
	AudioFilename      *string
	IsPublic           bool
}

// Validate checks required fields.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ChineseText) == "" {
		errs = append(errs, domain.FieldError{Field: "chinese_text", Message: "required"})
	}
	if strings.TrimSpace(i.EnglishTranslation) == "" {
		errs = append(errs, domain.FieldError{Field: "english_translation", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// FlashcardsInput holds the parameters for a filtered flashcard listing.
type FlashcardsInput struct {
	DeckID *uuid.UUID
	Filter domain.FlashcardFilter
	Page   int
	Limit  int
}

// normalize applies defaults and clamps values.
func (i *FlashcardsInput) normalize() {
	if i.Filter == "" {
		i.Filter = domain.FlashcardFilterAll
	}
	if i.Page < 1 {
		i.Page = 1
	}
	if i.Limit <= 0 {
		i.Limit = defaultPageSize
	}
	if i.Limit > maxPageSize {
		i.Limit = maxPageSize
	}
}

// Validate checks the filter value.
func (i *FlashcardsInput) Validate() error {
	if i.Filter != "" && !i.Filter.IsValid() {
		return domain.NewValidationError("filter", "must be all, due, or difficult")
	}
	return nil
}
