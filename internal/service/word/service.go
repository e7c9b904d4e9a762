// Package word implements vocabulary management on top of the shared
// word store. Words are created through sentence ingestion; this service
// covers the read and curation side.
package word

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetBySurface(ctx context.Context, chineseWord string) (*domain.Word, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Word, error)
	Update(ctx context.Context, id uuid.UUID, params domain.WordUpdate) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type segmenter interface {
	InsertWord(surfaceForm string)
}

// Service provides vocabulary read and curation operations.
type Service struct {
	words wordRepo
	seg   segmenter
	log   *slog.Logger
}

// NewService creates a new word service.
func NewService(log *slog.Logger, words wordRepo, seg segmenter) *Service {
	return &Service{
		words: words,
		seg:   seg,
		log:   log.With("service", "word"),
	}
}
