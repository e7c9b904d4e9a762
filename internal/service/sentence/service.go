// Package sentence implements the core business logic: sentence ingestion
// (segmentation, vocabulary upsert, atomic persistence) and spaced-repetition
// progress tracking.
package sentence

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type sentenceRepo interface {
	Create(ctx context.Context, s *domain.Sentence) (*domain.Sentence, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)
	GetByText(ctx context.Context, creatorID uuid.UUID, chineseText string) (*domain.Sentence, error)
	ExistingTexts(ctx context.Context, creatorID uuid.UUID, texts []string) ([]string, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID, params domain.SentenceListParams) ([]domain.Sentence, int, error)
	AddWords(ctx context.Context, sentenceID uuid.UUID, associations []domain.SentenceWord) error
	GetWords(ctx context.Context, sentenceID uuid.UUID) ([]domain.WordAtPosition, error)
	Update(ctx context.Context, id uuid.UUID, params domain.SentenceUpdate) (*domain.Sentence, error)
	TouchLastPracticed(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByCreator(ctx context.Context, creatorID uuid.UUID) (int, error)
}

type wordRepo interface {
	FindOrCreate(ctx context.Context, w domain.Word) (*domain.Word, bool, error)
	GetBySurface(ctx context.Context, chineseWord string) (*domain.Word, error)
	UpdateTranslation(ctx context.Context, id uuid.UUID, translation string) error
}

type progressRepo interface {
	FindOrCreate(ctx context.Context, userID, sentenceID uuid.UUID) (*domain.Progress, error)
	GetBySentenceIDs(ctx context.Context, userID uuid.UUID, sentenceIDs []uuid.UUID) ([]domain.Progress, error)
	Save(ctx context.Context, p *domain.Progress) (*domain.Progress, error)
}

type quotaRepo interface {
	Consume(ctx context.Context, userID uuid.UUID, day time.Time, limit int) (int, error)
}

type segmenter interface {
	Segment(text string) []string
	InsertWord(surfaceForm string)
}

type romanizer interface {
	Romanize(surfaceForm string) string
}

type translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the tunables of the sentence service.
type Config struct {
	// DailyTranslationLimit bounds external translation calls per user per day.
	DailyTranslationLimit int
	// Spacing schedule: difficult sentences repeat every DifficultSpacingDays;
	// the rest follow xp/2 clamped to [MinSpacingDays, MaxSpacingDays].
	MinSpacingDays       int
	MaxSpacingDays       int
	DifficultSpacingDays int
	// Translation language pair.
	SourceLang string
	TargetLang string
}

// Service implements sentence ingestion and progress tracking.
type Service struct {
	sentences sentenceRepo
	words     wordRepo
	progress  progressRepo
	quota     quotaRepo
	seg       segmenter
	rom       romanizer
	trans     translator
	tx        txManager
	log       *slog.Logger
	cfg       Config
}

// NewService creates a new sentence service.
func NewService(
	log *slog.Logger,
	sentences sentenceRepo,
	words wordRepo,
	progress progressRepo,
	quota quotaRepo,
	seg segmenter,
	rom romanizer,
	trans translator,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		sentences: sentences,
		words:     words,
		progress:  progress,
		quota:     quota,
		seg:       seg,
		rom:       rom,
		trans:     trans,
		tx:        tx,
		log:       log.With("service", "sentence"),
		cfg:       cfg,
	}
}
