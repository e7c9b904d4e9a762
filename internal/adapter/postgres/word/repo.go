// Package word implements the vocabulary repository using PostgreSQL.
// The chinese_word UNIQUE constraint is the authority on deduplication:
// FindOrCreate resolves concurrent creation races through it.
package word

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const wordColumns = `id, chinese_word, pinyin, english_translation, description,
       audio_filename, creator_id, is_public, created_at, updated_at`

const insertWordSQL = `
INSERT INTO words (id, chinese_word, pinyin, english_translation, description,
                   audio_filename, creator_id, is_public, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
ON CONFLICT (chinese_word) DO NOTHING
RETURNING ` + wordColumns

const getBySurfaceSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE chinese_word = $1`

const getByIDSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE id = $1`

const listByCreatorSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE creator_id = $1
ORDER BY created_at DESC`

const updateWordSQL = `
UPDATE words
SET pinyin = $2,
    english_translation = $3,
    description = $4,
    audio_filename = $5,
    updated_at = now()
WHERE id = $1
RETURNING ` + wordColumns

const updateTranslationSQL = `
UPDATE words
SET english_translation = $2, updated_at = now()
WHERE id = $1`

const deleteWordSQL = `DELETE FROM words WHERE id = $1`

const multiCharSurfacesSQL = `
SELECT chinese_word
FROM words
WHERE char_length(chinese_word) > 1`

// FindOrCreate inserts a word keyed by its surface form, or returns the
// existing row when another writer got there first. The boolean reports
// whether this call created the row.
func (r *Repo) FindOrCreate(ctx context.Context, w domain.Word) (*domain.Word, bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	now := time.Now().UTC()

	row := querier.QueryRow(ctx, insertWordSQL,
		w.ID, w.ChineseWord, w.Pinyin, w.EnglishTranslation,
		w.Description, w.AudioFilename, w.CreatorID, w.IsPublic, now)

	created, err := scanWordRow(row)
	if err == nil {
		return &created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, postgres.MapError(err, "word", w.ChineseWord)
	}

	// ON CONFLICT DO NOTHING returned no row: the word already exists.
	// Re-read by surface form.
	existing, err := r.GetBySurface(ctx, w.ChineseWord)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// GetBySurface returns the word with the given surface form.
func (r *Repo) GetBySurface(ctx context.Context, chineseWord string) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWordRow(querier.QueryRow(ctx, getBySurfaceSQL, chineseWord))
	if err != nil {
		return nil, postgres.MapError(err, "word", chineseWord)
	}
	return &w, nil
}

// GetByID returns a word by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWordRow(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "word", id.String())
	}
	return &w, nil
}

// ListByCreator returns all words created by the user, newest first.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByCreatorSQL, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list words by creator: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, fmt.Errorf("list words by creator: %w", err)
	}
	return words, nil
}

// MultiCharSurfaces returns every stored surface form longer than one
// character. Used to re-teach the segmenter dictionary at startup.
func (r *Repo) MultiCharSurfaces(ctx context.Context) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, multiCharSurfacesSQL)
	if err != nil {
		return nil, fmt.Errorf("list word surfaces: %w", err)
	}
	defer rows.Close()

	var surfaces []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan word surface: %w", err)
		}
		surfaces = append(surfaces, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list word surfaces: %w", err)
	}
	return surfaces, nil
}

// Update overwrites the mutable fields of a word.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.WordUpdate) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWordRow(querier.QueryRow(ctx, updateWordSQL,
		id, params.Pinyin, params.EnglishTranslation, params.Description, params.AudioFilename))
	if err != nil {
		return nil, postgres.MapError(err, "word", id.String())
	}
	return &w, nil
}

// UpdateTranslation overwrites just the translation of a word.
func (r *Repo) UpdateTranslation(ctx context.Context, id uuid.UUID, translation string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateTranslationSQL, id, translation)
	if err != nil {
		return postgres.MapError(err, "word", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a word. Association rows cascade; there is no guard
// against deleting a word still referenced by sentences.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteWordSQL, id)
	if err != nil {
		return postgres.MapError(err, "word", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanWordRow(row pgx.Row) (domain.Word, error) {
	var w domain.Word
	err := row.Scan(
		&w.ID, &w.ChineseWord, &w.Pinyin, &w.EnglishTranslation, &w.Description,
		&w.AudioFilename, &w.CreatorID, &w.IsPublic, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	var words []domain.Word
	for rows.Next() {
		w, err := scanWordRow(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
