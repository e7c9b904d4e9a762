// Package sentence implements the sentence repository using PostgreSQL.
// Fixed queries use raw SQL constants; the deck-scoped listing is built
// dynamically with squirrel.
package sentence

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

// Repo provides sentence persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new sentence repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const sentenceColumns = `id, chinese_text, pinyin, english_translation, audio_filename,
       last_practiced_at, creator_id, is_public, created_at, updated_at`

const insertSentenceSQL = `
INSERT INTO sentences (id, chinese_text, pinyin, english_translation, audio_filename,
                       last_practiced_at, creator_id, is_public, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
RETURNING ` + sentenceColumns

const getByIDSQL = `
SELECT ` + sentenceColumns + `
FROM sentences
WHERE id = $1`

const getByTextSQL = `
SELECT ` + sentenceColumns + `
FROM sentences
WHERE creator_id = $1 AND chinese_text = $2
LIMIT 1`

const existingTextsSQL = `
SELECT DISTINCT chinese_text
FROM sentences
WHERE creator_id = $1 AND chinese_text = ANY($2::text[])`

const insertAssociationSQL = `
INSERT INTO sentence_words (sentence_id, word_id, position)
VALUES ($1, $2, $3)`

const getWordsSQL = `
SELECT w.id, w.chinese_word, w.pinyin, w.english_translation, w.description,
       w.audio_filename, w.creator_id, w.is_public, w.created_at, w.updated_at,
       sw.position
FROM sentence_words sw
JOIN words w ON w.id = sw.word_id
WHERE sw.sentence_id = $1
ORDER BY sw.position`

const countAssociationsSQL = `
SELECT count(*) FROM sentence_words WHERE sentence_id = $1`

const updateSentenceSQL = `
UPDATE sentences
SET chinese_text = $2,
    pinyin = $3,
    english_translation = $4,
    audio_filename = $5,
    is_public = $6,
    updated_at = now()
WHERE id = $1
RETURNING ` + sentenceColumns

const touchLastPracticedSQL = `
UPDATE sentences
SET last_practiced_at = $2, updated_at = now()
WHERE id = $1`

const deleteSentenceSQL = `DELETE FROM sentences WHERE id = $1`

const deleteByCreatorSQL = `DELETE FROM sentences WHERE creator_id = $1`

// Create inserts a new sentence.
func (r *Repo) Create(ctx context.Context, s *domain.Sentence) (*domain.Sentence, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().UTC()

	created, err := scanSentenceRow(querier.QueryRow(ctx, insertSentenceSQL,
		s.ID, s.ChineseText, s.Pinyin, s.EnglishTranslation, s.AudioFilename,
		s.LastPracticedAt, s.CreatorID, s.IsPublic, now))
	if err != nil {
		return nil, postgres.MapError(err, "sentence", s.ID.String())
	}
	return &created, nil
}

// GetByID returns a sentence by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSentenceRow(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "sentence", id.String())
	}
	return &s, nil
}

// GetByText returns the creator's sentence with the exact source text.
// Used as the advisory duplicate pre-check before ingestion.
func (r *Repo) GetByText(ctx context.Context, creatorID uuid.UUID, chineseText string) (*domain.Sentence, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSentenceRow(querier.QueryRow(ctx, getByTextSQL, creatorID, chineseText))
	if err != nil {
		return nil, postgres.MapError(err, "sentence", chineseText)
	}
	return &s, nil
}

// ExistingTexts returns which of the given texts the creator already has.
func (r *Repo) ExistingTexts(ctx context.Context, creatorID uuid.UUID, texts []string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, existingTextsSQL, creatorID, texts)
	if err != nil {
		return nil, fmt.Errorf("existing texts: %w", err)
	}
	defer rows.Close()

	var found []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("existing texts: %w", err)
		}
		found = append(found, text)
	}
	return found, rows.Err()
}

// ListByCreator returns the creator's sentences newest first, optionally
// restricted to one deck, plus the total matching count.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID, params domain.SentenceListParams) ([]domain.Sentence, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	base := qb.Select(
		"s.id", "s.chinese_text", "s.pinyin", "s.english_translation", "s.audio_filename",
		"s.last_practiced_at", "s.creator_id", "s.is_public", "s.created_at", "s.updated_at",
	).
		From("sentences s").
		Where(sq.Eq{"s.creator_id": creatorID}).
		OrderBy("s.created_at DESC")

	countQ := qb.Select("count(*)").From("sentences s").Where(sq.Eq{"s.creator_id": creatorID})

	if params.DeckID != nil {
		join := "deck_sentences ds ON ds.sentence_id = s.id AND ds.deck_id = ?"
		base = base.Join(join, *params.DeckID)
		countQ = countQ.Join(join, *params.DeckID)
	}

	if params.Limit > 0 {
		base = base.Limit(uint64(params.Limit)).Offset(uint64(max(params.Offset, 0)))
	}

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sentences: %w", err)
	}

	listSQL, listArgs, err := base.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sentences: %w", err)
	}
	defer rows.Close()

	sentences, err := scanSentences(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list sentences: %w", err)
	}
	return sentences, total, nil
}

// AddWords inserts one association row per token position.
// Duplicate words at different positions produce separate rows.
func (r *Repo) AddWords(ctx context.Context, sentenceID uuid.UUID, associations []domain.SentenceWord) error {
	if len(associations) == 0 {
		return nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, a := range associations {
		batch.Queue(insertAssociationSQL, sentenceID, a.WordID, a.Position)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range associations {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "sentence_word", sentenceID.String())
		}
	}
	return nil
}

// GetWords returns the sentence's words in position order.
func (r *Repo) GetWords(ctx context.Context, sentenceID uuid.UUID) ([]domain.WordAtPosition, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getWordsSQL, sentenceID)
	if err != nil {
		return nil, fmt.Errorf("get sentence words: %w", err)
	}
	defer rows.Close()

	var words []domain.WordAtPosition
	for rows.Next() {
		var w domain.WordAtPosition
		if err := rows.Scan(
			&w.ID, &w.ChineseWord, &w.Pinyin, &w.EnglishTranslation, &w.Description,
			&w.AudioFilename, &w.CreatorID, &w.IsPublic, &w.CreatedAt, &w.UpdatedAt,
			&w.Position,
		); err != nil {
			return nil, fmt.Errorf("get sentence words: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// CountWords returns the number of association rows for a sentence.
func (r *Repo) CountWords(ctx context.Context, sentenceID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countAssociationsSQL, sentenceID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count sentence words: %w", err)
	}
	return count, nil
}

// Update overwrites the mutable fields of a sentence.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.SentenceUpdate) (*domain.Sentence, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSentenceRow(querier.QueryRow(ctx, updateSentenceSQL,
		id, params.ChineseText, params.Pinyin, params.EnglishTranslation,
		params.AudioFilename, params.IsPublic))
	if err != nil {
		return nil, postgres.MapError(err, "sentence", id.String())
	}
	return &s, nil
}

// TouchLastPracticed mirrors the practice timestamp onto the sentence row
// so the legacy default sort keeps working.
func (r *Repo) TouchLastPracticed(ctx context.Context, id uuid.UUID, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, touchLastPracticedSQL, id, at); err != nil {
		return postgres.MapError(err, "sentence", id.String())
	}
	return nil
}

// Delete removes a sentence. Associations, progress rows, and collection
// memberships cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSentenceSQL, id)
	if err != nil {
		return postgres.MapError(err, "sentence", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sentence %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByCreator removes all of a user's sentences. Returns the number deleted.
func (r *Repo) DeleteByCreator(ctx context.Context, creatorID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByCreatorSQL, creatorID)
	if err != nil {
		return 0, postgres.MapError(err, "sentence", creatorID.String())
	}
	return int(tag.RowsAffected()), nil
}

func scanSentenceRow(row pgx.Row) (domain.Sentence, error) {
	var s domain.Sentence
	err := row.Scan(
		&s.ID, &s.ChineseText, &s.Pinyin, &s.EnglishTranslation, &s.AudioFilename,
		&s.LastPracticedAt, &s.CreatorID, &s.IsPublic, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func scanSentences(rows pgx.Rows) ([]domain.Sentence, error) {
	var sentences []domain.Sentence
	for rows.Next() {
		s, err := scanSentenceRow(rows)
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, s)
	}
	return sentences, rows.Err()
}
