// Package progress implements the per-user-per-sentence learning state
// repository. The (user_id, sentence_id) UNIQUE constraint backs the
// lazy find-or-create.
package progress

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

// Repo provides progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const progressColumns = `id, user_id, sentence_id, xp, difficult,
       last_practiced_at, next_due_at, status, created_at, updated_at`

const insertProgressSQL = `
INSERT INTO user_sentences (user_id, sentence_id, xp, difficult, status, created_at, updated_at)
VALUES ($1, $2, 0, false, 'learning', $3, $3)
ON CONFLICT (user_id, sentence_id) DO NOTHING
RETURNING ` + progressColumns

const getSQL = `
SELECT ` + progressColumns + `
FROM user_sentences
WHERE user_id = $1 AND sentence_id = $2`

const getBySentenceIDsSQL = `
SELECT ` + progressColumns + `
FROM user_sentences
WHERE user_id = $1 AND sentence_id = ANY($2::uuid[])`

const saveSQL = `
UPDATE user_sentences
SET xp = $2,
    difficult = $3,
    last_practiced_at = $4,
    next_due_at = $5,
    status = $6,
    updated_at = now()
WHERE id = $1
RETURNING ` + progressColumns

// FindOrCreate returns the progress row for (user, sentence), creating a
// zero-state row when none exists. Defaults: xp=0, difficult=false,
// no due date, status learning.
func (r *Repo) FindOrCreate(ctx context.Context, userID, sentenceID uuid.UUID) (*domain.Progress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC()
	p, err := scanProgressRow(querier.QueryRow(ctx, insertProgressSQL, userID, sentenceID, now))
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, postgres.MapError(err, "progress", sentenceID.String())
	}

	// Row already existed; read it.
	return r.Get(ctx, userID, sentenceID)
}

// Get returns the progress row for (user, sentence).
func (r *Repo) Get(ctx context.Context, userID, sentenceID uuid.UUID) (*domain.Progress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgressRow(querier.QueryRow(ctx, getSQL, userID, sentenceID))
	if err != nil {
		return nil, postgres.MapError(err, "progress", sentenceID.String())
	}
	return &p, nil
}

// GetBySentenceIDs returns the user's progress rows for the given sentences.
// Sentences without progress simply have no row in the result.
func (r *Repo) GetBySentenceIDs(ctx context.Context, userID uuid.UUID, sentenceIDs []uuid.UUID) ([]domain.Progress, error) {
	if len(sentenceIDs) == 0 {
		return nil, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getBySentenceIDsSQL, userID, sentenceIDs)
	if err != nil {
		return nil, fmt.Errorf("get progress by sentence ids: %w", err)
	}
	defer rows.Close()

	var result []domain.Progress
	for rows.Next() {
		p, err := scanProgressRow(rows)
		if err != nil {
			return nil, fmt.Errorf("get progress by sentence ids: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// Save persists the mutable fields of a progress row.
func (r *Repo) Save(ctx context.Context, p *domain.Progress) (*domain.Progress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	saved, err := scanProgressRow(querier.QueryRow(ctx, saveSQL,
		p.ID, p.XP, p.Difficult, p.LastPracticedAt, p.NextDueAt, p.Status))
	if err != nil {
		return nil, postgres.MapError(err, "progress", p.SentenceID.String())
	}
	return &saved, nil
}

func scanProgressRow(row pgx.Row) (domain.Progress, error) {
	var p domain.Progress
	err := row.Scan(
		&p.ID, &p.UserID, &p.SentenceID, &p.XP, &p.Difficult,
		&p.LastPracticedAt, &p.NextDueAt, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
