// Package quota implements the per-user daily translation counter.
// The consume path is two statements, both effective-atomic under the
// surrounding transaction: an idempotent zero-row insert and a guarded
// increment that fails when the ceiling is reached.
package quota

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

// Repo provides quota persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quota repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const ensureRowSQL = `
INSERT INTO user_translation_quotas (user_id, day, count)
VALUES ($1, $2, 0)
ON CONFLICT (user_id, day) DO NOTHING`

const consumeSQL = `
UPDATE user_translation_quotas
SET count = count + 1
WHERE user_id = $1 AND day = $2 AND count < $3
RETURNING count`

const getCountSQL = `
SELECT count
FROM user_translation_quotas
WHERE user_id = $1 AND day = $2`

// Consume takes one translation unit for (user, day), failing with
// domain.ErrQuotaExceeded when the counter already reached limit. The
// guarded UPDATE leaves the stored count untouched on failure. Run inside
// the ingestion transaction, a later rollback also undoes the increment.
func (r *Repo) Consume(ctx context.Context, userID uuid.UUID, day time.Time, limit int) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	day = domain.QuotaDay(day)

	if _, err := querier.Exec(ctx, ensureRowSQL, userID, day); err != nil {
		return 0, postgres.MapError(err, "quota", userID.String())
	}

	var count int
	err := querier.QueryRow(ctx, consumeSQL, userID, day, limit).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("quota %s: %w", userID, domain.ErrQuotaExceeded)
	}
	if err != nil {
		return 0, postgres.MapError(err, "quota", userID.String())
	}
	return count, nil
}

// GetCount returns the translations used by the user on the given day.
// A missing row reads as zero.
func (r *Repo) GetCount(ctx context.Context, userID uuid.UUID, day time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := querier.QueryRow(ctx, getCountSQL, userID, domain.QuotaDay(day)).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, postgres.MapError(err, "quota", userID.String())
	}
	return count, nil
}
