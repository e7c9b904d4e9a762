// Package cardgroup implements the card group repository. Card groups are
// the second sentence grouping next to decks, with identical ownership and
// replace-all membership semantics.
package cardgroup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

// Repo provides card group persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new card group repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const groupColumns = `id, name, description, creator_id, created_at, updated_at`

const insertGroupSQL = `
INSERT INTO card_groups (id, name, description, creator_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + groupColumns

const getGroupSQL = `
SELECT ` + groupColumns + `
FROM card_groups
WHERE id = $1 AND creator_id = $2`

const listGroupsSQL = `
SELECT ` + groupColumns + `
FROM card_groups
WHERE creator_id = $1
ORDER BY created_at DESC`

const deleteGroupSQL = `DELETE FROM card_groups WHERE id = $1 AND creator_id = $2`

const clearGroupMembersSQL = `DELETE FROM card_group_sentences WHERE card_group_id = $1`

const insertGroupMemberSQL = `
INSERT INTO card_group_sentences (card_group_id, sentence_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const groupMemberIDsSQL = `
SELECT sentence_id FROM card_group_sentences WHERE card_group_id = $1`

// Create inserts a new card group.
func (r *Repo) Create(ctx context.Context, g *domain.CardGroup) (*domain.CardGroup, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	now := time.Now().UTC()

	created, err := scanGroupRow(querier.QueryRow(ctx, insertGroupSQL,
		g.ID, g.Name, g.Description, g.CreatorID, now))
	if err != nil {
		return nil, postgres.MapError(err, "card_group", g.ID.String())
	}
	return &created, nil
}

// GetByID returns a card group owned by the given user.
func (r *Repo) GetByID(ctx context.Context, creatorID, groupID uuid.UUID) (*domain.CardGroup, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	g, err := scanGroupRow(querier.QueryRow(ctx, getGroupSQL, groupID, creatorID))
	if err != nil {
		return nil, postgres.MapError(err, "card_group", groupID.String())
	}
	return &g, nil
}

// ListByCreator returns the user's card groups, newest first.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.CardGroup, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listGroupsSQL, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list card groups: %w", err)
	}
	defer rows.Close()

	var groups []domain.CardGroup
	for rows.Next() {
		g, err := scanGroupRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list card groups: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Delete removes a card group owned by the user. Membership rows cascade.
func (r *Repo) Delete(ctx context.Context, creatorID, groupID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteGroupSQL, groupID, creatorID)
	if err != nil {
		return postgres.MapError(err, "card_group", groupID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card_group %s: %w", groupID, domain.ErrNotFound)
	}
	return nil
}

// SetSentences replaces the group's member set with the given sentence ids.
func (r *Repo) SetSentences(ctx context.Context, groupID uuid.UUID, sentenceIDs []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, clearGroupMembersSQL, groupID); err != nil {
		return postgres.MapError(err, "card_group", groupID.String())
	}
	if len(sentenceIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, id := range sentenceIDs {
		batch.Queue(insertGroupMemberSQL, groupID, id)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range sentenceIDs {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "card_group", groupID.String())
		}
	}
	return nil
}

// SentenceIDs returns the ids of the group's member sentences.
func (r *Repo) SentenceIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, groupMemberIDsSQL, groupID)
	if err != nil {
		return nil, fmt.Errorf("card group sentence ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("card group sentence ids: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanGroupRow(row pgx.Row) (domain.CardGroup, error) {
	var g domain.CardGroup
	err := row.Scan(&g.ID, &g.Name, &g.Description, &g.CreatorID, &g.CreatedAt, &g.UpdatedAt)
	return g, err
}
