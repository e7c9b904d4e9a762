// Package deck implements the deck repository using PostgreSQL.
// Membership updates are replace-all: SetSentences wipes the previous
// member set and inserts the new one.
package deck

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

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new deck repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const deckColumns = `id, name, description, creator_id, created_at, updated_at`

const insertDeckSQL = `
INSERT INTO decks (id, name, description, creator_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + deckColumns

const getDeckSQL = `
SELECT ` + deckColumns + `
FROM decks
WHERE id = $1 AND creator_id = $2`

const listDecksSQL = `
SELECT ` + deckColumns + `
FROM decks
WHERE creator_id = $1
ORDER BY created_at DESC`

const updateDeckSQL = `
UPDATE decks
SET name = $3, description = $4, updated_at = now()
WHERE id = $1 AND creator_id = $2
RETURNING ` + deckColumns

const deleteDeckSQL = `DELETE FROM decks WHERE id = $1 AND creator_id = $2`

const clearMembersSQL = `DELETE FROM deck_sentences WHERE deck_id = $1`

const insertMemberSQL = `
INSERT INTO deck_sentences (deck_id, sentence_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const memberIDsSQL = `
SELECT sentence_id FROM deck_sentences WHERE deck_id = $1`

// Create inserts a new deck.
func (r *Repo) Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now().UTC()

	created, err := scanDeckRow(querier.QueryRow(ctx, insertDeckSQL,
		d.ID, d.Name, d.Description, d.CreatorID, now))
	if err != nil {
		return nil, postgres.MapError(err, "deck", d.ID.String())
	}
	return &created, nil
}

// GetByID returns a deck owned by the given user.
func (r *Repo) GetByID(ctx context.Context, creatorID, deckID uuid.UUID) (*domain.Deck, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDeckRow(querier.QueryRow(ctx, getDeckSQL, deckID, creatorID))
	if err != nil {
		return nil, postgres.MapError(err, "deck", deckID.String())
	}
	return &d, nil
}

// ListByCreator returns the user's decks, newest first.
func (r *Repo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Deck, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listDecksSQL, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	var decks []domain.Deck
	for rows.Next() {
		d, err := scanDeckRow(rows)
		if err != nil {
			return nil, fmt.Errorf("list decks: %w", err)
		}
		decks = append(decks, d)
	}
	return decks, rows.Err()
}

// Update overwrites the deck's name and description.
func (r *Repo) Update(ctx context.Context, creatorID, deckID uuid.UUID, name string, description *string) (*domain.Deck, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	d, err := scanDeckRow(querier.QueryRow(ctx, updateDeckSQL, deckID, creatorID, name, description))
	if err != nil {
		return nil, postgres.MapError(err, "deck", deckID.String())
	}
	return &d, nil
}

// Delete removes a deck owned by the user. Membership rows cascade.
func (r *Repo) Delete(ctx context.Context, creatorID, deckID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteDeckSQL, deckID, creatorID)
	if err != nil {
		return postgres.MapError(err, "deck", deckID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deckID, domain.ErrNotFound)
	}
	return nil
}

// SetSentences replaces the deck's member set with the given sentence ids.
func (r *Repo) SetSentences(ctx context.Context, deckID uuid.UUID, sentenceIDs []uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, clearMembersSQL, deckID); err != nil {
		return postgres.MapError(err, "deck", deckID.String())
	}
	if len(sentenceIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, id := range sentenceIDs {
		batch.Queue(insertMemberSQL, deckID, id)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range sentenceIDs {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "deck", deckID.String())
		}
	}
	return nil
}

// SentenceIDs returns the ids of the deck's member sentences.
func (r *Repo) SentenceIDs(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, memberIDsSQL, deckID)
	if err != nil {
		return nil, fmt.Errorf("deck sentence ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("deck sentence ids: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanDeckRow(row pgx.Row) (domain.Deck, error) {
	var d domain.Deck
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.CreatorID, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}
