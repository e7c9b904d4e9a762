// Package user implements the user repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, username, password_hash, created_at, updated_at`

const insertUserSQL = `
INSERT INTO users (id, username, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING ` + userColumns

const getByUsernameSQL = `
SELECT ` + userColumns + `
FROM users
WHERE username = $1`

const getUserByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

// Create inserts a new user. A taken username maps to ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC()

	created, err := scanUserRow(querier.QueryRow(ctx, insertUserSQL,
		u.ID, u.Username, u.PasswordHash, now))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	return &created, nil
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUserRow(querier.QueryRow(ctx, getByUsernameSQL, username))
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return &u, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUserRow(querier.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}
	return &u, nil
}

func scanUserRow(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
