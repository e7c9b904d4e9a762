package quota_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/quota"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/testhelper"
	userrepo "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/user"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

func newRepo(t *testing.T) (*quota.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return quota.New(pool), pool
}

// createUser inserts a user row to satisfy the quota FK.
func createUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	u, err := userrepo.New(pool).Create(context.Background(), &domain.User{
		Username:     "quota-" + uuid.New().String()[:8],
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.ID
}

func TestRepo_Consume_CountsUpToLimit(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := createUser(t, pool)
	day := time.Now()

	for want := 1; want <= 3; want++ {
		got, err := repo.Consume(ctx, userID, day, 3)
		if err != nil {
			t.Fatalf("Consume #%d: unexpected error: %v", want, err)
		}
		if got != want {
			t.Errorf("Consume #%d: got count %d, want %d", want, got, want)
		}
	}

	_, err := repo.Consume(ctx, userID, day, 3)
	if !errors.Is(err, domain.ErrQuotaExceeded) {
		t.Fatalf("Consume over limit: got %v, want ErrQuotaExceeded", err)
	}

	// The failed attempt must not move the counter.
	count, err := repo.GetCount(ctx, userID, day)
	if err != nil {
		t.Fatalf("GetCount: unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("count after exceeded attempt: got %d, want 3", count)
	}
}

func TestRepo_Consume_SeparateDays(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID := createUser(t, pool)

	today := time.Now()
	yesterday := today.AddDate(0, 0, -1)

	if _, err := repo.Consume(ctx, userID, yesterday, 1); err != nil {
		t.Fatalf("Consume yesterday: unexpected error: %v", err)
	}

	// Yesterday's exhausted quota must not block today.
	if _, err := repo.Consume(ctx, userID, today, 1); err != nil {
		t.Fatalf("Consume today: unexpected error: %v", err)
	}
}

func TestRepo_GetCount_MissingRowIsZero(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	userID := createUser(t, pool)

	count, err := repo.GetCount(context.Background(), userID, time.Now())
	if err != nil {
		t.Fatalf("GetCount: unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("count: got %d, want 0", count)
	}
}
