package deck_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/deck"
	sentencerepo "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/sentence"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/testhelper"
	userrepo "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/user"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

func newRepo(t *testing.T) (*deck.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return deck.New(pool), pool
}

func createUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()
	u, err := userrepo.New(pool).Create(context.Background(), &domain.User{
		Username:     "deck-" + uuid.New().String()[:8],
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.ID
}

func createSentence(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID) uuid.UUID {
	t.Helper()
	s, err := sentencerepo.New(pool).Create(context.Background(), &domain.Sentence{
		ChineseText:        "组" + uuid.New().String()[:8],
		Pinyin:             "py",
		EnglishTranslation: "tr",
		CreatorID:          &creatorID,
	})
	if err != nil {
		t.Fatalf("create sentence: %v", err)
	}
	return s.ID
}

func TestRepo_CreateAndGet(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	creatorID := createUser(t, pool)

	created, err := repo.Create(ctx, &domain.Deck{Name: "HSK 1", CreatorID: creatorID})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	got, err := repo.GetByID(ctx, creatorID, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Name != "HSK 1" {
		t.Errorf("name: got %q, want %q", got.Name, "HSK 1")
	}

	// Lookups are creator-scoped; another user sees nothing.
	otherID := createUser(t, pool)
	if _, err := repo.GetByID(ctx, otherID, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign lookup: got %v, want ErrNotFound", err)
	}
}

func TestRepo_SetSentences_ReplacesMembership(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	creatorID := createUser(t, pool)

	d, err := repo.Create(ctx, &domain.Deck{Name: "replace", CreatorID: creatorID})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	first := createSentence(t, pool, creatorID)
	second := createSentence(t, pool, creatorID)
	third := createSentence(t, pool, creatorID)

	if err := repo.SetSentences(ctx, d.ID, []uuid.UUID{first, second}); err != nil {
		t.Fatalf("SetSentences: unexpected error: %v", err)
	}

	// The second call replaces the set wholesale.
	if err := repo.SetSentences(ctx, d.ID, []uuid.UUID{third}); err != nil {
		t.Fatalf("SetSentences replace: unexpected error: %v", err)
	}

	ids, err := repo.SentenceIDs(ctx, d.ID)
	if err != nil {
		t.Fatalf("SentenceIDs: unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != third {
		t.Errorf("members: got %v, want [%v]", ids, third)
	}
}

func TestRepo_SetSentences_EmptyClears(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	creatorID := createUser(t, pool)

	d, err := repo.Create(ctx, &domain.Deck{Name: "clear", CreatorID: creatorID})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	s := createSentence(t, pool, creatorID)
	if err := repo.SetSentences(ctx, d.ID, []uuid.UUID{s}); err != nil {
		t.Fatalf("SetSentences: unexpected error: %v", err)
	}
	if err := repo.SetSentences(ctx, d.ID, nil); err != nil {
		t.Fatalf("SetSentences empty: unexpected error: %v", err)
	}

	ids, err := repo.SentenceIDs(ctx, d.ID)
	if err != nil {
		t.Fatalf("SentenceIDs: unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("members: got %v, want empty", ids)
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	creatorID := createUser(t, pool)

	d, err := repo.Create(ctx, &domain.Deck{Name: "gone", CreatorID: creatorID})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if err := repo.Delete(ctx, creatorID, d.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}
	if _, err := repo.GetByID(ctx, creatorID, d.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("after delete: got %v, want ErrNotFound", err)
	}
}
