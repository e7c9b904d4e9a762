package progress_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/progress"
	sentencerepo "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/sentence"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/testhelper"
	userrepo "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/user"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

func newRepo(t *testing.T) (*progress.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return progress.New(pool), pool
}

// fixture creates a user and one of their sentences.
func fixture(t *testing.T, pool *pgxpool.Pool) (userID, sentenceID uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	u, err := userrepo.New(pool).Create(ctx, &domain.User{
		Username:     "prg-" + uuid.New().String()[:8],
		PasswordHash: "x",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	s, err := sentencerepo.New(pool).Create(ctx, &domain.Sentence{
		ChineseText:        "进度" + uuid.New().String()[:8],
		Pinyin:             "jìndù",
		EnglishTranslation: "progress",
		CreatorID:          &u.ID,
	})
	if err != nil {
		t.Fatalf("create sentence: %v", err)
	}
	return u.ID, s.ID
}

func TestRepo_FindOrCreate(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID, sentenceID := fixture(t, pool)

	p, err := repo.FindOrCreate(ctx, userID, sentenceID)
	if err != nil {
		t.Fatalf("FindOrCreate: unexpected error: %v", err)
	}
	if p.XP != 0 || p.Difficult {
		t.Errorf("fresh row: got xp=%d difficult=%v, want zero values", p.XP, p.Difficult)
	}
	if p.Status != domain.ProgressStatusLearning {
		t.Errorf("status: got %q, want %q", p.Status, domain.ProgressStatusLearning)
	}

	again, err := repo.FindOrCreate(ctx, userID, sentenceID)
	if err != nil {
		t.Fatalf("FindOrCreate again: unexpected error: %v", err)
	}
	if again.ID != p.ID {
		t.Errorf("id: got %d, want %d (same row)", again.ID, p.ID)
	}
}

func TestRepo_Save_Roundtrip(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	userID, sentenceID := fixture(t, pool)

	p, err := repo.FindOrCreate(ctx, userID, sentenceID)
	if err != nil {
		t.Fatalf("FindOrCreate: unexpected error: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	due := now.AddDate(0, 0, 3)
	p.XP = 7
	p.Difficult = true
	p.LastPracticedAt = &now
	p.NextDueAt = &due

	saved, err := repo.Save(ctx, p)
	if err != nil {
		t.Fatalf("Save: unexpected error: %v", err)
	}
	if saved.XP != 7 || !saved.Difficult {
		t.Errorf("saved: got xp=%d difficult=%v", saved.XP, saved.Difficult)
	}

	got, err := repo.Get(ctx, userID, sentenceID)
	if err != nil {
		t.Fatalf("Get: unexpected error: %v", err)
	}
	if got.XP != 7 {
		t.Errorf("xp: got %d, want 7", got.XP)
	}
	if got.NextDueAt == nil || !got.NextDueAt.Equal(due) {
		t.Errorf("next due: got %v, want %v", got.NextDueAt, due)
	}
	if got.LastPracticedAt == nil || !got.LastPracticedAt.Equal(now) {
		t.Errorf("last practiced: got %v, want %v", got.LastPracticedAt, now)
	}
}

func TestRepo_GetBySentenceIDs(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	userID, firstID := fixture(t, pool)
	_, secondID := fixture(t, pool)

	if _, err := repo.FindOrCreate(ctx, userID, firstID); err != nil {
		t.Fatalf("FindOrCreate: unexpected error: %v", err)
	}

	// secondID belongs to another user and has no progress for this one.
	rows, err := repo.GetBySentenceIDs(ctx, userID, []uuid.UUID{firstID, secondID})
	if err != nil {
		t.Fatalf("GetBySentenceIDs: unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(rows))
	}
	if rows[0].SentenceID != firstID {
		t.Errorf("sentence id: got %v, want %v", rows[0].SentenceID, firstID)
	}
}

func TestRepo_GetBySentenceIDs_EmptyInput(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	rows, err := repo.GetBySentenceIDs(context.Background(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("GetBySentenceIDs: unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows: got %d, want 0", len(rows))
	}
}
