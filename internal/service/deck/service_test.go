package deck

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/pkg/ctxutil"
)

type deckRepoMock struct {
	CreateFunc        func(ctx context.Context, d *domain.Deck) (*domain.Deck, error)
	GetByIDFunc       func(ctx context.Context, creatorID, deckID uuid.UUID) (*domain.Deck, error)
	ListByCreatorFunc func(ctx context.Context, creatorID uuid.UUID) ([]domain.Deck, error)
	UpdateFunc        func(ctx context.Context, creatorID, deckID uuid.UUID, name string, description *string) (*domain.Deck, error)
	DeleteFunc        func(ctx context.Context, creatorID, deckID uuid.UUID) error
	SetSentencesFunc  func(ctx context.Context, deckID uuid.UUID, sentenceIDs []uuid.UUID) error
	SentenceIDsFunc   func(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error)
}

func (m *deckRepoMock) Create(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
	return m.CreateFunc(ctx, d)
}

func (m *deckRepoMock) GetByID(ctx context.Context, creatorID, deckID uuid.UUID) (*domain.Deck, error) {
	return m.GetByIDFunc(ctx, creatorID, deckID)
}

func (m *deckRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Deck, error) {
	return m.ListByCreatorFunc(ctx, creatorID)
}

func (m *deckRepoMock) Update(ctx context.Context, creatorID, deckID uuid.UUID, name string, description *string) (*domain.Deck, error) {
	return m.UpdateFunc(ctx, creatorID, deckID, name, description)
}

func (m *deckRepoMock) Delete(ctx context.Context, creatorID, deckID uuid.UUID) error {
	return m.DeleteFunc(ctx, creatorID, deckID)
}

func (m *deckRepoMock) SetSentences(ctx context.Context, deckID uuid.UUID, sentenceIDs []uuid.UUID) error {
	return m.SetSentencesFunc(ctx, deckID, sentenceIDs)
}

func (m *deckRepoMock) SentenceIDs(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error) {
	return m.SentenceIDsFunc(ctx, deckID)
}

type cardGroupRepoMock struct {
	CreateFunc        func(ctx context.Context, g *domain.CardGroup) (*domain.CardGroup, error)
	GetByIDFunc       func(ctx context.Context, creatorID, groupID uuid.UUID) (*domain.CardGroup, error)
	ListByCreatorFunc func(ctx context.Context, creatorID uuid.UUID) ([]domain.CardGroup, error)
	DeleteFunc        func(ctx context.Context, creatorID, groupID uuid.UUID) error
	SetSentencesFunc  func(ctx context.Context, groupID uuid.UUID, sentenceIDs []uuid.UUID) error
	SentenceIDsFunc   func(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error)
}

func (m *cardGroupRepoMock) Create(ctx context.Context, g *domain.CardGroup) (*domain.CardGroup, error) {
	return m.CreateFunc(ctx, g)
}

func (m *cardGroupRepoMock) GetByID(ctx context.Context, creatorID, groupID uuid.UUID) (*domain.CardGroup, error) {
	return m.GetByIDFunc(ctx, creatorID, groupID)
}

func (m *cardGroupRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.CardGroup, error) {
	return m.ListByCreatorFunc(ctx, creatorID)
}

func (m *cardGroupRepoMock) Delete(ctx context.Context, creatorID, groupID uuid.UUID) error {
	return m.DeleteFunc(ctx, creatorID, groupID)
}

func (m *cardGroupRepoMock) SetSentences(ctx context.Context, groupID uuid.UUID, sentenceIDs []uuid.UUID) error {
	return m.SetSentencesFunc(ctx, groupID, sentenceIDs)
}

func (m *cardGroupRepoMock) SentenceIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	return m.SentenceIDsFunc(ctx, groupID)
}

type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestService_CreateDeck(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	decks := &deckRepoMock{
		CreateFunc: func(ctx context.Context, d *domain.Deck) (*domain.Deck, error) {
			if d.CreatorID != userID {
				t.Errorf("creator: got %v, want %v", d.CreatorID, userID)
			}
			created := *d
			created.ID = uuid.New()
			return &created, nil
		},
	}

	svc := NewService(slog.Default(), decks, &cardGroupRepoMock{}, &txManagerMock{})

	ctx := ctxutil.WithUserID(context.Background(), userID)
	created, err := svc.CreateDeck(ctx, DeckInput{Name: "HSK 1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "HSK 1" {
		t.Errorf("name: got %q, want %q", created.Name, "HSK 1")
	}
}

func TestService_CreateDeck_MissingName(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &deckRepoMock{}, &cardGroupRepoMock{}, &txManagerMock{})

	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	_, err := svc.CreateDeck(ctx, DeckInput{Name: "  "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error: got %v, want ErrValidation", err)
	}
}

func TestService_SetDeckSentences_OwnershipChecked(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	deckID := uuid.New()

	decks := &deckRepoMock{
		GetByIDFunc: func(ctx context.Context, cid, did uuid.UUID) (*domain.Deck, error) {
			return nil, domain.ErrNotFound
		},
		SetSentencesFunc: func(ctx context.Context, did uuid.UUID, ids []uuid.UUID) error {
			t.Error("SetSentences should not be called when the deck is not owned")
			return nil
		},
	}

	svc := NewService(slog.Default(), decks, &cardGroupRepoMock{}, &txManagerMock{})

	ctx := ctxutil.WithUserID(context.Background(), userID)
	err := svc.SetDeckSentences(ctx, deckID, []uuid.UUID{uuid.New()})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error: got %v, want ErrNotFound", err)
	}
}

func TestService_SetDeckSentences_ReplacesMembers(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	deckID := uuid.New()
	members := []uuid.UUID{uuid.New(), uuid.New()}

	var setWith []uuid.UUID
	decks := &deckRepoMock{
		GetByIDFunc: func(ctx context.Context, cid, did uuid.UUID) (*domain.Deck, error) {
			return &domain.Deck{ID: did, CreatorID: cid}, nil
		},
		SetSentencesFunc: func(ctx context.Context, did uuid.UUID, ids []uuid.UUID) error {
			setWith = ids
			return nil
		},
	}

	svc := NewService(slog.Default(), decks, &cardGroupRepoMock{}, &txManagerMock{})

	ctx := ctxutil.WithUserID(context.Background(), userID)
	if err := svc.SetDeckSentences(ctx, deckID, members); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(setWith) != 2 {
		t.Errorf("members: got %d, want 2", len(setWith))
	}
}

func TestService_GetCardGroup(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	groupID := uuid.New()
	memberID := uuid.New()

	groups := &cardGroupRepoMock{
		GetByIDFunc: func(ctx context.Context, cid, gid uuid.UUID) (*domain.CardGroup, error) {
			return &domain.CardGroup{ID: gid, Name: "Idioms", CreatorID: cid}, nil
		},
		SentenceIDsFunc: func(ctx context.Context, gid uuid.UUID) ([]uuid.UUID, error) {
			return []uuid.UUID{memberID}, nil
		},
	}

	svc := NewService(slog.Default(), &deckRepoMock{}, groups, &txManagerMock{})

	ctx := ctxutil.WithUserID(context.Background(), userID)
	g, ids, err := svc.GetCardGroup(ctx, groupID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Name != "Idioms" {
		t.Errorf("name: got %q, want %q", g.Name, "Idioms")
	}
	if len(ids) != 1 || ids[0] != memberID {
		t.Errorf("members: got %v, want [%v]", ids, memberID)
	}
}

func TestService_ListDecks_NoUserID(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &deckRepoMock{}, &cardGroupRepoMock{}, &txManagerMock{})

	_, err := svc.ListDecks(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("error: got %v, want ErrUnauthorized", err)
	}
}
