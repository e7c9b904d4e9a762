package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/service/deck"
)

// deckService defines the minimal interface needed by DeckHandler.
type deckService interface {
	CreateDeck(ctx context.Context, input deck.DeckInput) (*domain.Deck, error)
	GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, []uuid.UUID, error)
	ListDecks(ctx context.Context) ([]domain.Deck, error)
	UpdateDeck(ctx context.Context, deckID uuid.UUID, input deck.DeckInput) (*domain.Deck, error)
	DeleteDeck(ctx context.Context, deckID uuid.UUID) error
	SetDeckSentences(ctx context.Context, deckID uuid.UUID, sentenceIDs []uuid.UUID) error

	CreateCardGroup(ctx context.Context, input deck.CardGroupInput) (*domain.CardGroup, error)
	GetCardGroup(ctx context.Context, groupID uuid.UUID) (*domain.CardGroup, []uuid.UUID, error)
	ListCardGroups(ctx context.Context) ([]domain.CardGroup, error)
	DeleteCardGroup(ctx context.Context, groupID uuid.UUID) error
	SetCardGroupSentences(ctx context.Context, groupID uuid.UUID, sentenceIDs []uuid.UUID) error
}

// DeckHandler serves deck and card group endpoints.
type DeckHandler struct {
	svc deckService
	log *slog.Logger
}

// NewDeckHandler creates a DeckHandler.
func NewDeckHandler(svc deckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, log: logger.With("handler", "deck")}
}

type deckRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type setSentencesRequest struct {
	SentenceIDs []string `json:"sentenceIds"`
}

func (req *setSentencesRequest) parse() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(req.SentenceIDs))
	for i, raw := range req.SentenceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// CreateDeck handles POST /api/decks.
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateDeck(r.Context(), deck.DeckInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDeckResponse(created, nil))
}

// ListDecks handles GET /api/decks.
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.svc.ListDecks(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]deckResponse, len(decks))
	for i := range decks {
		out[i] = toDeckResponse(&decks[i], nil)
	}
	writeJSON(w, http.StatusOK, map[string][]deckResponse{"decks": out})
}

// GetDeck handles GET /api/decks/{id}.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	d, sentenceIDs, err := h.svc.GetDeck(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(d, sentenceIDs))
}

// UpdateDeck handles PUT /api/decks/{id}.
func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateDeck(r.Context(), id, deck.DeckInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDeckResponse(updated, nil))
}

// DeleteDeck handles DELETE /api/decks/{id}.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	if err := h.svc.DeleteDeck(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// SetDeckSentences handles PUT /api/decks/{id}/sentences.
func (h *DeckHandler) SetDeckSentences(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deck id")
		return
	}

	var req setSentencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sentenceIDs, err := req.parse()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sentence id")
		return
	}

	if err := h.svc.SetDeckSentences(r.Context(), id, sentenceIDs); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
