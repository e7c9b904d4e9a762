package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/service/word"
)

// wordService defines the minimal interface needed by WordHandler.
type wordService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetBySurface(ctx context.Context, chineseWord string) (*domain.Word, error)
	List(ctx context.Context) ([]domain.Word, error)
	Update(ctx context.Context, id uuid.UUID, input word.UpdateInput) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Teach(ctx context.Context, surfaceForm string) error
}

// WordHandler serves vocabulary endpoints.
type WordHandler struct {
	svc wordService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

type updateWordRequest struct {
	Pinyin             string  `json:"pinyin"`
	EnglishTranslation string  `json:"englishTranslation"`
	Description        *string `json:"description"`
	AudioFilename      *string `json:"audioFilename"`
}

type teachWordRequest struct {
	ChineseWord string `json:"chineseWord"`
}

// List handles GET /api/words. A surface query narrows it to an exact
// lookup: GET /api/words?surface=你好.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	if surface := r.URL.Query().Get("surface"); surface != "" {
		found, err := h.svc.GetBySurface(r.Context(), surface)
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]wordResponse{
			"words": {toWordResponse(found, nil)},
		})
		return
	}

	words, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]wordResponse, len(words))
	for i := range words {
		out[i] = toWordResponse(&words[i], nil)
	}
	writeJSON(w, http.StatusOK, map[string][]wordResponse{"words": out})
}

// Get handles GET /api/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	found, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(found, nil))
}

// Update handles PUT /api/words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	var req updateWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, word.UpdateInput{
		Pinyin:             req.Pinyin,
		EnglishTranslation: req.EnglishTranslation,
		Description:        req.Description,
		AudioFilename:      req.AudioFilename,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(updated, nil))
}

// Delete handles DELETE /api/words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Teach handles POST /api/words/teach. It adds a surface form to the
// segmenter dictionary so future analysis keeps it whole.
func (h *WordHandler) Teach(w http.ResponseWriter, r *http.Request) {
	var req teachWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.Teach(r.Context(), req.ChineseWord); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
