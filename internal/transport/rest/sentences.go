package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/service/sentence"
)

// sentenceService defines the minimal interface needed by SentenceHandler.
type sentenceService interface {
	Analyze(ctx context.Context, chineseText string) (*domain.SentenceAnalysis, error)
	Translate(ctx context.Context, text, targetLang string) (string, error)
	Create(ctx context.Context, input sentence.CreateInput) (*domain.Sentence, error)
	CreateBulk(ctx context.Context, items []sentence.BulkItem) (*sentence.BulkResult, error)
	CheckExisting(ctx context.Context, texts []string) ([]string, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SentenceView, error)
	Words(ctx context.Context, id uuid.UUID) ([]domain.WordAtPosition, error)
	List(ctx context.Context, params domain.SentenceListParams) (*domain.SentencePage, error)
	Update(ctx context.Context, id uuid.UUID, input sentence.UpdateInput) (*domain.Sentence, error)
	Delete(ctx context.Context, id uuid.UUID) (*string, error)
	DeleteAll(ctx context.Context) (int, error)
	RecordPractice(ctx context.Context, sentenceID uuid.UUID) (*domain.Progress, error)
	SetDifficult(ctx context.Context, sentenceID uuid.UUID, difficult bool) (*domain.Progress, error)
	Flashcards(ctx context.Context, input sentence.FlashcardsInput) (*domain.SentencePage, error)
	FlashcardCounts(ctx context.Context, deckID *uuid.UUID) (*domain.FlashcardCounts, error)
}

// SentenceHandler serves sentence ingestion, listing, and study endpoints.
type SentenceHandler struct {
	svc sentenceService
	log *slog.Logger
}

// NewSentenceHandler creates a SentenceHandler.
func NewSentenceHandler(svc sentenceService, logger *slog.Logger) *SentenceHandler {
	return &SentenceHandler{svc: svc, log: logger.With("handler", "sentence")}
}

type analyzeRequest struct {
	ChineseText string `json:"chineseText"`
}

type analyzeResponse struct {
	ChineseText        string              `json:"chineseText"`
	Pinyin             string              `json:"pinyin"`
	EnglishTranslation string              `json:"englishTranslation"`
	Words              []wordTokenResponse `json:"words"`
}

type wordTokenResponse struct {
	ChineseWord        string `json:"chineseWord"`
	Pinyin             string `json:"pinyin"`
	EnglishTranslation string `json:"englishTranslation"`
	IsNew              bool   `json:"isNew"`
}

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"targetLang"`
}

type wordOverrideRequest struct {
	ChineseWord        string `json:"chineseWord"`
	Pinyin             string `json:"pinyin"`
	EnglishTranslation string `json:"englishTranslation"`
}

type createSentenceRequest struct {
	ChineseText        string                `json:"chineseText"`
	EnglishTranslation string                `json:"englishTranslation"`
	Pinyin             string                `json:"pinyin"`
	AudioFilename      *string               `json:"audioFilename"`
	IsPublic           bool                  `json:"isPublic"`
	DefinedWords       []wordOverrideRequest `json:"definedWords"`
}

type bulkCreateRequest struct {
	Sentences []bulkItemRequest `json:"sentences"`
}

type bulkItemRequest struct {
	ChineseText        string                `json:"chineseText"`
	EnglishTranslation string                `json:"englishTranslation"`
	Pinyin             string                `json:"pinyin"`
	DefinedWords       []wordOverrideRequest `json:"definedWords"`
}

type bulkCreateResponse struct {
	Added   []sentenceResponse  `json:"added"`
	Skipped []string            `json:"skipped"`
	Errors  []bulkErrorResponse `json:"errors"`
}

type bulkErrorResponse struct {
	Text    string `json:"text"`
	Message string `json:"message"`
}

type checkExistingRequest struct {
	Texts []string `json:"texts"`
}

type updateSentenceRequest struct {
	ChineseText        string  `json:"chineseText"`
	Pinyin             string  `json:"pinyin"`
	EnglishTranslation string  `json:"englishTranslation"`
	AudioFilename      *string `json:"audioFilename"`
	IsPublic           bool    `json:"isPublic"`
}

type difficultRequest struct {
	Difficult bool `json:"difficult"`
}

// Analyze handles POST /api/sentences/analyze.
func (h *SentenceHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis, err := h.svc.Analyze(r.Context(), req.ChineseText)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	words := make([]wordTokenResponse, len(analysis.Words))
	for i, tok := range analysis.Words {
		words[i] = wordTokenResponse{
			ChineseWord:        tok.ChineseWord,
			Pinyin:             tok.Pinyin,
			EnglishTranslation: tok.EnglishTranslation,
			IsNew:              tok.IsNew,
		}
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		ChineseText:        analysis.ChineseText,
		Pinyin:             analysis.Pinyin,
		EnglishTranslation: analysis.EnglishTranslation,
		Words:              words,
	})
}

// Translate handles POST /api/translate.
func (h *SentenceHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	translated, err := h.svc.Translate(r.Context(), req.Text, req.TargetLang)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"translation": translated})
}

// Create handles POST /api/sentences.
func (h *SentenceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSentenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), sentence.CreateInput{
		ChineseText:        req.ChineseText,
		EnglishTranslation: req.EnglishTranslation,
		Pinyin:             req.Pinyin,
		AudioFilename:      req.AudioFilename,
		IsPublic:           req.IsPublic,
		DefinedWords:       toWordOverrides(req.DefinedWords),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSentenceResponse(created, nil))
}

// CreateBulk handles POST /api/sentences/bulk.
func (h *SentenceHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]sentence.BulkItem, len(req.Sentences))
	for i, item := range req.Sentences {
		items[i] = sentence.BulkItem{
			ChineseText:        item.ChineseText,
			EnglishTranslation: item.EnglishTranslation,
			Pinyin:             item.Pinyin,
			DefinedWords:       toWordOverrides(item.DefinedWords),
		}
	}

	result, err := h.svc.CreateBulk(r.Context(), items)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	added := make([]sentenceResponse, len(result.Added))
	for i, s := range result.Added {
		added[i] = toSentenceResponse(s, nil)
	}
	bulkErrors := make([]bulkErrorResponse, len(result.Errors))
	for i, e := range result.Errors {
		bulkErrors[i] = bulkErrorResponse{Text: e.Text, Message: e.Message}
	}
	skipped := result.Skipped
	if skipped == nil {
		skipped = []string{}
	}

	writeJSON(w, http.StatusOK, bulkCreateResponse{
		Added:   added,
		Skipped: skipped,
		Errors:  bulkErrors,
	})
}

// CheckExisting handles POST /api/sentences/check-existing.
func (h *SentenceHandler) CheckExisting(w http.ResponseWriter, r *http.Request) {
	var req checkExistingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	existing, err := h.svc.CheckExisting(r.Context(), req.Texts)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"existing": existing})
}

// List handles GET /api/sentences.
func (h *SentenceHandler) List(w http.ResponseWriter, r *http.Request) {
	params := domain.SentenceListParams{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}
	deckID, ok, err := queryUUID(r, "deckId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deckId")
		return
	}
	if ok {
		params.DeckID = &deckID
	}

	page, err := h.svc.List(r.Context(), params)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page))
}

// Get handles GET /api/sentences/{id}.
func (h *SentenceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sentence id")
		return
	}

	view, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSentenceResponse(&view.Sentence, view.Progress))
}

// Words handles GET /api/sentences/{id}/words.
func (h *SentenceHandler) Words(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sentence id")
		return
	}

	words, err := h.svc.Words(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]wordResponse, len(words))
	for i := range words {
		pos := words[i].Position
		out[i] = toWordResponse(&words[i].Word, &pos)
	}

	writeJSON(w, http.StatusOK, map[string][]wordResponse{"words": out})
}

// Update handles PUT /api/sentences/{id}.
func (h *SentenceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sentence id")
		return
	}

	var req updateSentenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, sentence.UpdateInput{
		ChineseText:        req.ChineseText,
		Pinyin:             req.Pinyin,
		EnglishTranslation: req.EnglishTranslation,
		AudioFilename:      req.AudioFilename,
		IsPublic:           req.IsPublic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSentenceResponse(updated, nil))
}

// Delete handles DELETE /api/sentences/{id}.
func (h *SentenceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sentence id")
		return
	}

	audioFilename, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := map[string]any{"status": "deleted"}
	if audioFilename != nil {
		resp["audioFilename"] = *audioFilename
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteAll handles DELETE /api/sentences.
func (h *SentenceHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.svc.DeleteAll(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}

// Practice handles POST /api/sentences/{id}/practice.
func (h *SentenceHandler) Practice(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sentence id")
		return
	}

	progress, err := h.svc.RecordPractice(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(progress))
}

// Difficult handles PUT /api/sentences/{id}/difficult.
func (h *SentenceHandler) Difficult(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid sentence id")
		return
	}

	var req difficultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	progress, err := h.svc.SetDifficult(r.Context(), id, req.Difficult)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(progress))
}

func toWordOverrides(reqs []wordOverrideRequest) []sentence.WordOverride {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]sentence.WordOverride, len(reqs))
	for i, req := range reqs {
		out[i] = sentence.WordOverride{
			ChineseWord:        req.ChineseWord,
			Pinyin:             req.Pinyin,
			EnglishTranslation: req.EnglishTranslation,
		}
	}
	return out
}

// queryInt parses an integer query parameter, falling back on def.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// queryUUID parses a UUID query parameter. The middle return reports
// whether the parameter was present.
func queryUUID(r *http.Request, key string) (uuid.UUID, bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, err
	}
	return id, true, nil
}
