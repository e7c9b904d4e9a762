package rest

import (
	"net/http"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/service/sentence"
)

type flashcardCountsResponse struct {
	All       int `json:"all"`
	Due       int `json:"due"`
	Difficult int `json:"difficult"`
}

// Flashcards handles GET /api/flashcards.
func (h *SentenceHandler) Flashcards(w http.ResponseWriter, r *http.Request) {
	input := sentence.FlashcardsInput{
		Filter: domain.FlashcardFilter(r.URL.Query().Get("filter")),
		Page:   queryInt(r, "page", 0),
		Limit:  queryInt(r, "limit", 0),
	}
	deckID, ok, err := queryUUID(r, "deckId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deckId")
		return
	}
	if ok {
		input.DeckID = &deckID
	}

	page, err := h.svc.Flashcards(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPageResponse(page))
}

// FlashcardCounts handles GET /api/flashcards/counts.
func (h *SentenceHandler) FlashcardCounts(w http.ResponseWriter, r *http.Request) {
	deckID, ok, err := queryUUID(r, "deckId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deckId")
		return
	}

	var counts *domain.FlashcardCounts
	if ok {
		counts, err = h.svc.FlashcardCounts(r.Context(), &deckID)
	} else {
		counts, err = h.svc.FlashcardCounts(r.Context(), nil)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, flashcardCountsResponse{
		All:       counts.All,
		Due:       counts.Due,
		Difficult: counts.Difficult,
	})
}
