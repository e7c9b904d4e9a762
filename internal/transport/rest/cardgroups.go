package rest

import (
	"encoding/json"
	"net/http"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/service/deck"
)

// CreateCardGroup handles POST /api/card-groups.
func (h *DeckHandler) CreateCardGroup(w http.ResponseWriter, r *http.Request) {
	var req deckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.CreateCardGroup(r.Context(), deck.CardGroupInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardGroupResponse(created, nil))
}

// ListCardGroups handles GET /api/card-groups.
func (h *DeckHandler) ListCardGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.ListCardGroups(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]deckResponse, len(groups))
	for i := range groups {
		out[i] = toCardGroupResponse(&groups[i], nil)
	}
	writeJSON(w, http.StatusOK, map[string][]deckResponse{"cardGroups": out})
}

// GetCardGroup handles GET /api/card-groups/{id}.
func (h *DeckHandler) GetCardGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card group id")
		return
	}

	g, sentenceIDs, err := h.svc.GetCardGroup(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardGroupResponse(g, sentenceIDs))
}

// DeleteCardGroup handles DELETE /api/card-groups/{id}.
func (h *DeckHandler) DeleteCardGroup(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card group id")
		return
	}

	if err := h.svc.DeleteCardGroup(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// SetCardGroupSentences handles PUT /api/card-groups/{id}/sentences.
func (h *DeckHandler) SetCardGroupSentences(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid card group id")
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

	if err := h.svc.SetCardGroupSentences(r.Context(), id, sentenceIDs); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
