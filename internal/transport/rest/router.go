package rest

import "net/http"

// Handlers bundles the REST handlers for route registration.
type Handlers struct {
	Auth      *AuthHandler
	Sentences *SentenceHandler
	Words     *WordHandler
	Decks     *DeckHandler
	Health    *HealthHandler
}

// NewRouter registers all REST routes on a fresh mux. Auth and rate
// limiting are applied by the caller's middleware chain; route patterns
// use the method-aware matching of net/http.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// Probes.
	mux.HandleFunc("GET /livez", h.Health.Live)
	mux.HandleFunc("GET /readyz", h.Health.Ready)
	mux.HandleFunc("GET /healthz", h.Health.Health)

	// Auth.
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("GET /api/auth/me", h.Auth.Me)

	// Sentences.
	mux.HandleFunc("POST /api/sentences/analyze", h.Sentences.Analyze)
	mux.HandleFunc("POST /api/translate", h.Sentences.Translate)
	mux.HandleFunc("POST /api/sentences", h.Sentences.Create)
	mux.HandleFunc("POST /api/sentences/bulk", h.Sentences.CreateBulk)
	mux.HandleFunc("POST /api/sentences/check-existing", h.Sentences.CheckExisting)
	mux.HandleFunc("GET /api/sentences", h.Sentences.List)
	mux.HandleFunc("GET /api/sentences/{id}", h.Sentences.Get)
	mux.HandleFunc("GET /api/sentences/{id}/words", h.Sentences.Words)
	mux.HandleFunc("PUT /api/sentences/{id}", h.Sentences.Update)
	mux.HandleFunc("DELETE /api/sentences/{id}", h.Sentences.Delete)
	mux.HandleFunc("DELETE /api/sentences", h.Sentences.DeleteAll)

	// Study.
	mux.HandleFunc("POST /api/sentences/{id}/practice", h.Sentences.Practice)
	mux.HandleFunc("PUT /api/sentences/{id}/difficult", h.Sentences.Difficult)
	mux.HandleFunc("GET /api/flashcards", h.Sentences.Flashcards)
	mux.HandleFunc("GET /api/flashcards/counts", h.Sentences.FlashcardCounts)

	// Vocabulary.
	mux.HandleFunc("GET /api/words", h.Words.List)
	mux.HandleFunc("GET /api/words/{id}", h.Words.Get)
	mux.HandleFunc("PUT /api/words/{id}", h.Words.Update)
	mux.HandleFunc("DELETE /api/words/{id}", h.Words.Delete)
	mux.HandleFunc("POST /api/words/teach", h.Words.Teach)

	// Decks.
	mux.HandleFunc("POST /api/decks", h.Decks.CreateDeck)
	mux.HandleFunc("GET /api/decks", h.Decks.ListDecks)
	mux.HandleFunc("GET /api/decks/{id}", h.Decks.GetDeck)
	mux.HandleFunc("PUT /api/decks/{id}", h.Decks.UpdateDeck)
	mux.HandleFunc("DELETE /api/decks/{id}", h.Decks.DeleteDeck)
	mux.HandleFunc("PUT /api/decks/{id}/sentences", h.Decks.SetDeckSentences)

	// Card groups.
	mux.HandleFunc("POST /api/card-groups", h.Decks.CreateCardGroup)
	mux.HandleFunc("GET /api/card-groups", h.Decks.ListCardGroups)
	mux.HandleFunc("GET /api/card-groups/{id}", h.Decks.GetCardGroup)
	mux.HandleFunc("DELETE /api/card-groups/{id}", h.Decks.DeleteCardGroup)
	mux.HandleFunc("PUT /api/card-groups/{id}/sentences", h.Decks.SetCardGroupSentences)

	return mux
}
