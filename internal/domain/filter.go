package domain

import "github.com/google/uuid"

// SentenceListParams controls creator-scoped sentence listing.
// Limit <= 0 disables pagination (the counts path wants the full set).
type SentenceListParams struct {
	DeckID *uuid.UUID
	Limit  int
	Offset int
}

// SentenceUpdate holds the mutable sentence fields.
type SentenceUpdate struct {
	ChineseText        string
	Pinyin             string
	EnglishTranslation string
	AudioFilename      *string
	IsPublic           bool
}

// WordUpdate holds the mutable word fields. Last writer wins.
type WordUpdate struct {
	Pinyin             string
	EnglishTranslation string
	Description        *string
	AudioFilename      *string
}
