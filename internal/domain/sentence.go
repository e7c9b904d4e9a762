package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sentence is a user-submitted Chinese sentence with derived pinyin.
// CreatorID is nullable: rows imported before accounts existed have no owner.
type Sentence struct {
	ID                 uuid.UUID
	ChineseText        string
	Pinyin             string
	EnglishTranslation string
	AudioFilename      *string
	// LastPracticedAt mirrors the progress row of the owner.
	// Kept on the sentence so the legacy default sort keeps working.
	LastPracticedAt *time.Time
	CreatorID       *uuid.UUID
	IsPublic        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SentenceWord links a word into a sentence at a 0-indexed position.
// The same word may appear at several positions of one sentence, so the
// row identity is (sentence, position), not (sentence, word).
type SentenceWord struct {
	SentenceID uuid.UUID
	WordID     uuid.UUID
	Position   int
}

// SentenceView is a sentence enriched with the viewer's progress.
// Progress is nil when the sentence was never practiced or flagged.
type SentenceView struct {
	Sentence Sentence
	Progress *Progress
}

// SentencePage is one page of enriched sentences.
type SentencePage struct {
	Sentences []SentenceView
	Total     int
	Page      int
	HasMore   bool
}
