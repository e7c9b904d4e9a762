package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is one entry of the shared vocabulary.
// ChineseWord is the surface form and is globally unique: every sentence
// that contains the same word references the same row, no matter who
// created it first.
type Word struct {
	ID                 uuid.UUID
	ChineseWord        string
	Pinyin             string
	EnglishTranslation string
	Description        *string
	AudioFilename      *string
	CreatorID          *uuid.UUID
	IsPublic           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// WordAtPosition is a vocabulary word with its slot in one sentence.
type WordAtPosition struct {
	Word
	Position int
}

// WordToken is one segmented unit of an analyzed sentence.
// IsNew marks tokens that had no vocabulary entry at analysis time.
type WordToken struct {
	ChineseWord        string
	Pinyin             string
	EnglishTranslation string
	IsNew              bool
}

// SentenceAnalysis is the result of segmenting and annotating raw text.
// Words excludes punctuation; Pinyin keeps it, space-joined in token order.
type SentenceAnalysis struct {
	ChineseText        string
	Pinyin             string
	EnglishTranslation string
	Words              []WordToken
}
