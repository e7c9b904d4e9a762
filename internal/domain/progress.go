package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProgressStatus is the coarse learning state of a sentence for one user.
// Nothing transitions it automatically yet; it exists for future use.
type ProgressStatus string

const (
	ProgressStatusLearning ProgressStatus = "learning"
	ProgressStatusMastered ProgressStatus = "mastered"
)

// IsValid reports whether the status is a known value.
func (s ProgressStatus) IsValid() bool {
	return s == ProgressStatusLearning || s == ProgressStatusMastered
}

// Progress is the per-user-per-sentence learning state.
// Rows are created lazily on the first practice or difficulty toggle,
// never at sentence-creation time. XP only grows, by exactly 1 per
// practice event. Difficult is user-set and independent of XP.
type Progress struct {
	ID              int64
	UserID          uuid.UUID
	SentenceID      uuid.UUID
	XP              int
	Difficult       bool
	LastPracticedAt *time.Time
	NextDueAt       *time.Time
	Status          ProgressStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsDue reports whether the sentence should appear in a "due" session.
// Never practiced counts as due, and difficult sentences are always due
// regardless of their next-due date.
func (p *Progress) IsDue(now time.Time) bool {
	if p == nil || p.NextDueAt == nil {
		return true
	}
	if p.Difficult {
		return true
	}
	return !p.NextDueAt.After(now)
}

// FlashcardFilter selects which sentences a flashcard session shows.
type FlashcardFilter string

const (
	FlashcardFilterAll       FlashcardFilter = "all"
	FlashcardFilterDue       FlashcardFilter = "due"
	FlashcardFilterDifficult FlashcardFilter = "difficult"
)

// IsValid reports whether the filter is a known value.
func (f FlashcardFilter) IsValid() bool {
	switch f {
	case FlashcardFilterAll, FlashcardFilterDue, FlashcardFilterDifficult:
		return true
	}
	return false
}

// FlashcardCounts holds the sentence count per filter, computed in one pass.
type FlashcardCounts struct {
	All       int
	Due       int
	Difficult int
}
