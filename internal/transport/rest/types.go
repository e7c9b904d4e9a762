package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

// Wire representations shared by the handlers. Field names follow the
// frontend's camelCase convention.

type sentenceResponse struct {
	ID                 string     `json:"id"`
	ChineseText        string     `json:"chineseText"`
	Pinyin             string     `json:"pinyin"`
	EnglishTranslation string     `json:"englishTranslation"`
	AudioFilename      *string    `json:"audioFilename,omitempty"`
	LastPracticedAt    *time.Time `json:"lastPracticedAt,omitempty"`
	IsPublic           bool       `json:"isPublic"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`

	Progress *progressResponse `json:"progress,omitempty"`
}

type progressResponse struct {
	XP              int        `json:"xp"`
	Difficult       bool       `json:"difficult"`
	LastPracticedAt *time.Time `json:"lastPracticedAt,omitempty"`
	NextDueAt       *time.Time `json:"nextDueAt,omitempty"`
	Due             bool       `json:"due"`
	Status          string     `json:"status"`
}

type wordResponse struct {
	ID                 string  `json:"id"`
	ChineseWord        string  `json:"chineseWord"`
	Pinyin             string  `json:"pinyin"`
	EnglishTranslation string  `json:"englishTranslation"`
	Description        *string `json:"description,omitempty"`
	AudioFilename      *string `json:"audioFilename,omitempty"`
	Position           *int    `json:"position,omitempty"`
}

type pageResponse struct {
	Sentences []sentenceResponse `json:"sentences"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	HasMore   bool               `json:"hasMore"`
}

type deckResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	SentenceIDs []string  `json:"sentenceIds,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toSentenceResponse(s *domain.Sentence, p *domain.Progress) sentenceResponse {
	resp := sentenceResponse{
		ID:                 s.ID.String(),
		ChineseText:        s.ChineseText,
		Pinyin:             s.Pinyin,
		EnglishTranslation: s.EnglishTranslation,
		AudioFilename:      s.AudioFilename,
		LastPracticedAt:    s.LastPracticedAt,
		IsPublic:           s.IsPublic,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
	if p != nil {
		pr := toProgressResponse(p)
		resp.Progress = &pr
	}
	return resp
}

func toProgressResponse(p *domain.Progress) progressResponse {
	return progressResponse{
		XP:              p.XP,
		Difficult:       p.Difficult,
		LastPracticedAt: p.LastPracticedAt,
		NextDueAt:       p.NextDueAt,
		Due:             p.IsDue(time.Now()),
		Status:          string(p.Status),
	}
}

func toWordResponse(w *domain.Word, position *int) wordResponse {
	return wordResponse{
		ID:                 w.ID.String(),
		ChineseWord:        w.ChineseWord,
		Pinyin:             w.Pinyin,
		EnglishTranslation: w.EnglishTranslation,
		Description:        w.Description,
		AudioFilename:      w.AudioFilename,
		Position:           position,
	}
}

func toPageResponse(page *domain.SentencePage) pageResponse {
	sentences := make([]sentenceResponse, len(page.Sentences))
	for i, view := range page.Sentences {
		sentences[i] = toSentenceResponse(&view.Sentence, view.Progress)
	}
	return pageResponse{
		Sentences: sentences,
		Total:     page.Total,
		Page:      page.Page,
		HasMore:   page.HasMore,
	}
}

func toDeckResponse(d *domain.Deck, sentenceIDs []uuid.UUID) deckResponse {
	return deckResponse{
		ID:          d.ID.String(),
		Name:        d.Name,
		Description: d.Description,
		SentenceIDs: idStrings(sentenceIDs),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toCardGroupResponse(g *domain.CardGroup, sentenceIDs []uuid.UUID) deckResponse {
	return deckResponse{
		ID:          g.ID.String(),
		Name:        g.Name,
		Description: g.Description,
		SentenceIDs: idStrings(sentenceIDs),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func idStrings(ids []uuid.UUID) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
