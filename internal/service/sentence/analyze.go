package sentence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/pkg/ctxutil"
)

// Analyze segments raw Chinese text and annotates every word token with
// pinyin and a translation, reusing the vocabulary store where possible.
// Nothing is persisted except quota consumption for newly translated words;
// the result feeds the preview/edit step before ingestion.
//
// A translation fetch failure degrades to an empty translation. An
// exhausted quota aborts the whole analysis.
func (s *Service) Analyze(ctx context.Context, chineseText string) (*domain.SentenceAnalysis, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(chineseText) == "" {
		return nil, domain.NewValidationError("chinese_text", "required")
	}

	tokens := s.seg.Segment(chineseText)

	var words []domain.WordToken
	var pinyinParts []string

	for _, tok := range tokens {
		trimmed := strings.TrimSpace(tok)
		if trimmed == "" || isSeparatorToken(tok) {
			// Punctuation keeps its place in the rendered pinyin
			// but never becomes a word.
			if trimmed != "" {
				pinyinParts = append(pinyinParts, trimmed)
			}
			continue
		}

		token := domain.WordToken{ChineseWord: tok}

		stored, err := s.words.GetBySurface(ctx, tok)
		switch {
		case err == nil:
			token.Pinyin = stored.Pinyin
			token.EnglishTranslation = stored.EnglishTranslation
		case errors.Is(err, domain.ErrNotFound):
			token.IsNew = true
			token.Pinyin = s.rom.Romanize(tok)

			if _, err := s.quota.Consume(ctx, userID, time.Now(), s.cfg.DailyTranslationLimit); err != nil {
				return nil, err
			}
			translated, trErr := s.trans.Translate(ctx, tok, s.cfg.SourceLang, s.cfg.TargetLang)
			if trErr != nil {
				s.log.Warn("translation failed for preview",
					slog.String("word", tok),
					slog.String("error", trErr.Error()),
				)
			} else {
				token.EnglishTranslation = translated
			}
		default:
			return nil, fmt.Errorf("lookup word: %w", err)
		}

		pinyinParts = append(pinyinParts, token.Pinyin)
		words = append(words, token)
	}

	return &domain.SentenceAnalysis{
		ChineseText: chineseText,
		Pinyin:      strings.Join(pinyinParts, " "),
		Words:       words,
	}, nil
}

// isSeparatorToken reports whether a token is punctuation or spacing
// rather than a word: any rune in the Unicode punctuation or separator
// classes disqualifies the whole token.
func isSeparatorToken(tok string) bool {
	return strings.ContainsFunc(tok, func(r rune) bool {
		return unicode.In(r, unicode.P, unicode.Z)
	})
}

// Translate is a passthrough to the translation provider, used by the UI
// for whole-sentence translation. Not quota-guarded: the quota protects
// only the per-word fetches of ingestion and analysis.
func (s *Service) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return "", domain.ErrUnauthorized
	}
	if targetLang == "" {
		targetLang = s.cfg.TargetLang
	}

	translated, err := s.trans.Translate(ctx, text, "", targetLang)
	if err != nil {
		return "", fmt.Errorf("translate text: %w", err)
	}
	return translated, nil
}
