package sentence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
	"github.com/Fallatori/Mandarin-Language-Studio/pkg/ctxutil"
)

// Create ingests one sentence: resolves its word tokens against the shared
// vocabulary, persists the sentence and its ordered word associations in a
// single transaction, and returns the stored sentence.
//
// When DefinedWords is set the user's curated tokens are used verbatim and
// also taught to the segmenter dictionary; otherwise the text is segmented
// automatically and newly created words get a translation fetched under the
// daily quota. A failed translation leaves the word untranslated; an
// exhausted quota aborts the whole ingestion.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Sentence, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Teach curated tokens to the segmenter before anything else, so the
	// dictionary reflects them even if persistence fails later.
	for _, w := range input.DefinedWords {
		if strings.TrimSpace(w.ChineseWord) != "" {
			s.seg.InsertWord(w.ChineseWord)
		}
	}

	if _, err := s.sentences.GetByText(ctx, userID, input.ChineseText); err == nil {
		return nil, fmt.Errorf("sentence %q: %w", input.ChineseText, domain.ErrAlreadyExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}

	var created *domain.Sentence
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		words, derivedPinyin, err := s.resolveWords(ctx, userID, input)
		if err != nil {
			return err
		}

		pinyin := input.Pinyin
		if strings.TrimSpace(pinyin) == "" {
			pinyin = derivedPinyin
		}

		stored, err := s.sentences.Create(ctx, &domain.Sentence{
			ChineseText:        input.ChineseText,
			Pinyin:             pinyin,
			EnglishTranslation: input.EnglishTranslation,
			AudioFilename:      input.AudioFilename,
			CreatorID:          &userID,
			IsPublic:           input.IsPublic,
		})
		if err != nil {
			return fmt.Errorf("create sentence: %w", err)
		}

		associations := make([]domain.SentenceWord, len(words))
		for i, w := range words {
			associations[i] = domain.SentenceWord{
				SentenceID: stored.ID,
				WordID:     w.ID,
				Position:   i,
			}
		}
		if err := s.sentences.AddWords(ctx, stored.ID, associations); err != nil {
			return fmt.Errorf("add sentence words: %w", err)
		}

		created = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("sentence created",
		slog.String("sentence_id", created.ID.String()),
		slog.Int("words", len(input.DefinedWords)),
	)
	return created, nil
}

// resolveWords turns the input into an ordered vocabulary word list, creating
// missing words on the way, and derives the sentence pinyin from the tokens.
func (s *Service) resolveWords(ctx context.Context, userID uuid.UUID, input CreateInput) ([]*domain.Word, string, error) {
	if len(input.DefinedWords) > 0 {
		return s.resolveDefinedWords(ctx, userID, input.DefinedWords)
	}
	return s.resolveSegmentedWords(ctx, userID, input.ChineseText, input.skipWordTranslation)
}

// resolveDefinedWords upserts the user-curated token list. An override whose
// translation differs from the stored word wins: the shared entry is updated.
func (s *Service) resolveDefinedWords(ctx context.Context, userID uuid.UUID, overrides []WordOverride) ([]*domain.Word, string, error) {
	words := make([]*domain.Word, 0, len(overrides))
	pinyinParts := make([]string, 0, len(overrides))

	for _, o := range overrides {
		if strings.TrimSpace(o.ChineseWord) == "" {
			continue
		}

		pinyin := o.Pinyin
		if strings.TrimSpace(pinyin) == "" {
			pinyin = s.rom.Romanize(o.ChineseWord)
		}

		word, _, err := s.words.FindOrCreate(ctx, domain.Word{
			ChineseWord:        o.ChineseWord,
			Pinyin:             pinyin,
			EnglishTranslation: o.EnglishTranslation,
			CreatorID:          &userID,
		})
		if err != nil {
			return nil, "", fmt.Errorf("find or create word %q: %w", o.ChineseWord, err)
		}

		if o.EnglishTranslation != "" && o.EnglishTranslation != word.EnglishTranslation {
			if err := s.words.UpdateTranslation(ctx, word.ID, o.EnglishTranslation); err != nil {
				return nil, "", fmt.Errorf("update word translation: %w", err)
			}
			word.EnglishTranslation = o.EnglishTranslation
		}

		words = append(words, word)
		pinyinParts = append(pinyinParts, word.Pinyin)
	}

	return words, strings.Join(pinyinParts, " "), nil
}

// resolveSegmentedWords segments the text and upserts every word token.
// Words created here have no translation yet; unless skipTranslation is set,
// one is fetched under the daily quota.
func (s *Service) resolveSegmentedWords(ctx context.Context, userID uuid.UUID, text string, skipTranslation bool) ([]*domain.Word, string, error) {
	tokens := s.seg.Segment(text)

	var words []*domain.Word
	var pinyinParts []string

	for _, tok := range tokens {
		trimmed := strings.TrimSpace(tok)
		if trimmed == "" || isSeparatorToken(tok) {
			if trimmed != "" {
				pinyinParts = append(pinyinParts, trimmed)
			}
			continue
		}

		word, wasCreated, err := s.words.FindOrCreate(ctx, domain.Word{
			ChineseWord: tok,
			Pinyin:      s.rom.Romanize(tok),
			CreatorID:   &userID,
		})
		if err != nil {
			return nil, "", fmt.Errorf("find or create word %q: %w", tok, err)
		}

		if wasCreated && !skipTranslation {
			if err := s.translateNewWord(ctx, userID, word); err != nil {
				return nil, "", err
			}
		}

		words = append(words, word)
		pinyinParts = append(pinyinParts, word.Pinyin)
	}

	return words, strings.Join(pinyinParts, " "), nil
}

// translateNewWord fetches a translation for a just-created word under the
// daily quota. Provider failures only log; quota exhaustion propagates.
func (s *Service) translateNewWord(ctx context.Context, userID uuid.UUID, word *domain.Word) error {
	if _, err := s.quota.Consume(ctx, userID, time.Now(), s.cfg.DailyTranslationLimit); err != nil {
		return err
	}

	translated, err := s.trans.Translate(ctx, word.ChineseWord, s.cfg.SourceLang, s.cfg.TargetLang)
	if err != nil {
		s.log.Warn("translation failed for new word",
			slog.String("word", word.ChineseWord),
			slog.String("error", err.Error()),
		)
		return nil
	}

	if err := s.words.UpdateTranslation(ctx, word.ID, translated); err != nil {
		return fmt.Errorf("update word translation: %w", err)
	}
	word.EnglishTranslation = translated
	return nil
}
