package sentence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/domain"
)

var _ sentenceRepo = &sentenceRepoMock{}

type sentenceRepoMock struct {
	CreateFunc             func(ctx context.Context, s *domain.Sentence) (*domain.Sentence, error)
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (*domain.Sentence, error)
	GetByTextFunc          func(ctx context.Context, creatorID uuid.UUID, chineseText string) (*domain.Sentence, error)
	ExistingTextsFunc      func(ctx context.Context, creatorID uuid.UUID, texts []string) ([]string, error)
	ListByCreatorFunc      func(ctx context.Context, creatorID uuid.UUID, params domain.SentenceListParams) ([]domain.Sentence, int, error)
	AddWordsFunc           func(ctx context.Context, sentenceID uuid.UUID, associations []domain.SentenceWord) error
	GetWordsFunc           func(ctx context.Context, sentenceID uuid.UUID) ([]domain.WordAtPosition, error)
	UpdateFunc             func(ctx context.Context, id uuid.UUID, params domain.SentenceUpdate) (*domain.Sentence, error)
	TouchLastPracticedFunc func(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	DeleteByCreatorFunc    func(ctx context.Context, creatorID uuid.UUID) (int, error)

	calls struct {
		Create             []*domain.Sentence
		GetByID            []uuid.UUID
		GetByText          []string
		ExistingTexts      [][]string
		ListByCreator      []domain.SentenceListParams
		AddWords           [][]domain.SentenceWord
		GetWords           []uuid.UUID
		Update             []domain.SentenceUpdate
		TouchLastPracticed []uuid.UUID
		Delete             []uuid.UUID
		DeleteByCreator    []uuid.UUID
	}
	mu sync.Mutex
}

func (mock *sentenceRepoMock) Create(ctx context.Context, s *domain.Sentence) (*domain.Sentence, error) {
	if mock.CreateFunc == nil {
		panic("sentenceRepoMock.CreateFunc: method is nil but sentenceRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, s)
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sentenceRepoMock) CreateCalls() []*domain.Sentence {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Create
}

func (mock *sentenceRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Sentence, error) {
	if mock.GetByIDFunc == nil {
		panic("sentenceRepoMock.GetByIDFunc: method is nil but sentenceRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, id)
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sentenceRepoMock) GetByIDCalls() []uuid.UUID {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetByID
}

func (mock *sentenceRepoMock) GetByText(ctx context.Context, creatorID uuid.UUID, chineseText string) (*domain.Sentence, error) {
	if mock.GetByTextFunc == nil {
		panic("sentenceRepoMock.GetByTextFunc: method is nil but sentenceRepo.GetByText was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByText = append(mock.calls.GetByText, chineseText)
	mock.mu.Unlock()
	return mock.GetByTextFunc(ctx, creatorID, chineseText)
}

func (mock *sentenceRepoMock) GetByTextCalls() []string {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetByText
}

func (mock *sentenceRepoMock) ExistingTexts(ctx context.Context, creatorID uuid.UUID, texts []string) ([]string, error) {
	if mock.ExistingTextsFunc == nil {
		panic("sentenceRepoMock.ExistingTextsFunc: method is nil but sentenceRepo.ExistingTexts was just called")
	}
	mock.mu.Lock()
	mock.calls.ExistingTexts = append(mock.calls.ExistingTexts, texts)
	mock.mu.Unlock()
	return mock.ExistingTextsFunc(ctx, creatorID, texts)
}

func (mock *sentenceRepoMock) ExistingTextsCalls() [][]string {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.ExistingTexts
}

func (mock *sentenceRepoMock) ListByCreator(ctx context.Context, creatorID uuid.UUID, params domain.SentenceListParams) ([]domain.Sentence, int, error) {
	if mock.ListByCreatorFunc == nil {
		panic("sentenceRepoMock.ListByCreatorFunc: method is nil but sentenceRepo.ListByCreator was just called")
	}
	mock.mu.Lock()
	mock.calls.ListByCreator = append(mock.calls.ListByCreator, params)
	mock.mu.Unlock()
	return mock.ListByCreatorFunc(ctx, creatorID, params)
}

func (mock *sentenceRepoMock) ListByCreatorCalls() []domain.SentenceListParams {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.ListByCreator
}

func (mock *sentenceRepoMock) AddWords(ctx context.Context, sentenceID uuid.UUID, associations []domain.SentenceWord) error {
	if mock.AddWordsFunc == nil {
		panic("sentenceRepoMock.AddWordsFunc: method is nil but sentenceRepo.AddWords was just called")
	}
	mock.mu.Lock()
	mock.calls.AddWords = append(mock.calls.AddWords, associations)
	mock.mu.Unlock()
	return mock.AddWordsFunc(ctx, sentenceID, associations)
}

func (mock *sentenceRepoMock) AddWordsCalls() [][]domain.SentenceWord {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.AddWords
}

func (mock *sentenceRepoMock) GetWords(ctx context.Context, sentenceID uuid.UUID) ([]domain.WordAtPosition, error) {
	if mock.GetWordsFunc == nil {
		panic("sentenceRepoMock.GetWordsFunc: method is nil but sentenceRepo.GetWords was just called")
	}
	mock.mu.Lock()
	mock.calls.GetWords = append(mock.calls.GetWords, sentenceID)
	mock.mu.Unlock()
	return mock.GetWordsFunc(ctx, sentenceID)
}

func (mock *sentenceRepoMock) GetWordsCalls() []uuid.UUID {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetWords
}

func (mock *sentenceRepoMock) Update(ctx context.Context, id uuid.UUID, params domain.SentenceUpdate) (*domain.Sentence, error) {
	if mock.UpdateFunc == nil {
		panic("sentenceRepoMock.UpdateFunc: method is nil but sentenceRepo.Update was just called")
	}
	mock.mu.Lock()
	mock.calls.Update = append(mock.calls.Update, params)
	mock.mu.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *sentenceRepoMock) UpdateCalls() []domain.SentenceUpdate {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Update
}

func (mock *sentenceRepoMock) TouchLastPracticed(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.TouchLastPracticedFunc == nil {
		panic("sentenceRepoMock.TouchLastPracticedFunc: method is nil but sentenceRepo.TouchLastPracticed was just called")
	}
	mock.mu.Lock()
	mock.calls.TouchLastPracticed = append(mock.calls.TouchLastPracticed, id)
	mock.mu.Unlock()
	return mock.TouchLastPracticedFunc(ctx, id, at)
}

func (mock *sentenceRepoMock) TouchLastPracticedCalls() []uuid.UUID {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.TouchLastPracticed
}

func (mock *sentenceRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("sentenceRepoMock.DeleteFunc: method is nil but sentenceRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, id)
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sentenceRepoMock) DeleteCalls() []uuid.UUID {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Delete
}

func (mock *sentenceRepoMock) DeleteByCreator(ctx context.Context, creatorID uuid.UUID) (int, error) {
	if mock.DeleteByCreatorFunc == nil {
		panic("sentenceRepoMock.DeleteByCreatorFunc: method is nil but sentenceRepo.DeleteByCreator was just called")
	}
	mock.mu.Lock()
	mock.calls.DeleteByCreator = append(mock.calls.DeleteByCreator, creatorID)
	mock.mu.Unlock()
	return mock.DeleteByCreatorFunc(ctx, creatorID)
}

func (mock *sentenceRepoMock) DeleteByCreatorCalls() []uuid.UUID {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.DeleteByCreator
}

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	FindOrCreateFunc      func(ctx context.Context, w domain.Word) (*domain.Word, bool, error)
	GetBySurfaceFunc      func(ctx context.Context, chineseWord string) (*domain.Word, error)
	UpdateTranslationFunc func(ctx context.Context, id uuid.UUID, translation string) error

	calls struct {
		FindOrCreate      []domain.Word
		GetBySurface      []string
		UpdateTranslation []string
	}
	mu sync.Mutex
}

func (mock *wordRepoMock) FindOrCreate(ctx context.Context, w domain.Word) (*domain.Word, bool, error) {
	if mock.FindOrCreateFunc == nil {
		panic("wordRepoMock.FindOrCreateFunc: method is nil but wordRepo.FindOrCreate was just called")
	}
	mock.mu.Lock()
	mock.calls.FindOrCreate = append(mock.calls.FindOrCreate, w)
	mock.mu.Unlock()
	return mock.FindOrCreateFunc(ctx, w)
}

func (mock *wordRepoMock) FindOrCreateCalls() []domain.Word {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.FindOrCreate
}

func (mock *wordRepoMock) GetBySurface(ctx context.Context, chineseWord string) (*domain.Word, error) {
	if mock.GetBySurfaceFunc == nil {
		panic("wordRepoMock.GetBySurfaceFunc: method is nil but wordRepo.GetBySurface was just called")
	}
	mock.mu.Lock()
	mock.calls.GetBySurface = append(mock.calls.GetBySurface, chineseWord)
	mock.mu.Unlock()
	return mock.GetBySurfaceFunc(ctx, chineseWord)
}

func (mock *wordRepoMock) GetBySurfaceCalls() []string {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetBySurface
}

func (mock *wordRepoMock) UpdateTranslation(ctx context.Context, id uuid.UUID, translation string) error {
	if mock.UpdateTranslationFunc == nil {
		panic("wordRepoMock.UpdateTranslationFunc: method is nil but wordRepo.UpdateTranslation was just called")
	}
	mock.mu.Lock()
	mock.calls.UpdateTranslation = append(mock.calls.UpdateTranslation, translation)
	mock.mu.Unlock()
	return mock.UpdateTranslationFunc(ctx, id, translation)
}

func (mock *wordRepoMock) UpdateTranslationCalls() []string {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.UpdateTranslation
}

var _ progressRepo = &progressRepoMock{}

type progressRepoMock struct {
	FindOrCreateFunc     func(ctx context.Context, userID, sentenceID uuid.UUID) (*domain.Progress, error)
	GetBySentenceIDsFunc func(ctx context.Context, userID uuid.UUID, sentenceIDs []uuid.UUID) ([]domain.Progress, error)
	SaveFunc             func(ctx context.Context, p *domain.Progress) (*domain.Progress, error)

	calls struct {
		FindOrCreate     []uuid.UUID
		GetBySentenceIDs [][]uuid.UUID
		Save             []*domain.Progress
	}
	mu sync.Mutex
}

func (mock *progressRepoMock) FindOrCreate(ctx context.Context, userID, sentenceID uuid.UUID) (*domain.Progress, error) {
	if mock.FindOrCreateFunc == nil {
		panic("progressRepoMock.FindOrCreateFunc: method is nil but progressRepo.FindOrCreate was just called")
	}
	mock.mu.Lock()
	mock.calls.FindOrCreate = append(mock.calls.FindOrCreate, sentenceID)
	mock.mu.Unlock()
	return mock.FindOrCreateFunc(ctx, userID, sentenceID)
}

func (mock *progressRepoMock) FindOrCreateCalls() []uuid.UUID {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.FindOrCreate
}

func (mock *progressRepoMock) GetBySentenceIDs(ctx context.Context, userID uuid.UUID, sentenceIDs []uuid.UUID) ([]domain.Progress, error) {
	if mock.GetBySentenceIDsFunc == nil {
		panic("progressRepoMock.GetBySentenceIDsFunc: method is nil but progressRepo.GetBySentenceIDs was just called")
	}
	mock.mu.Lock()
	mock.calls.GetBySentenceIDs = append(mock.calls.GetBySentenceIDs, sentenceIDs)
	mock.mu.Unlock()
	return mock.GetBySentenceIDsFunc(ctx, userID, sentenceIDs)
}

func (mock *progressRepoMock) GetBySentenceIDsCalls() [][]uuid.UUID {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.GetBySentenceIDs
}

func (mock *progressRepoMock) Save(ctx context.Context, p *domain.Progress) (*domain.Progress, error) {
	if mock.SaveFunc == nil {
		panic("progressRepoMock.SaveFunc: method is nil but progressRepo.Save was just called")
	}
	mock.mu.Lock()
	mock.calls.Save = append(mock.calls.Save, p)
	mock.mu.Unlock()
	return mock.SaveFunc(ctx, p)
}

func (mock *progressRepoMock) SaveCalls() []*domain.Progress {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Save
}

var _ quotaRepo = &quotaRepoMock{}

type quotaRepoMock struct {
	ConsumeFunc func(ctx context.Context, userID uuid.UUID, day time.Time, limit int) (int, error)

	calls struct {
		Consume []uuid.UUID
	}
	mu sync.Mutex
}

func (mock *quotaRepoMock) Consume(ctx context.Context, userID uuid.UUID, day time.Time, limit int) (int, error) {
	if mock.ConsumeFunc == nil {
		panic("quotaRepoMock.ConsumeFunc: method is nil but quotaRepo.Consume was just called")
	}
	mock.mu.Lock()
	mock.calls.Consume = append(mock.calls.Consume, userID)
	mock.mu.Unlock()
	return mock.ConsumeFunc(ctx, userID, day, limit)
}

func (mock *quotaRepoMock) ConsumeCalls() []uuid.UUID {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Consume
}

var _ segmenter = &segmenterMock{}

type segmenterMock struct {
	SegmentFunc    func(text string) []string
	InsertWordFunc func(surfaceForm string)

	calls struct {
		Segment    []string
		InsertWord []string
	}
	mu sync.Mutex
}

func (mock *segmenterMock) Segment(text string) []string {
	if mock.SegmentFunc == nil {
		panic("segmenterMock.SegmentFunc: method is nil but segmenter.Segment was just called")
	}
	mock.mu.Lock()
	mock.calls.Segment = append(mock.calls.Segment, text)
	mock.mu.Unlock()
	return mock.SegmentFunc(text)
}

func (mock *segmenterMock) SegmentCalls() []string {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Segment
}

func (mock *segmenterMock) InsertWord(surfaceForm string) {
	mock.mu.Lock()
	mock.calls.InsertWord = append(mock.calls.InsertWord, surfaceForm)
	mock.mu.Unlock()
	if mock.InsertWordFunc != nil {
		mock.InsertWordFunc(surfaceForm)
	}
}

func (mock *segmenterMock) InsertWordCalls() []string {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.InsertWord
}

var _ romanizer = &romanizerMock{}

type romanizerMock struct {
	RomanizeFunc func(surfaceForm string) string

	calls struct {
		Romanize []string
	}
	mu sync.Mutex
}

func (mock *romanizerMock) Romanize(surfaceForm string) string {
	if mock.RomanizeFunc == nil {
		panic("romanizerMock.RomanizeFunc: method is nil but romanizer.Romanize was just called")
	}
	mock.mu.Lock()
	mock.calls.Romanize = append(mock.calls.Romanize, surfaceForm)
	mock.mu.Unlock()
	return mock.RomanizeFunc(surfaceForm)
}

func (mock *romanizerMock) RomanizeCalls() []string {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Romanize
}

var _ translator = &translatorMock{}

type translatorMock struct {
	TranslateFunc func(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	calls struct {
		Translate []string
	}
	mu sync.Mutex
}

func (mock *translatorMock) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if mock.TranslateFunc == nil {
		panic("translatorMock.TranslateFunc: method is nil but translator.Translate was just called")
	}
	mock.mu.Lock()
	mock.calls.Translate = append(mock.calls.Translate, text)
	mock.mu.Unlock()
	return mock.TranslateFunc(ctx, text, sourceLang, targetLang)
}

func (mock *translatorMock) TranslateCalls() []string {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.Translate
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	mu sync.Mutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.mu.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.mu.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return mock.calls.RunInTx
}
