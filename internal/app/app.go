// Package app wires configuration, storage, providers, services, and the
// HTTP transport into a running server.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (migrations)
	"github.com/pressly/goose/v3"

	"github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres"
	cardgrouppg "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/cardgroup"
	deckpg "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/deck"
	progresspg "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/progress"
	quotapg "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/quota"
	sentencepg "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/sentence"
	userpg "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/user"
	wordpg "github.com/Fallatori/Mandarin-Language-Studio/internal/adapter/postgres/word"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/auth"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/config"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/provider/romanize"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/provider/segment"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/provider/translate"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/service/deck"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/service/sentence"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/service/user"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/service/word"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/transport/middleware"
	"github.com/Fallatori/Mandarin-Language-Studio/internal/transport/rest"
	"github.com/Fallatori/Mandarin-Language-Studio/migrations"
)

// translator matches the provider clients; the concrete one is picked by
// configuration.
type translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Run is the application entry point. It blocks until ctx is cancelled,
// then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	sentenceRepo := sentencepg.New(pool)
	wordRepo := wordpg.New(pool)
	progressRepo := progresspg.New(pool)
	quotaRepo := quotapg.New(pool)
	userRepo := userpg.New(pool)
	deckRepo := deckpg.New(pool)
	cardGroupRepo := cardgrouppg.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Providers.
	segmenter, err := segment.New()
	if err != nil {
		return err
	}
	romanizer := romanize.New()

	// Re-teach the segmenter the vocabulary users have curated, so their
	// multi-character words survive restarts.
	surfaces, err := wordRepo.MultiCharSurfaces(ctx)
	if err != nil {
		return fmt.Errorf("load taught words: %w", err)
	}
	for _, surface := range surfaces {
		segmenter.InsertWord(surface)
	}
	logger.Info("segmenter dictionary seeded", slog.Int("taught_words", len(surfaces)))

	var trans translator
	switch cfg.Translate.Provider {
	case "stub":
		trans = translate.NewStub()
		logger.Warn("using stub translator, translations will be empty")
	default:
		trans = translate.NewGoogleClient(cfg.Translate.Timeout)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	// Services.
	sentenceSvc := sentence.NewService(
		logger,
		sentenceRepo,
		wordRepo,
		progressRepo,
		quotaRepo,
		segmenter,
		romanizer,
		trans,
		txManager,
		sentence.Config{
			DailyTranslationLimit: cfg.Quota.DailyTranslationLimit,
			MinSpacingDays:        cfg.Srs.MinSpacingDays,
			MaxSpacingDays:        cfg.Srs.MaxSpacingDays,
			DifficultSpacingDays:  cfg.Srs.DifficultSpacingDays,
			SourceLang:            cfg.Translate.SourceLang,
			TargetLang:            cfg.Translate.TargetLang,
		},
	)
	wordSvc := word.NewService(logger, wordRepo, segmenter)
	deckSvc := deck.NewService(logger, deckRepo, cardGroupRepo, txManager)
	userSvc := user.NewService(logger, userRepo, jwtManager)

	// Transport.
	mux := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(userSvc, logger),
		Sentences: rest.NewSentenceHandler(sentenceSvc, logger),
		Words:     rest.NewWordHandler(wordSvc, logger),
		Decks:     rest.NewDeckHandler(deckSvc, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(cfg.Server.RateLimitPerMinute),
		middleware.Auth(jwtManager),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      chain(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

// migrate applies pending goose migrations from the embedded filesystem.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
