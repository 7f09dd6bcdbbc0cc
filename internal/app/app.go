// Package app wires configuration, storage, providers, services, and the
// HTTP server together and owns the process lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/kelimeci/kelimeci-backend/internal/adapter/postgres"
	meaningrepo "github.com/kelimeci/kelimeci-backend/internal/adapter/postgres/meaning"
	quizrepo "github.com/kelimeci/kelimeci-backend/internal/adapter/postgres/quiz"
	senserepo "github.com/kelimeci/kelimeci-backend/internal/adapter/postgres/sense"
	useranswerrepo "github.com/kelimeci/kelimeci-backend/internal/adapter/postgres/useranswer"
	wordrepo "github.com/kelimeci/kelimeci-backend/internal/adapter/postgres/word"
	wordlistrepo "github.com/kelimeci/kelimeci-backend/internal/adapter/postgres/wordlist"
	"github.com/kelimeci/kelimeci-backend/internal/adapter/provider/analyzer"
	"github.com/kelimeci/kelimeci-backend/internal/adapter/provider/semantic"
	"github.com/kelimeci/kelimeci-backend/internal/config"
	"github.com/kelimeci/kelimeci-backend/internal/service/question"
	"github.com/kelimeci/kelimeci-backend/internal/service/quiz"
	"github.com/kelimeci/kelimeci-backend/internal/service/resolver"
	"github.com/kelimeci/kelimeci-backend/internal/service/wordlist"
	"github.com/kelimeci/kelimeci-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then shuts the HTTP server down gracefully.
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

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	words := wordrepo.New(pool)
	meanings := meaningrepo.New(pool)
	senses := senserepo.New(pool)
	lists := wordlistrepo.New(pool)
	quizzes := quizrepo.New(pool)
	history := useranswerrepo.New(pool)

	analyzerClient := analyzer.New(cfg.Services, logger)
	semanticClient := semantic.New(cfg.Services, logger)

	resolverSvc := resolver.NewService(logger, analyzerClient, semanticClient, words, meanings, senses, txManager)
	wordlistSvc := wordlist.NewService(logger, lists, resolverSvc)
	quizSvc := quiz.NewService(logger, lists, senses, history, quizzes, txManager, quiz.NewRand(time.Now().UnixNano()))
	questionSvc := question.NewService(logger, quizzes, words, history, txManager)

	router := rest.NewRouter(logger, cfg.CORS, rest.Handlers{
		WordLists: rest.NewWordListHandler(wordlistSvc),
		Quizzes:   rest.NewQuizHandler(quizSvc),
		Questions: rest.NewQuestionHandler(questionSvc),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
