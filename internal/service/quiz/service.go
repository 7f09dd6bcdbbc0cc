// Package quiz implements adaptive quiz generation: senses of a word list
// are ranked by the learner's past mistakes, the weakest are selected as
// targets, and a randomly dispatched generator builds one question per
// target. The finished quiz is persisted in one transaction.
package quiz

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

// listRepo defines the word-list repository interface needed by the engine.
type listRepo interface {
	GetByIDForUser(ctx context.Context, userID, listID uuid.UUID) (*domain.WordList, error)
	ListSenses(ctx context.Context, listID uuid.UUID) ([]domain.Sense, error)
}

// senseRepo defines the sense repository interface needed by the engine.
type senseRepo interface {
	ListByMeaningID(ctx context.Context, meaningID uuid.UUID) ([]domain.Sense, error)
	ListCandidates(ctx context.Context, excludeMeaningID uuid.UUID, excludeWriting string, limit int) ([]domain.Sense, error)
}

// historyRepo defines the answer-history interface needed by the engine.
type historyRepo interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.AnswerRecord, error)
}

// quizRepo defines the quiz persistence interface needed by the engine.
type quizRepo interface {
	CreateQuiz(ctx context.Context, q *domain.Quiz) error
	CreateQuestion(ctx context.Context, q *domain.Question) error
	CreateAnswer(ctx context.Context, a *domain.Answer) error
}

// txManager defines the transaction manager interface needed by the engine.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements quiz generation.
type Service struct {
	log     *slog.Logger
	lists   listRepo
	senses  senseRepo
	history historyRepo
	quizzes quizRepo
	tx      txManager
	rnd     randSource
}

// NewService creates a new quiz service instance.
func NewService(
	logger *slog.Logger,
	lists listRepo,
	senses senseRepo,
	history historyRepo,
	quizzes quizRepo,
	tx txManager,
	rnd randSource,
) *Service {
	return &Service{
		log:     logger.With("service", "quiz"),
		lists:   lists,
		senses:  senses,
		history: history,
		quizzes: quizzes,
		tx:      tx,
		rnd:     rnd,
	}
}
