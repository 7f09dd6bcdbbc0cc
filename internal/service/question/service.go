// Package question implements answer evaluation: a submission is correct
// only when the set of submitted writings exactly matches the union of the
// question's answer-group words. Every submission is recorded, right or
// wrong, so the quiz engine can score future quizzes from it.
package question

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

// quizRepo defines the quiz repository interface needed by the evaluator.
type quizRepo interface {
	GetQuestionWithAnswers(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)
}

// wordRepo defines the word repository interface needed by the evaluator.
type wordRepo interface {
	ListByWritings(ctx context.Context, writings []string) ([]domain.Word, error)
}

// historyRepo defines the answer-history interface needed by the evaluator.
type historyRepo interface {
	Create(ctx context.Context, ua *domain.UserAnswer) error
}

// txManager defines the transaction manager interface needed by the evaluator.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements answer evaluation.
type Service struct {
	log     *slog.Logger
	quizzes quizRepo
	words   wordRepo
	history historyRepo
	tx      txManager
}

// NewService creates a new question service instance.
func NewService(
	logger *slog.Logger,
	quizzes quizRepo,
	words wordRepo,
	history historyRepo,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "question"),
		quizzes: quizzes,
		words:   words,
		history: history,
		tx:      tx,
	}
}
