package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

// EvaluateInput holds one answer submission.
type EvaluateInput struct {
	QuestionID uuid.UUID
	UserID     uuid.UUID
	Writings   []string
}

// Validate validates the evaluate input.
func (i EvaluateInput) Validate() error {
	var errs []domain.FieldError

	if i.QuestionID == (uuid.UUID{}) {
		errs = append(errs, domain.FieldError{Field: "question_id", Message: "required"})
	}
	if i.UserID == (uuid.UUID{}) {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Result is the evaluation outcome returned to the learner.
type Result struct {
	Correct bool `json:"correct"`
}

// Evaluate checks a submission against the question's answer groups and
// records it. The submission is correct only when its normalized writings
// exactly equal the union of all answer-group words; an empty submission is
// always incorrect. The record is appended either way.
func (s *Service) Evaluate(ctx context.Context, input EvaluateInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	question, err := s.quizzes.GetQuestionWithAnswers(ctx, input.QuestionID)
	if err != nil {
		return nil, err
	}

	submitted := domain.NormalizeWritings(input.Writings)
	correct := len(submitted) > 0 && matchesAnswerUnion(submitted, question.Answers)

	record := &domain.UserAnswer{
		QuestionID: question.ID,
		UserID:     input.UserID,
		IsCorrect:  correct,
	}

	if len(submitted) > 0 {
		writings := make([]string, 0, len(submitted))
		for w := range submitted {
			writings = append(writings, w)
		}
		record.Words, err = s.words.ListByWritings(ctx, writings)
		if err != nil {
			return nil, fmt.Errorf("look up submitted words: %w", err)
		}
	}

	if err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.history.Create(ctx, record)
	}); err != nil {
		return nil, fmt.Errorf("record submission: %w", err)
	}

	s.log.InfoContext(ctx, "answer evaluated",
		slog.String("question_id", question.ID.String()),
		slog.Bool("correct", correct))

	return &Result{Correct: correct}, nil
}

// matchesAnswerUnion reports whether the submitted set equals the union of
// every answer group's words, compared in normalized form.
func matchesAnswerUnion(submitted map[string]struct{}, answers []domain.Answer) bool {
	expected := make(map[string]struct{})
	for _, answer := range answers {
		for _, word := range answer.Words {
			expected[domain.NormalizeWriting(word.Writing)] = struct{}{}
		}
	}

	if len(submitted) != len(expected) {
		return false
	}
	for w := range submitted {
		if _, ok := expected[w]; !ok {
			return false
		}
	}
	return true
}
