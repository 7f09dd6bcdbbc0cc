package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

const (
	// minPoolSize is the smallest list a quiz can be generated from;
	// below it the engine returns the empty sentinel.
	minPoolSize = 8

	// maxQuestions caps a quiz regardless of list size.
	maxQuestions = 20

	// Weighted generator dispatch per target: draws below the first cutoff
	// yield synonym matching, below the second multiple choice, the rest
	// fill-in-the-blank.
	synonymMatchingCutoff = 0.2
	multipleChoiceCutoff  = 0.5

	// Weakness scoring deltas per past answer touching an option sense.
	correctDelta   = 1
	incorrectDelta = -2
)

// GenerateInput holds parameters for quiz generation.
type GenerateInput struct {
	UserID     uuid.UUID
	WordListID uuid.UUID
}

// Validate validates the generate input.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == (uuid.UUID{}) {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.WordListID == (uuid.UUID{}) {
		errs = append(errs, domain.FieldError{Field: "word_list_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Generate builds and persists a quiz for the user's word list. Lists with
// fewer than minPoolSize senses yield QuizResult{Empty: true}, not an error.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*QuizResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	list, err := s.lists.GetByIDForUser(ctx, input.UserID, input.WordListID)
	if err != nil {
		return nil, err
	}

	pool, err := s.lists.ListSenses(ctx, list.ID)
	if err != nil {
		return nil, err
	}

	if len(pool) < minPoolSize {
		s.log.InfoContext(ctx, "list too small for a quiz",
			slog.String("word_list_id", list.ID.String()),
			slog.Int("senses", len(pool)))
		return &QuizResult{Empty: true}, nil
	}

	history, err := s.history.ListByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	ordered := orderByWeakness(pool, history)
	targets := ordered[:min(maxQuestions, len(ordered))]

	quiz := &domain.Quiz{
		WordListID: list.ID,
		UserID:     input.UserID,
	}

	for _, target := range targets {
		question, err := s.buildQuestion(ctx, target, ordered)
		if err != nil {
			return nil, err
		}
		question.Position = len(quiz.Questions)
		quiz.Questions = append(quiz.Questions, *question)
	}

	if err := s.persist(ctx, quiz); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "quiz generated",
		slog.String("quiz_id", quiz.ID.String()),
		slog.String("word_list_id", list.ID.String()),
		slog.Int("questions", len(quiz.Questions)))

	return &QuizResult{Quiz: newQuizView(quiz)}, nil
}

// orderByWeakness scores every pool sense from the user's answer history
// (+1 per correct answer touching it, -2 per incorrect) and returns the
// pool sorted ascending, weakest first. The sort is stable so equal scores
// keep their list order.
func orderByWeakness(pool []domain.Sense, history []domain.AnswerRecord) []domain.Sense {
	scores := make(map[uuid.UUID]int, len(pool))

	for _, record := range history {
		delta := correctDelta
		if !record.IsCorrect {
			delta = incorrectDelta
		}
		for _, senseID := range record.OptionSenseIDs {
			scores[senseID] += delta
		}
	}

	ordered := make([]domain.Sense, len(pool))
	copy(ordered, pool)
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i].ID] < scores[ordered[j].ID]
	})

	return ordered
}

// buildQuestion draws a generator for the target. Generators that cannot
// produce a valid question return nil and fall through to fill-in-the-blank.
func (s *Service) buildQuestion(ctx context.Context, target domain.Sense, pool []domain.Sense) (*domain.Question, error) {
	draw := s.rnd.Float64()

	var (
		question *domain.Question
		err      error
	)
	switch {
	case draw < synonymMatchingCutoff && len(pool) >= minPoolSize:
		question = s.buildSynonymMatching(pool)
	case draw < multipleChoiceCutoff:
		question, err = s.buildMultipleChoice(ctx, target)
		if err != nil {
			return nil, err
		}
	}

	if question == nil {
		question, err = buildFillInBlank(target)
		if err != nil {
			return nil, err
		}
	}

	return question, nil
}

func (s *Service) persist(ctx context.Context, quiz *domain.Quiz) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.quizzes.CreateQuiz(ctx, quiz); err != nil {
			return fmt.Errorf("create quiz: %w", err)
		}

		for i := range quiz.Questions {
			question := &quiz.Questions[i]
			question.QuizID = quiz.ID
			if err := s.quizzes.CreateQuestion(ctx, question); err != nil {
				return fmt.Errorf("create question %d: %w", question.Position, err)
			}

			for j := range question.Answers {
				answer := &question.Answers[j]
				answer.QuestionID = question.ID
				if err := s.quizzes.CreateAnswer(ctx, answer); err != nil {
					return fmt.Errorf("create answer for question %d: %w", question.Position, err)
				}
			}
		}

		return nil
	})
}
