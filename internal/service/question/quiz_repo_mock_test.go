package question

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	GetQuestionWithAnswersFunc func(ctx context.Context, questionID uuid.UUID) (*domain.Question, error)

	calls struct {
		GetQuestionWithAnswers []struct {
			QuestionID uuid.UUID
		}
	}
	lockGetQuestionWithAnswers sync.RWMutex
}

func (mock *quizRepoMock) GetQuestionWithAnswers(ctx context.Context, questionID uuid.UUID) (*domain.Question, error) {
	if mock.GetQuestionWithAnswersFunc == nil {
		panic("quizRepoMock.GetQuestionWithAnswersFunc: method is nil but quizRepo.GetQuestionWithAnswers was just called")
	}
	callInfo := struct{ QuestionID uuid.UUID }{QuestionID: questionID}
	mock.lockGetQuestionWithAnswers.Lock()
	mock.calls.GetQuestionWithAnswers = append(mock.calls.GetQuestionWithAnswers, callInfo)
	mock.lockGetQuestionWithAnswers.Unlock()
	return mock.GetQuestionWithAnswersFunc(ctx, questionID)
}

func (mock *quizRepoMock) GetQuestionWithAnswersCalls() []struct{ QuestionID uuid.UUID } {
	mock.lockGetQuestionWithAnswers.RLock()
	calls := mock.calls.GetQuestionWithAnswers
	mock.lockGetQuestionWithAnswers.RUnlock()
	return calls
}
