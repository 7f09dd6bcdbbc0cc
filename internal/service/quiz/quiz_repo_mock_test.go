package quiz

import (
	"context"
	"sync"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ quizRepo = &quizRepoMock{}

type quizRepoMock struct {
	CreateQuizFunc     func(ctx context.Context, q *domain.Quiz) error
	CreateQuestionFunc func(ctx context.Context, q *domain.Question) error
	CreateAnswerFunc   func(ctx context.Context, a *domain.Answer) error

	calls struct {
		CreateQuiz []struct {
			Q *domain.Quiz
		}
		CreateQuestion []struct {
			Q *domain.Question
		}
		CreateAnswer []struct {
			A *domain.Answer
		}
	}
	lockCreateQuiz     sync.RWMutex
	lockCreateQuestion sync.RWMutex
	lockCreateAnswer   sync.RWMutex
}

func (mock *quizRepoMock) CreateQuiz(ctx context.Context, q *domain.Quiz) error {
	if mock.CreateQuizFunc == nil {
		panic("quizRepoMock.CreateQuizFunc: method is nil but quizRepo.CreateQuiz was just called")
	}
	callInfo := struct{ Q *domain.Quiz }{Q: q}
	mock.lockCreateQuiz.Lock()
	mock.calls.CreateQuiz = append(mock.calls.CreateQuiz, callInfo)
	mock.lockCreateQuiz.Unlock()
	return mock.CreateQuizFunc(ctx, q)
}

func (mock *quizRepoMock) CreateQuizCalls() []struct{ Q *domain.Quiz } {
	mock.lockCreateQuiz.RLock()
	calls := mock.calls.CreateQuiz
	mock.lockCreateQuiz.RUnlock()
	return calls
}

func (mock *quizRepoMock) CreateQuestion(ctx context.Context, q *domain.Question) error {
	if mock.CreateQuestionFunc == nil {
		panic("quizRepoMock.CreateQuestionFunc: method is nil but quizRepo.CreateQuestion was just called")
	}
	callInfo := struct{ Q *domain.Question }{Q: q}
	mock.lockCreateQuestion.Lock()
	mock.calls.CreateQuestion = append(mock.calls.CreateQuestion, callInfo)
	mock.lockCreateQuestion.Unlock()
	return mock.CreateQuestionFunc(ctx, q)
}

func (mock *quizRepoMock) CreateQuestionCalls() []struct{ Q *domain.Question } {
	mock.lockCreateQuestion.RLock()
	calls := mock.calls.CreateQuestion
	mock.lockCreateQuestion.RUnlock()
	return calls
}

func (mock *quizRepoMock) CreateAnswer(ctx context.Context, a *domain.Answer) error {
	if mock.CreateAnswerFunc == nil {
		panic("quizRepoMock.CreateAnswerFunc: method is nil but quizRepo.CreateAnswer was just called")
	}
	callInfo := struct{ A *domain.Answer }{A: a}
	mock.lockCreateAnswer.Lock()
	mock.calls.CreateAnswer = append(mock.calls.CreateAnswer, callInfo)
	mock.lockCreateAnswer.Unlock()
	return mock.CreateAnswerFunc(ctx, a)
}

func (mock *quizRepoMock) CreateAnswerCalls() []struct{ A *domain.Answer } {
	mock.lockCreateAnswer.RLock()
	calls := mock.calls.CreateAnswer
	mock.lockCreateAnswer.RUnlock()
	return calls
}
