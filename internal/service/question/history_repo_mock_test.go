package question

import (
	"context"
	"sync"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	CreateFunc func(ctx context.Context, ua *domain.UserAnswer) error

	calls struct {
		Create []struct {
			UA *domain.UserAnswer
		}
	}
	lockCreate sync.RWMutex
}

func (mock *historyRepoMock) Create(ctx context.Context, ua *domain.UserAnswer) error {
	if mock.CreateFunc == nil {
		panic("historyRepoMock.CreateFunc: method is nil but historyRepo.Create was just called")
	}
	callInfo := struct{ UA *domain.UserAnswer }{UA: ua}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ua)
}

func (mock *historyRepoMock) CreateCalls() []struct{ UA *domain.UserAnswer } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
