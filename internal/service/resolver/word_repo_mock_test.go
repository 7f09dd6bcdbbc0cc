package resolver

import (
	"context"
	"sync"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByWritingFunc func(ctx context.Context, writing string) (*domain.Word, error)
	CreateFunc       func(ctx context.Context, writing string) (*domain.Word, error)

	calls struct {
		GetByWriting []struct {
			Writing string
		}
		Create []struct {
			Writing string
		}
	}
	lockGetByWriting sync.RWMutex
	lockCreate       sync.RWMutex
}

func (mock *wordRepoMock) GetByWriting(ctx context.Context, writing string) (*domain.Word, error) {
	if mock.GetByWritingFunc == nil {
		panic("wordRepoMock.GetByWritingFunc: method is nil but wordRepo.GetByWriting was just called")
	}
	callInfo := struct{ Writing string }{Writing: writing}
	mock.lockGetByWriting.Lock()
	mock.calls.GetByWriting = append(mock.calls.GetByWriting, callInfo)
	mock.lockGetByWriting.Unlock()
	return mock.GetByWritingFunc(ctx, writing)
}

func (mock *wordRepoMock) GetByWritingCalls() []struct{ Writing string } {
	mock.lockGetByWriting.RLock()
	calls := mock.calls.GetByWriting
	mock.lockGetByWriting.RUnlock()
	return calls
}

func (mock *wordRepoMock) Create(ctx context.Context, writing string) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct{ Writing string }{Writing: writing}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, writing)
}

func (mock *wordRepoMock) CreateCalls() []struct{ Writing string } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
