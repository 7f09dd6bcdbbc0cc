package question

import (
	"context"
	"sync"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	ListByWritingsFunc func(ctx context.Context, writings []string) ([]domain.Word, error)

	calls struct {
		ListByWritings []struct {
			Writings []string
		}
	}
	lockListByWritings sync.RWMutex
}

func (mock *wordRepoMock) ListByWritings(ctx context.Context, writings []string) ([]domain.Word, error) {
	if mock.ListByWritingsFunc == nil {
		panic("wordRepoMock.ListByWritingsFunc: method is nil but wordRepo.ListByWritings was just called")
	}
	callInfo := struct{ Writings []string }{Writings: writings}
	mock.lockListByWritings.Lock()
	mock.calls.ListByWritings = append(mock.calls.ListByWritings, callInfo)
	mock.lockListByWritings.Unlock()
	return mock.ListByWritingsFunc(ctx, writings)
}

func (mock *wordRepoMock) ListByWritingsCalls() []struct{ Writings []string } {
	mock.lockListByWritings.RLock()
	calls := mock.calls.ListByWritings
	mock.lockListByWritings.RUnlock()
	return calls
}
