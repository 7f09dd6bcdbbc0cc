package resolver

import (
	"context"
	"sync"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ meaningRepo = &meaningRepoMock{}

type meaningRepoMock struct {
	CreateFunc      func(ctx context.Context, m *domain.Meaning) (*domain.Meaning, error)
	FindNearestFunc func(ctx context.Context, vec domain.Vector, k int) ([]domain.Meaning, error)

	calls struct {
		Create []struct {
			M *domain.Meaning
		}
		FindNearest []struct {
			Vec domain.Vector
			K   int
		}
	}
	lockCreate      sync.RWMutex
	lockFindNearest sync.RWMutex
}

func (mock *meaningRepoMock) Create(ctx context.Context, m *domain.Meaning) (*domain.Meaning, error) {
	if mock.CreateFunc == nil {
		panic("meaningRepoMock.CreateFunc: method is nil but meaningRepo.Create was just called")
	}
	callInfo := struct{ M *domain.Meaning }{M: m}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *meaningRepoMock) CreateCalls() []struct{ M *domain.Meaning } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *meaningRepoMock) FindNearest(ctx context.Context, vec domain.Vector, k int) ([]domain.Meaning, error) {
	if mock.FindNearestFunc == nil {
		panic("meaningRepoMock.FindNearestFunc: method is nil but meaningRepo.FindNearest was just called")
	}
	callInfo := struct {
		Vec domain.Vector
		K   int
	}{Vec: vec, K: k}
	mock.lockFindNearest.Lock()
	mock.calls.FindNearest = append(mock.calls.FindNearest, callInfo)
	mock.lockFindNearest.Unlock()
	return mock.FindNearestFunc(ctx, vec, k)
}

func (mock *meaningRepoMock) FindNearestCalls() []struct {
	Vec domain.Vector
	K   int
} {
	mock.lockFindNearest.RLock()
	calls := mock.calls.FindNearest
	mock.lockFindNearest.RUnlock()
	return calls
}
