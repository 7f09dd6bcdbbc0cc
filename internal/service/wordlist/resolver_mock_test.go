package wordlist

import (
	"context"
	"sync"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
	"github.com/kelimeci/kelimeci-backend/internal/service/resolver"
)

var _ senseResolver = &senseResolverMock{}

type senseResolverMock struct {
	ResolveFunc func(ctx context.Context, input resolver.ResolveInput) (*domain.Sense, error)

	calls struct {
		Resolve []struct {
			Input resolver.ResolveInput
		}
	}
	lockResolve sync.RWMutex
}

func (mock *senseResolverMock) Resolve(ctx context.Context, input resolver.ResolveInput) (*domain.Sense, error) {
	if mock.ResolveFunc == nil {
		panic("senseResolverMock.ResolveFunc: method is nil but senseResolver.Resolve was just called")
	}
	callInfo := struct{ Input resolver.ResolveInput }{Input: input}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, input)
}

func (mock *senseResolverMock) ResolveCalls() []struct{ Input resolver.ResolveInput } {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
