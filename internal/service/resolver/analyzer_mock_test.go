package resolver

import (
	"context"
	"sync"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ analyzer = &analyzerMock{}

type analyzerMock struct {
	AnalyzeFunc func(ctx context.Context, sentence, target string) (*domain.WordAnalysis, error)

	calls struct {
		Analyze []struct {
			Sentence string
			Target   string
		}
	}
	lockAnalyze sync.RWMutex
}

func (mock *analyzerMock) Analyze(ctx context.Context, sentence, target string) (*domain.WordAnalysis, error) {
	if mock.AnalyzeFunc == nil {
		panic("analyzerMock.AnalyzeFunc: method is nil but analyzer.Analyze was just called")
	}
	callInfo := struct {
		Sentence string
		Target   string
	}{Sentence: sentence, Target: target}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, sentence, target)
}

func (mock *analyzerMock) AnalyzeCalls() []struct {
	Sentence string
	Target   string
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}
