package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ senseRepo = &senseRepoMock{}

type senseRepoMock struct {
	ListByMeaningIDFunc func(ctx context.Context, meaningID uuid.UUID) ([]domain.Sense, error)
	ListCandidatesFunc  func(ctx context.Context, excludeMeaningID uuid.UUID, excludeWriting string, limit int) ([]domain.Sense, error)

	calls struct {
		ListByMeaningID []struct {
			MeaningID uuid.UUID
		}
		ListCandidates []struct {
			ExcludeMeaningID uuid.UUID
			ExcludeWriting   string
			Limit            int
		}
	}
	lockListByMeaningID sync.RWMutex
	lockListCandidates  sync.RWMutex
}

func (mock *senseRepoMock) ListByMeaningID(ctx context.Context, meaningID uuid.UUID) ([]domain.Sense, error) {
	if mock.ListByMeaningIDFunc == nil {
		panic("senseRepoMock.ListByMeaningIDFunc: method is nil but senseRepo.ListByMeaningID was just called")
	}
	callInfo := struct{ MeaningID uuid.UUID }{MeaningID: meaningID}
	mock.lockListByMeaningID.Lock()
	mock.calls.ListByMeaningID = append(mock.calls.ListByMeaningID, callInfo)
	mock.lockListByMeaningID.Unlock()
	return mock.ListByMeaningIDFunc(ctx, meaningID)
}

func (mock *senseRepoMock) ListByMeaningIDCalls() []struct{ MeaningID uuid.UUID } {
	mock.lockListByMeaningID.RLock()
	calls := mock.calls.ListByMeaningID
	mock.lockListByMeaningID.RUnlock()
	return calls
}

func (mock *senseRepoMock) ListCandidates(ctx context.Context, excludeMeaningID uuid.UUID, excludeWriting string, limit int) ([]domain.Sense, error) {
	if mock.ListCandidatesFunc == nil {
		panic("senseRepoMock.ListCandidatesFunc: method is nil but senseRepo.ListCandidates was just called")
	}
	callInfo := struct {
		ExcludeMeaningID uuid.UUID
		ExcludeWriting   string
		Limit            int
	}{ExcludeMeaningID: excludeMeaningID, ExcludeWriting: excludeWriting, Limit: limit}
	mock.lockListCandidates.Lock()
	mock.calls.ListCandidates = append(mock.calls.ListCandidates, callInfo)
	mock.lockListCandidates.Unlock()
	return mock.ListCandidatesFunc(ctx, excludeMeaningID, excludeWriting, limit)
}

func (mock *senseRepoMock) ListCandidatesCalls() []struct {
	ExcludeMeaningID uuid.UUID
	ExcludeWriting   string
	Limit            int
} {
	mock.lockListCandidates.RLock()
	calls := mock.calls.ListCandidates
	mock.lockListCandidates.RUnlock()
	return calls
}
