package resolver

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ senseRepo = &senseRepoMock{}

type senseRepoMock struct {
	GetByWordAndMeaningFunc func(ctx context.Context, wordID, meaningID uuid.UUID, pos domain.PartOfSpeech) (*domain.Sense, error)
	CreateFunc              func(ctx context.Context, s *domain.Sense) (*domain.Sense, error)

	calls struct {
		GetByWordAndMeaning []struct {
			WordID    uuid.UUID
			MeaningID uuid.UUID
			Pos       domain.PartOfSpeech
		}
		Create []struct {
			S *domain.Sense
		}
	}
	lockGetByWordAndMeaning sync.RWMutex
	lockCreate              sync.RWMutex
}

func (mock *senseRepoMock) GetByWordAndMeaning(ctx context.Context, wordID, meaningID uuid.UUID, pos domain.PartOfSpeech) (*domain.Sense, error) {
	if mock.GetByWordAndMeaningFunc == nil {
		panic("senseRepoMock.GetByWordAndMeaningFunc: method is nil but senseRepo.GetByWordAndMeaning was just called")
	}
	callInfo := struct {
		WordID    uuid.UUID
		MeaningID uuid.UUID
		Pos       domain.PartOfSpeech
	}{WordID: wordID, MeaningID: meaningID, Pos: pos}
	mock.lockGetByWordAndMeaning.Lock()
	mock.calls.GetByWordAndMeaning = append(mock.calls.GetByWordAndMeaning, callInfo)
	mock.lockGetByWordAndMeaning.Unlock()
	return mock.GetByWordAndMeaningFunc(ctx, wordID, meaningID, pos)
}

func (mock *senseRepoMock) GetByWordAndMeaningCalls() []struct {
	WordID    uuid.UUID
	MeaningID uuid.UUID
	Pos       domain.PartOfSpeech
} {
	mock.lockGetByWordAndMeaning.RLock()
	calls := mock.calls.GetByWordAndMeaning
	mock.lockGetByWordAndMeaning.RUnlock()
	return calls
}

func (mock *senseRepoMock) Create(ctx context.Context, s *domain.Sense) (*domain.Sense, error) {
	if mock.CreateFunc == nil {
		panic("senseRepoMock.CreateFunc: method is nil but senseRepo.Create was just called")
	}
	callInfo := struct{ S *domain.Sense }{S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *senseRepoMock) CreateCalls() []struct{ S *domain.Sense } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
