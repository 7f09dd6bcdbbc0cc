package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	ListByUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]domain.AnswerRecord, error)

	calls struct {
		ListByUserID []struct {
			UserID uuid.UUID
		}
	}
	lockListByUserID sync.RWMutex
}

func (mock *historyRepoMock) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.AnswerRecord, error) {
	if mock.ListByUserIDFunc == nil {
		panic("historyRepoMock.ListByUserIDFunc: method is nil but historyRepo.ListByUserID was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockListByUserID.Lock()
	mock.calls.ListByUserID = append(mock.calls.ListByUserID, callInfo)
	mock.lockListByUserID.Unlock()
	return mock.ListByUserIDFunc(ctx, userID)
}

func (mock *historyRepoMock) ListByUserIDCalls() []struct{ UserID uuid.UUID } {
	mock.lockListByUserID.RLock()
	calls := mock.calls.ListByUserID
	mock.lockListByUserID.RUnlock()
	return calls
}
