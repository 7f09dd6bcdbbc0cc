package quiz

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	GetByIDForUserFunc func(ctx context.Context, userID, listID uuid.UUID) (*domain.WordList, error)
	ListSensesFunc     func(ctx context.Context, listID uuid.UUID) ([]domain.Sense, error)

	calls struct {
		GetByIDForUser []struct {
			UserID uuid.UUID
			ListID uuid.UUID
		}
		ListSenses []struct {
			ListID uuid.UUID
		}
	}
	lockGetByIDForUser sync.RWMutex
	lockListSenses     sync.RWMutex
}

func (mock *listRepoMock) GetByIDForUser(ctx context.Context, userID, listID uuid.UUID) (*domain.WordList, error) {
	if mock.GetByIDForUserFunc == nil {
		panic("listRepoMock.GetByIDForUserFunc: method is nil but listRepo.GetByIDForUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ListID uuid.UUID
	}{UserID: userID, ListID: listID}
	mock.lockGetByIDForUser.Lock()
	mock.calls.GetByIDForUser = append(mock.calls.GetByIDForUser, callInfo)
	mock.lockGetByIDForUser.Unlock()
	return mock.GetByIDForUserFunc(ctx, userID, listID)
}

func (mock *listRepoMock) GetByIDForUserCalls() []struct {
	UserID uuid.UUID
	ListID uuid.UUID
} {
	mock.lockGetByIDForUser.RLock()
	calls := mock.calls.GetByIDForUser
	mock.lockGetByIDForUser.RUnlock()
	return calls
}

func (mock *listRepoMock) ListSenses(ctx context.Context, listID uuid.UUID) ([]domain.Sense, error) {
	if mock.ListSensesFunc == nil {
		panic("listRepoMock.ListSensesFunc: method is nil but listRepo.ListSenses was just called")
	}
	callInfo := struct{ ListID uuid.UUID }{ListID: listID}
	mock.lockListSenses.Lock()
	mock.calls.ListSenses = append(mock.calls.ListSenses, callInfo)
	mock.lockListSenses.Unlock()
	return mock.ListSensesFunc(ctx, listID)
}

func (mock *listRepoMock) ListSensesCalls() []struct{ ListID uuid.UUID } {
	mock.lockListSenses.RLock()
	calls := mock.calls.ListSenses
	mock.lockListSenses.RUnlock()
	return calls
}
