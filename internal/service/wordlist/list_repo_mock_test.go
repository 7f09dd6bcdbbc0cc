package wordlist

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/kelimeci/kelimeci-backend/internal/domain"
)

var _ listRepo = &listRepoMock{}

type listRepoMock struct {
	CreateFunc         func(ctx context.Context, userID uuid.UUID, name string) (*domain.WordList, error)
	GetByIDForUserFunc func(ctx context.Context, userID, listID uuid.UUID) (*domain.WordList, error)
	ListByUserIDFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.WordList, error)
	ListSensesFunc     func(ctx context.Context, listID uuid.UUID) ([]domain.Sense, error)
	AddSenseFunc       func(ctx context.Context, listID, senseID uuid.UUID) error

	calls struct {
		Create []struct {
			UserID uuid.UUID
			Name   string
		}
		GetByIDForUser []struct {
			UserID uuid.UUID
			ListID uuid.UUID
		}
		ListByUserID []struct {
			UserID uuid.UUID
		}
		ListSenses []struct {
			ListID uuid.UUID
		}
		AddSense []struct {
			ListID  uuid.UUID
			SenseID uuid.UUID
		}
	}
	lockCreate         sync.RWMutex
	lockGetByIDForUser sync.RWMutex
	lockListByUserID   sync.RWMutex
	lockListSenses     sync.RWMutex
	lockAddSense       sync.RWMutex
}

func (mock *listRepoMock) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.WordList, error) {
	if mock.CreateFunc == nil {
		panic("listRepoMock.CreateFunc: method is nil but listRepo.Create was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Name   string
	}{UserID: userID, Name: name}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, name)
}

func (mock *listRepoMock) CreateCalls() []struct {
	UserID uuid.UUID
	Name   string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *listRepoMock) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.WordList, error) {
	if mock.ListByUserIDFunc == nil {
		panic("listRepoMock.ListByUserIDFunc: method is nil but listRepo.ListByUserID was just called")
	}
	callInfo := struct{ UserID uuid.UUID }{UserID: userID}
	mock.lockListByUserID.Lock()
	mock.calls.ListByUserID = append(mock.calls.ListByUserID, callInfo)
	mock.lockListByUserID.Unlock()
	return mock.ListByUserIDFunc(ctx, userID)
}

func (mock *listRepoMock) ListByUserIDCalls() []struct{ UserID uuid.UUID } {
	mock.lockListByUserID.RLock()
	calls := mock.calls.ListByUserID
	mock.lockListByUserID.RUnlock()
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

func (mock *listRepoMock) AddSense(ctx context.Context, listID, senseID uuid.UUID) error {
	if mock.AddSenseFunc == nil {
		panic("listRepoMock.AddSenseFunc: method is nil but listRepo.AddSense was just called")
	}
	callInfo := struct {
		ListID  uuid.UUID
		SenseID uuid.UUID
	}{ListID: listID, SenseID: senseID}
	mock.lockAddSense.Lock()
	mock.calls.AddSense = append(mock.calls.AddSense, callInfo)
	mock.lockAddSense.Unlock()
	return mock.AddSenseFunc(ctx, listID, senseID)
}

func (mock *listRepoMock) AddSenseCalls() []struct {
	ListID  uuid.UUID
	SenseID uuid.UUID
} {
	mock.lockAddSense.RLock()
	calls := mock.calls.AddSense
	mock.lockAddSense.RUnlock()
	return calls
}
