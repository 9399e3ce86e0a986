package generation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

var _ preferenceRepo = &preferenceRepoMock{}

type preferenceRepoMock struct {
	GetFunc func(ctx context.Context, userID uuid.UUID) (*domain.Preference, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGet sync.RWMutex
}

func (mock *preferenceRepoMock) Get(ctx context.Context, userID uuid.UUID) (*domain.Preference, error) {
	if mock.GetFunc == nil {
		panic("preferenceRepoMock.GetFunc: method is nil but preferenceRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *preferenceRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}
