package preference

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

var _ preferenceRepo = &preferenceRepoMock{}

type preferenceRepoMock struct {
	GetFunc             func(ctx context.Context, userID uuid.UUID) (*domain.Preference, error)
	CreateIfMissingFunc func(ctx context.Context, p *domain.Preference) (*domain.Preference, error)
	UpdateFunc          func(ctx context.Context, p *domain.Preference) (*domain.Preference, error)

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CreateIfMissing []struct {
			Ctx context.Context
			P   *domain.Preference
		}
		Update []struct {
			Ctx context.Context
			P   *domain.Preference
		}
	}
	lockGet             sync.RWMutex
	lockCreateIfMissing sync.RWMutex
	lockUpdate          sync.RWMutex
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

func (mock *preferenceRepoMock) CreateIfMissing(ctx context.Context, p *domain.Preference) (*domain.Preference, error) {
	if mock.CreateIfMissingFunc == nil {
		panic("preferenceRepoMock.CreateIfMissingFunc: method is nil but preferenceRepo.CreateIfMissing was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Preference
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreateIfMissing.Lock()
	mock.calls.CreateIfMissing = append(mock.calls.CreateIfMissing, callInfo)
	mock.lockCreateIfMissing.Unlock()
	return mock.CreateIfMissingFunc(ctx, p)
}

func (mock *preferenceRepoMock) CreateIfMissingCalls() []struct {
	Ctx context.Context
	P   *domain.Preference
} {
	mock.lockCreateIfMissing.RLock()
	calls := mock.calls.CreateIfMissing
	mock.lockCreateIfMissing.RUnlock()
	return calls
}

func (mock *preferenceRepoMock) Update(ctx context.Context, p *domain.Preference) (*domain.Preference, error) {
	if mock.UpdateFunc == nil {
		panic("preferenceRepoMock.UpdateFunc: method is nil but preferenceRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Preference
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *preferenceRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	P   *domain.Preference
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
