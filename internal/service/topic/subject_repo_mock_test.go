package topic

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

var _ subjectRepo = &subjectRepoMock{}

type subjectRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Subject, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *subjectRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	if mock.GetByIDFunc == nil {
		panic("subjectRepoMock.GetByIDFunc: method is nil but subjectRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *subjectRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
