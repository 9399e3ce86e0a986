package generation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc      func(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (*domain.Topic, error)
	UpdateStatusFunc func(ctx context.Context, topicID uuid.UUID, status domain.TopicStatus) error

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TopicID uuid.UUID
		}
		UpdateStatus []struct {
			Ctx     context.Context
			TopicID uuid.UUID
			Status  domain.TopicStatus
		}
	}
	lockGetByID      sync.RWMutex
	lockUpdateStatus sync.RWMutex
}

func (mock *topicRepoMock) GetByID(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		TopicID: topicID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, topicID)
}

func (mock *topicRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TopicID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *topicRepoMock) UpdateStatus(ctx context.Context, topicID uuid.UUID, status domain.TopicStatus) error {
	if mock.UpdateStatusFunc == nil {
		panic("topicRepoMock.UpdateStatusFunc: method is nil but topicRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
		Status  domain.TopicStatus
	}{
		Ctx:     ctx,
		TopicID: topicID,
		Status:  status,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, topicID, status)
}

func (mock *topicRepoMock) UpdateStatusCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
	Status  domain.TopicStatus
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}
