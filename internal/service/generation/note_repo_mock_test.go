package generation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

var _ noteRepo = &noteRepoMock{}

type noteRepoMock struct {
	GetByIDFunc         func(ctx context.Context, userID uuid.UUID, noteID uuid.UUID) (*domain.Note, error)
	ExistsByTopicIDFunc func(ctx context.Context, topicID uuid.UUID) (bool, error)
	CreateFunc          func(ctx context.Context, n *domain.Note) (*domain.Note, error)
	DeleteByTopicIDFunc func(ctx context.Context, topicID uuid.UUID) (bool, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			NoteID uuid.UUID
		}
		ExistsByTopicID []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			N   *domain.Note
		}
		DeleteByTopicID []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
	}
	lockGetByID         sync.RWMutex
	lockExistsByTopicID sync.RWMutex
	lockCreate          sync.RWMutex
	lockDeleteByTopicID sync.RWMutex
}

func (mock *noteRepoMock) GetByID(ctx context.Context, userID uuid.UUID, noteID uuid.UUID) (*domain.Note, error) {
	if mock.GetByIDFunc == nil {
		panic("noteRepoMock.GetByIDFunc: method is nil but noteRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		NoteID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		NoteID: noteID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, noteID)
}

func (mock *noteRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	NoteID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *noteRepoMock) ExistsByTopicID(ctx context.Context, topicID uuid.UUID) (bool, error) {
	if mock.ExistsByTopicIDFunc == nil {
		panic("noteRepoMock.ExistsByTopicIDFunc: method is nil but noteRepo.ExistsByTopicID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		TopicID: topicID,
	}
	mock.lockExistsByTopicID.Lock()
	mock.calls.ExistsByTopicID = append(mock.calls.ExistsByTopicID, callInfo)
	mock.lockExistsByTopicID.Unlock()
	return mock.ExistsByTopicIDFunc(ctx, topicID)
}

func (mock *noteRepoMock) ExistsByTopicIDCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockExistsByTopicID.RLock()
	calls := mock.calls.ExistsByTopicID
	mock.lockExistsByTopicID.RUnlock()
	return calls
}

func (mock *noteRepoMock) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	if mock.CreateFunc == nil {
		panic("noteRepoMock.CreateFunc: method is nil but noteRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   *domain.Note
	}{
		Ctx: ctx,
		N:   n,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *noteRepoMock) CreateCalls() []struct {
	Ctx context.Context
	N   *domain.Note
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *noteRepoMock) DeleteByTopicID(ctx context.Context, topicID uuid.UUID) (bool, error) {
	if mock.DeleteByTopicIDFunc == nil {
		panic("noteRepoMock.DeleteByTopicIDFunc: method is nil but noteRepo.DeleteByTopicID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		TopicID: topicID,
	}
	mock.lockDeleteByTopicID.Lock()
	mock.calls.DeleteByTopicID = append(mock.calls.DeleteByTopicID, callInfo)
	mock.lockDeleteByTopicID.Unlock()
	return mock.DeleteByTopicIDFunc(ctx, topicID)
}

func (mock *noteRepoMock) DeleteByTopicIDCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockDeleteByTopicID.RLock()
	calls := mock.calls.DeleteByTopicID
	mock.lockDeleteByTopicID.RUnlock()
	return calls
}
