package topic

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	CreateFunc  func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) (*domain.Topic, error)
	UpdateFunc  func(ctx context.Context, userID uuid.UUID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) error
	ListFunc    func(ctx context.Context, userID uuid.UUID, filter domain.TopicFilter) ([]domain.Topic, int, error)
	StatsFunc   func(ctx context.Context, userID uuid.UUID) (*domain.TopicStats, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Topic *domain.Topic
		}
		GetByID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TopicID uuid.UUID
		}
		Update []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TopicID uuid.UUID
			Params  domain.TopicUpdateParams
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			TopicID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter domain.TopicFilter
		}
		Stats []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockList    sync.RWMutex
	lockStats   sync.RWMutex
}

func (mock *topicRepoMock) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	if mock.CreateFunc == nil {
		panic("topicRepoMock.CreateFunc: method is nil but topicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Topic *domain.Topic
	}{
		Ctx:   ctx,
		Topic: topic,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, topic)
}

func (mock *topicRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Topic *domain.Topic
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *topicRepoMock) Update(ctx context.Context, userID uuid.UUID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error) {
	if mock.UpdateFunc == nil {
		panic("topicRepoMock.UpdateFunc: method is nil but topicRepo.Update was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		TopicID uuid.UUID
		Params  domain.TopicUpdateParams
	}{
		Ctx:     ctx,
		UserID:  userID,
		TopicID: topicID,
		Params:  params,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, topicID, params)
}

func (mock *topicRepoMock) UpdateCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TopicID uuid.UUID
	Params  domain.TopicUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *topicRepoMock) Delete(ctx context.Context, userID uuid.UUID, topicID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("topicRepoMock.DeleteFunc: method is nil but topicRepo.Delete was just called")
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
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, topicID)
}

func (mock *topicRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	TopicID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *topicRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.TopicFilter) ([]domain.Topic, int, error) {
	if mock.ListFunc == nil {
		panic("topicRepoMock.ListFunc: method is nil but topicRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter domain.TopicFilter
	}{
		Ctx:    ctx,
		UserID: userID,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *topicRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter domain.TopicFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *topicRepoMock) Stats(ctx context.Context, userID uuid.UUID) (*domain.TopicStats, error) {
	if mock.StatsFunc == nil {
		panic("topicRepoMock.StatsFunc: method is nil but topicRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, userID)
}

func (mock *topicRepoMock) StatsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
