package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/topic"
)

var _ topicService = &topicServiceMock{}

type topicServiceMock struct {
	CreateTopicFunc func(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error)
	GetTopicFunc    func(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListTopicsFunc  func(ctx context.Context, input topic.ListTopicsInput) (*topic.ListResult, error)
	UpdateTopicFunc func(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error)
	DeleteTopicFunc func(ctx context.Context, topicID uuid.UUID) error
	TopicStatsFunc  func(ctx context.Context) (*domain.TopicStats, error)

	calls struct {
		CreateTopic []struct {
			Ctx   context.Context
			Input topic.CreateTopicInput
		}
		GetTopic []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		ListTopics []struct {
			Ctx   context.Context
			Input topic.ListTopicsInput
		}
		UpdateTopic []struct {
			Ctx   context.Context
			Input topic.UpdateTopicInput
		}
		DeleteTopic []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		TopicStats []struct {
			Ctx context.Context
		}
	}
	lockCreateTopic sync.RWMutex
	lockGetTopic    sync.RWMutex
	lockListTopics  sync.RWMutex
	lockUpdateTopic sync.RWMutex
	lockDeleteTopic sync.RWMutex
	lockTopicStats  sync.RWMutex
}

func (mock *topicServiceMock) CreateTopic(ctx context.Context, input topic.CreateTopicInput) (*domain.Topic, error) {
	if mock.CreateTopicFunc == nil {
		panic("topicServiceMock.CreateTopicFunc: method is nil but topicService.CreateTopic was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input topic.CreateTopicInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateTopic.Lock()
	mock.calls.CreateTopic = append(mock.calls.CreateTopic, callInfo)
	mock.lockCreateTopic.Unlock()
	return mock.CreateTopicFunc(ctx, input)
}

func (mock *topicServiceMock) CreateTopicCalls() []struct {
	Ctx   context.Context
	Input topic.CreateTopicInput
} {
	mock.lockCreateTopic.RLock()
	calls := mock.calls.CreateTopic
	mock.lockCreateTopic.RUnlock()
	return calls
}

func (mock *topicServiceMock) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if mock.GetTopicFunc == nil {
		panic("topicServiceMock.GetTopicFunc: method is nil but topicService.GetTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		TopicID: topicID,
	}
	mock.lockGetTopic.Lock()
	mock.calls.GetTopic = append(mock.calls.GetTopic, callInfo)
	mock.lockGetTopic.Unlock()
	return mock.GetTopicFunc(ctx, topicID)
}

func (mock *topicServiceMock) GetTopicCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockGetTopic.RLock()
	calls := mock.calls.GetTopic
	mock.lockGetTopic.RUnlock()
	return calls
}

func (mock *topicServiceMock) ListTopics(ctx context.Context, input topic.ListTopicsInput) (*topic.ListResult, error) {
	if mock.ListTopicsFunc == nil {
		panic("topicServiceMock.ListTopicsFunc: method is nil but topicService.ListTopics was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input topic.ListTopicsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListTopics.Lock()
	mock.calls.ListTopics = append(mock.calls.ListTopics, callInfo)
	mock.lockListTopics.Unlock()
	return mock.ListTopicsFunc(ctx, input)
}

func (mock *topicServiceMock) ListTopicsCalls() []struct {
	Ctx   context.Context
	Input topic.ListTopicsInput
} {
	mock.lockListTopics.RLock()
	calls := mock.calls.ListTopics
	mock.lockListTopics.RUnlock()
	return calls
}

func (mock *topicServiceMock) UpdateTopic(ctx context.Context, input topic.UpdateTopicInput) (*domain.Topic, error) {
	if mock.UpdateTopicFunc == nil {
		panic("topicServiceMock.UpdateTopicFunc: method is nil but topicService.UpdateTopic was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input topic.UpdateTopicInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateTopic.Lock()
	mock.calls.UpdateTopic = append(mock.calls.UpdateTopic, callInfo)
	mock.lockUpdateTopic.Unlock()
	return mock.UpdateTopicFunc(ctx, input)
}

func (mock *topicServiceMock) UpdateTopicCalls() []struct {
	Ctx   context.Context
	Input topic.UpdateTopicInput
} {
	mock.lockUpdateTopic.RLock()
	calls := mock.calls.UpdateTopic
	mock.lockUpdateTopic.RUnlock()
	return calls
}

func (mock *topicServiceMock) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	if mock.DeleteTopicFunc == nil {
		panic("topicServiceMock.DeleteTopicFunc: method is nil but topicService.DeleteTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		TopicID: topicID,
	}
	mock.lockDeleteTopic.Lock()
	mock.calls.DeleteTopic = append(mock.calls.DeleteTopic, callInfo)
	mock.lockDeleteTopic.Unlock()
	return mock.DeleteTopicFunc(ctx, topicID)
}

func (mock *topicServiceMock) DeleteTopicCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockDeleteTopic.RLock()
	calls := mock.calls.DeleteTopic
	mock.lockDeleteTopic.RUnlock()
	return calls
}

func (mock *topicServiceMock) TopicStats(ctx context.Context) (*domain.TopicStats, error) {
	if mock.TopicStatsFunc == nil {
		panic("topicServiceMock.TopicStatsFunc: method is nil but topicService.TopicStats was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockTopicStats.Lock()
	mock.calls.TopicStats = append(mock.calls.TopicStats, callInfo)
	mock.lockTopicStats.Unlock()
	return mock.TopicStatsFunc(ctx)
}

func (mock *topicServiceMock) TopicStatsCalls() []struct {
	Ctx context.Context
} {
	mock.lockTopicStats.RLock()
	calls := mock.calls.TopicStats
	mock.lockTopicStats.RUnlock()
	return calls
}
