package generation

import (
	"context"
	"sync"
)

var _ modelClient = &modelClientMock{}

type modelClientMock struct {
	CompleteFunc func(ctx context.Context, prompt string) (string, error)
	ModelFunc    func() string

	calls struct {
		Complete []struct {
			Ctx    context.Context
			Prompt string
		}
		Model []struct{}
	}
	lockComplete sync.RWMutex
	lockModel    sync.RWMutex
}

func (mock *modelClientMock) Complete(ctx context.Context, prompt string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("modelClientMock.CompleteFunc: method is nil but modelClient.Complete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Prompt string
	}{
		Ctx:    ctx,
		Prompt: prompt,
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, prompt)
}

func (mock *modelClientMock) CompleteCalls() []struct {
	Ctx    context.Context
	Prompt string
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

func (mock *modelClientMock) Model() string {
	if mock.ModelFunc == nil {
		panic("modelClientMock.ModelFunc: method is nil but modelClient.Model was just called")
	}
	callInfo := struct{}{}
	mock.lockModel.Lock()
	mock.calls.Model = append(mock.calls.Model, callInfo)
	mock.lockModel.Unlock()
	return mock.ModelFunc()
}

func (mock *modelClientMock) ModelCalls() []struct{} {
	mock.lockModel.RLock()
	calls := mock.calls.Model
	mock.lockModel.RUnlock()
	return calls
}
