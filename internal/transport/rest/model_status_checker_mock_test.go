package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

var _ modelStatusChecker = &modelStatusCheckerMock{}

type modelStatusCheckerMock struct {
	ModelStatusFunc func(ctx context.Context) domain.ModelStatus

	calls struct {
		ModelStatus []struct {
			Ctx context.Context
		}
	}
	lockModelStatus sync.RWMutex
}

func (mock *modelStatusCheckerMock) ModelStatus(ctx context.Context) domain.ModelStatus {
	if mock.ModelStatusFunc == nil {
		panic("modelStatusCheckerMock.ModelStatusFunc: method is nil but modelStatusChecker.ModelStatus was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockModelStatus.Lock()
	mock.calls.ModelStatus = append(mock.calls.ModelStatus, callInfo)
	mock.lockModelStatus.Unlock()
	return mock.ModelStatusFunc(ctx)
}

func (mock *modelStatusCheckerMock) ModelStatusCalls() []struct {
	Ctx context.Context
} {
	mock.lockModelStatus.RLock()
	calls := mock.calls.ModelStatus
	mock.lockModelStatus.RUnlock()
	return calls
}
