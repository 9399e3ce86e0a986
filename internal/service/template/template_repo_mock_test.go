package template

import (
	"context"
	"sync"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

var _ templateRepo = &templateRepoMock{}

type templateRepoMock struct {
	FirstActiveByTypeFunc func(ctx context.Context, tt domain.TemplateType) (*domain.Template, error)
	CreateFunc            func(ctx context.Context, t *domain.Template) (*domain.Template, error)
	ListActiveFunc        func(ctx context.Context) ([]domain.Template, error)

	calls struct {
		FirstActiveByType []struct {
			Ctx context.Context
			Tt  domain.TemplateType
		}
		Create []struct {
			Ctx context.Context
			T   *domain.Template
		}
		ListActive []struct {
			Ctx context.Context
		}
	}
	lockFirstActiveByType sync.RWMutex
	lockCreate            sync.RWMutex
	lockListActive        sync.RWMutex
}

func (mock *templateRepoMock) FirstActiveByType(ctx context.Context, tt domain.TemplateType) (*domain.Template, error) {
	if mock.FirstActiveByTypeFunc == nil {
		panic("templateRepoMock.FirstActiveByTypeFunc: method is nil but templateRepo.FirstActiveByType was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tt  domain.TemplateType
	}{
		Ctx: ctx,
		Tt:  tt,
	}
	mock.lockFirstActiveByType.Lock()
	mock.calls.FirstActiveByType = append(mock.calls.FirstActiveByType, callInfo)
	mock.lockFirstActiveByType.Unlock()
	return mock.FirstActiveByTypeFunc(ctx, tt)
}

func (mock *templateRepoMock) FirstActiveByTypeCalls() []struct {
	Ctx context.Context
	Tt  domain.TemplateType
} {
	mock.lockFirstActiveByType.RLock()
	calls := mock.calls.FirstActiveByType
	mock.lockFirstActiveByType.RUnlock()
	return calls
}

func (mock *templateRepoMock) Create(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	if mock.CreateFunc == nil {
		panic("templateRepoMock.CreateFunc: method is nil but templateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Template
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *templateRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Template
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *templateRepoMock) ListActive(ctx context.Context) ([]domain.Template, error) {
	if mock.ListActiveFunc == nil {
		panic("templateRepoMock.ListActiveFunc: method is nil but templateRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx)
}

func (mock *templateRepoMock) ListActiveCalls() []struct {
	Ctx context.Context
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}
