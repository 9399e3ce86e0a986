package generation

import (
	"context"
	"sync"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

var _ templateSelector = &templateSelectorMock{}

type templateSelectorMock struct {
	SelectTemplateFunc func(ctx context.Context, preferred *domain.TemplateType) (*domain.Template, error)

	calls struct {
		SelectTemplate []struct {
			Ctx       context.Context
			Preferred *domain.TemplateType
		}
	}
	lockSelectTemplate sync.RWMutex
}

func (mock *templateSelectorMock) SelectTemplate(ctx context.Context, preferred *domain.TemplateType) (*domain.Template, error) {
	if mock.SelectTemplateFunc == nil {
		panic("templateSelectorMock.SelectTemplateFunc: method is nil but templateSelector.SelectTemplate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Preferred *domain.TemplateType
	}{
		Ctx:       ctx,
		Preferred: preferred,
	}
	mock.lockSelectTemplate.Lock()
	mock.calls.SelectTemplate = append(mock.calls.SelectTemplate, callInfo)
	mock.lockSelectTemplate.Unlock()
	return mock.SelectTemplateFunc(ctx, preferred)
}

func (mock *templateSelectorMock) SelectTemplateCalls() []struct {
	Ctx       context.Context
	Preferred *domain.TemplateType
} {
	mock.lockSelectTemplate.RLock()
	calls := mock.calls.SelectTemplate
	mock.lockSelectTemplate.RUnlock()
	return calls
}
