package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/preference"
)

var _ preferenceService = &preferenceServiceMock{}

type preferenceServiceMock struct {
	GetPreferencesFunc    func(ctx context.Context) (*domain.Preference, error)
	UpdatePreferencesFunc func(ctx context.Context, input preference.UpdatePreferencesInput) (*domain.Preference, error)

	calls struct {
		GetPreferences []struct {
			Ctx context.Context
		}
		UpdatePreferences []struct {
			Ctx   context.Context
			Input preference.UpdatePreferencesInput
		}
	}
	lockGetPreferences    sync.RWMutex
	lockUpdatePreferences sync.RWMutex
}

func (mock *preferenceServiceMock) GetPreferences(ctx context.Context) (*domain.Preference, error) {
	if mock.GetPreferencesFunc == nil {
		panic("preferenceServiceMock.GetPreferencesFunc: method is nil but preferenceService.GetPreferences was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetPreferences.Lock()
	mock.calls.GetPreferences = append(mock.calls.GetPreferences, callInfo)
	mock.lockGetPreferences.Unlock()
	return mock.GetPreferencesFunc(ctx)
}

func (mock *preferenceServiceMock) GetPreferencesCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetPreferences.RLock()
	calls := mock.calls.GetPreferences
	mock.lockGetPreferences.RUnlock()
	return calls
}

func (mock *preferenceServiceMock) UpdatePreferences(ctx context.Context, input preference.UpdatePreferencesInput) (*domain.Preference, error) {
	if mock.UpdatePreferencesFunc == nil {
		panic("preferenceServiceMock.UpdatePreferencesFunc: method is nil but preferenceService.UpdatePreferences was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input preference.UpdatePreferencesInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdatePreferences.Lock()
	mock.calls.UpdatePreferences = append(mock.calls.UpdatePreferences, callInfo)
	mock.lockUpdatePreferences.Unlock()
	return mock.UpdatePreferencesFunc(ctx, input)
}

func (mock *preferenceServiceMock) UpdatePreferencesCalls() []struct {
	Ctx   context.Context
	Input preference.UpdatePreferencesInput
} {
	mock.lockUpdatePreferences.RLock()
	calls := mock.calls.UpdatePreferences
	mock.lockUpdatePreferences.RUnlock()
	return calls
}
