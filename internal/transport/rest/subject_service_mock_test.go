package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/subject"
)

var _ subjectService = &subjectServiceMock{}

type subjectServiceMock struct {
	CreateSubjectFunc func(ctx context.Context, input subject.CreateSubjectInput) (*domain.Subject, error)
	ListSubjectsFunc  func(ctx context.Context) ([]domain.Subject, error)
	GetSubjectFunc    func(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	DeleteSubjectFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		CreateSubject []struct {
			Ctx   context.Context
			Input subject.CreateSubjectInput
		}
		ListSubjects []struct {
			Ctx context.Context
		}
		GetSubject []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		DeleteSubject []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreateSubject sync.RWMutex
	lockListSubjects  sync.RWMutex
	lockGetSubject    sync.RWMutex
	lockDeleteSubject sync.RWMutex
}

func (mock *subjectServiceMock) CreateSubject(ctx context.Context, input subject.CreateSubjectInput) (*domain.Subject, error) {
	if mock.CreateSubjectFunc == nil {
		panic("subjectServiceMock.CreateSubjectFunc: method is nil but subjectService.CreateSubject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input subject.CreateSubjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateSubject.Lock()
	mock.calls.CreateSubject = append(mock.calls.CreateSubject, callInfo)
	mock.lockCreateSubject.Unlock()
	return mock.CreateSubjectFunc(ctx, input)
}

func (mock *subjectServiceMock) CreateSubjectCalls() []struct {
	Ctx   context.Context
	Input subject.CreateSubjectInput
} {
	mock.lockCreateSubject.RLock()
	calls := mock.calls.CreateSubject
	mock.lockCreateSubject.RUnlock()
	return calls
}

func (mock *subjectServiceMock) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	if mock.ListSubjectsFunc == nil {
		panic("subjectServiceMock.ListSubjectsFunc: method is nil but subjectService.ListSubjects was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListSubjects.Lock()
	mock.calls.ListSubjects = append(mock.calls.ListSubjects, callInfo)
	mock.lockListSubjects.Unlock()
	return mock.ListSubjectsFunc(ctx)
}

func (mock *subjectServiceMock) ListSubjectsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListSubjects.RLock()
	calls := mock.calls.ListSubjects
	mock.lockListSubjects.RUnlock()
	return calls
}

func (mock *subjectServiceMock) GetSubject(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	if mock.GetSubjectFunc == nil {
		panic("subjectServiceMock.GetSubjectFunc: method is nil but subjectService.GetSubject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetSubject.Lock()
	mock.calls.GetSubject = append(mock.calls.GetSubject, callInfo)
	mock.lockGetSubject.Unlock()
	return mock.GetSubjectFunc(ctx, id)
}

func (mock *subjectServiceMock) GetSubjectCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetSubject.RLock()
	calls := mock.calls.GetSubject
	mock.lockGetSubject.RUnlock()
	return calls
}

func (mock *subjectServiceMock) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteSubjectFunc == nil {
		panic("subjectServiceMock.DeleteSubjectFunc: method is nil but subjectService.DeleteSubject was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteSubject.Lock()
	mock.calls.DeleteSubject = append(mock.calls.DeleteSubject, callInfo)
	mock.lockDeleteSubject.Unlock()
	return mock.DeleteSubjectFunc(ctx, id)
}

func (mock *subjectServiceMock) DeleteSubjectCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteSubject.RLock()
	calls := mock.calls.DeleteSubject
	mock.lockDeleteSubject.RUnlock()
	return calls
}
