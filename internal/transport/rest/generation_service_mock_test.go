package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

var _ generationService = &generationServiceMock{}

type generationServiceMock struct {
	GenerateFunc   func(ctx context.Context, topicID uuid.UUID) (*domain.Note, error)
	RegenerateFunc func(ctx context.Context, topicID uuid.UUID) (*domain.Note, error)
	DeleteNoteFunc func(ctx context.Context, noteID uuid.UUID) error

	calls struct {
		Generate []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		Regenerate []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		DeleteNote []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
	}
	lockGenerate   sync.RWMutex
	lockRegenerate sync.RWMutex
	lockDeleteNote sync.RWMutex
}

func (mock *generationServiceMock) Generate(ctx context.Context, topicID uuid.UUID) (*domain.Note, error) {
	if mock.GenerateFunc == nil {
		panic("generationServiceMock.GenerateFunc: method is nil but generationService.Generate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		TopicID: topicID,
	}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, topicID)
}

func (mock *generationServiceMock) GenerateCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *generationServiceMock) Regenerate(ctx context.Context, topicID uuid.UUID) (*domain.Note, error) {
	if mock.RegenerateFunc == nil {
		panic("generationServiceMock.RegenerateFunc: method is nil but generationService.Regenerate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{
		Ctx:     ctx,
		TopicID: topicID,
	}
	mock.lockRegenerate.Lock()
	mock.calls.Regenerate = append(mock.calls.Regenerate, callInfo)
	mock.lockRegenerate.Unlock()
	return mock.RegenerateFunc(ctx, topicID)
}

func (mock *generationServiceMock) RegenerateCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockRegenerate.RLock()
	calls := mock.calls.Regenerate
	mock.lockRegenerate.RUnlock()
	return calls
}

func (mock *generationServiceMock) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	if mock.DeleteNoteFunc == nil {
		panic("generationServiceMock.DeleteNoteFunc: method is nil but generationService.DeleteNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{
		Ctx:    ctx,
		NoteID: noteID,
	}
	mock.lockDeleteNote.Lock()
	mock.calls.DeleteNote = append(mock.calls.DeleteNote, callInfo)
	mock.lockDeleteNote.Unlock()
	return mock.DeleteNoteFunc(ctx, noteID)
}

func (mock *generationServiceMock) DeleteNoteCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockDeleteNote.RLock()
	calls := mock.calls.DeleteNote
	mock.lockDeleteNote.RUnlock()
	return calls
}
