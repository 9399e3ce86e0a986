package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/note"
)

var _ noteService = &noteServiceMock{}

type noteServiceMock struct {
	GetNoteFunc    func(ctx context.Context, noteID uuid.UUID) (*note.NoteDetail, error)
	ListNotesFunc  func(ctx context.Context, input note.ListNotesInput) (*note.ListResult, error)
	UpdateNoteFunc func(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error)
	RateNoteFunc   func(ctx context.Context, input note.RateNoteInput) (*domain.NoteAnalytics, error)

	calls struct {
		GetNote []struct {
			Ctx    context.Context
			NoteID uuid.UUID
		}
		ListNotes []struct {
			Ctx   context.Context
			Input note.ListNotesInput
		}
		UpdateNote []struct {
			Ctx   context.Context
			Input note.UpdateNoteInput
		}
		RateNote []struct {
			Ctx   context.Context
			Input note.RateNoteInput
		}
	}
	lockGetNote    sync.RWMutex
	lockListNotes  sync.RWMutex
	lockUpdateNote sync.RWMutex
	lockRateNote   sync.RWMutex
}

func (mock *noteServiceMock) GetNote(ctx context.Context, noteID uuid.UUID) (*note.NoteDetail, error) {
	if mock.GetNoteFunc == nil {
		panic("noteServiceMock.GetNoteFunc: method is nil but noteService.GetNote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		NoteID uuid.UUID
	}{
		Ctx:    ctx,
		NoteID: noteID,
	}
	mock.lockGetNote.Lock()
	mock.calls.GetNote = append(mock.calls.GetNote, callInfo)
	mock.lockGetNote.Unlock()
	return mock.GetNoteFunc(ctx, noteID)
}

func (mock *noteServiceMock) GetNoteCalls() []struct {
	Ctx    context.Context
	NoteID uuid.UUID
} {
	mock.lockGetNote.RLock()
	calls := mock.calls.GetNote
	mock.lockGetNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) ListNotes(ctx context.Context, input note.ListNotesInput) (*note.ListResult, error) {
	if mock.ListNotesFunc == nil {
		panic("noteServiceMock.ListNotesFunc: method is nil but noteService.ListNotes was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.ListNotesInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListNotes.Lock()
	mock.calls.ListNotes = append(mock.calls.ListNotes, callInfo)
	mock.lockListNotes.Unlock()
	return mock.ListNotesFunc(ctx, input)
}

func (mock *noteServiceMock) ListNotesCalls() []struct {
	Ctx   context.Context
	Input note.ListNotesInput
} {
	mock.lockListNotes.RLock()
	calls := mock.calls.ListNotes
	mock.lockListNotes.RUnlock()
	return calls
}

func (mock *noteServiceMock) UpdateNote(ctx context.Context, input note.UpdateNoteInput) (*domain.Note, error) {
	if mock.UpdateNoteFunc == nil {
		panic("noteServiceMock.UpdateNoteFunc: method is nil but noteService.UpdateNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.UpdateNoteInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateNote.Lock()
	mock.calls.UpdateNote = append(mock.calls.UpdateNote, callInfo)
	mock.lockUpdateNote.Unlock()
	return mock.UpdateNoteFunc(ctx, input)
}

func (mock *noteServiceMock) UpdateNoteCalls() []struct {
	Ctx   context.Context
	Input note.UpdateNoteInput
} {
	mock.lockUpdateNote.RLock()
	calls := mock.calls.UpdateNote
	mock.lockUpdateNote.RUnlock()
	return calls
}

func (mock *noteServiceMock) RateNote(ctx context.Context, input note.RateNoteInput) (*domain.NoteAnalytics, error) {
	if mock.RateNoteFunc == nil {
		panic("noteServiceMock.RateNoteFunc: method is nil but noteService.RateNote was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input note.RateNoteInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRateNote.Lock()
	mock.calls.RateNote = append(mock.calls.RateNote, callInfo)
	mock.lockRateNote.Unlock()
	return mock.RateNoteFunc(ctx, input)
}

func (mock *noteServiceMock) RateNoteCalls() []struct {
	Ctx   context.Context
	Input note.RateNoteInput
} {
	mock.lockRateNote.RLock()
	calls := mock.calls.RateNote
	mock.lockRateNote.RUnlock()
	return calls
}
