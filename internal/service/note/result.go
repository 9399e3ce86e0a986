package note

import "github.com/heartmarshall/studynotes-backend/internal/domain"

// NoteDetail is a note together with its reading counters.
type NoteDetail struct {
	Note      *domain.Note
	Analytics *domain.NoteAnalytics
}

// ListResult is one page of notes.
type ListResult struct {
	Notes []domain.Note
	Total int
}
