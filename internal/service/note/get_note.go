package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

// GetNote returns a note and counts the read as a view.
func (s *Service) GetNote(ctx context.Context, noteID uuid.UUID) (*NoteDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if noteID == uuid.Nil {
		return nil, domain.NewValidationError("note_id", "required")
	}

	n, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	a, err := s.analytics.RecordView(ctx, n.ID)
	if err != nil {
		return nil, fmt.Errorf("record view: %w", err)
	}

	return &NoteDetail{Note: n, Analytics: a}, nil
}

// ListNotes returns one page of the authenticated user's notes.
func (s *Service) ListNotes(ctx context.Context, input ListNotesInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	notes, total, err := s.notes.List(ctx, userID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return &ListResult{Notes: notes, Total: total}, nil
}
