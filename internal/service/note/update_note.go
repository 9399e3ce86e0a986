package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

// UpdateNote edits a note. Word count and reading time are recomputed from
// the resulting content.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.notes.GetByID(txCtx, userID, input.NoteID)
		if err != nil {
			return fmt.Errorf("get note: %w", err)
		}

		if input.Content != nil {
			n.Content = strings.TrimSpace(*input.Content)
		}
		if input.Summary != nil {
			n.Summary = strings.TrimSpace(*input.Summary)
		}
		if input.KeyPoints != nil {
			n.KeyPoints = cleanItems(input.KeyPoints)
		}
		if input.References != nil {
			n.References = cleanItems(input.References)
		}
		n.ApplyDerivedMetrics()

		updated, err = s.notes.Update(txCtx, userID, n)
		if err != nil {
			return fmt.Errorf("update note: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()),
		slog.Int("word_count", updated.WordCount),
	)

	return updated, nil
}

// RateNote stores the user's rating of a note.
func (s *Service) RateNote(ctx context.Context, input RateNoteInput) (*domain.NoteAnalytics, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.notes.GetByID(ctx, userID, input.NoteID); err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	a, err := s.analytics.Rate(ctx, input.NoteID, input.Rating)
	if err != nil {
		return nil, fmt.Errorf("rate note: %w", err)
	}
	return a, nil
}

func cleanItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
