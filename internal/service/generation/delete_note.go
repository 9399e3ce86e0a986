package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

// DeleteNote removes a note with its analytics and resets the topic to
// pending so it can be generated again.
func (s *Service) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if noteID == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}

	note, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return fmt.Errorf("get note: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deleted, err := s.notes.DeleteByTopicID(txCtx, note.TopicID)
		if err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
		if !deleted {
			return fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
		}
		if err := s.topics.UpdateStatus(txCtx, note.TopicID, domain.TopicStatusPending); err != nil {
			return fmt.Errorf("reset topic: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("note_id", noteID.String()),
		slog.String("topic_id", note.TopicID.String()))
	return nil
}
