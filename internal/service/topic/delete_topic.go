package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

// DeleteTopic deletes a topic for the authenticated user. Its note and
// analytics go with it; call log entries are kept without the topic.
func (s *Service) DeleteTopic(ctx context.Context, topicID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if topicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}

	if err := s.topics.Delete(ctx, userID, topicID); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topicID.String()),
	)

	return nil
}
