package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

// UpdateTopic updates an existing topic for the authenticated user.
// The status cannot be changed here.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.SubjectID != nil {
		if err := s.checkSubject(ctx, *input.SubjectID); err != nil {
			return nil, err
		}
	}

	params := domain.TopicUpdateParams{
		Title:        trimPtr(input.Title),
		Description:  trimPtr(input.Description),
		SubjectID:    input.SubjectID,
		ClearSubject: input.ClearSubject,
		Difficulty:   input.Difficulty,
	}
	if input.Tags != nil {
		params.Tags = domain.NormalizeTags(input.Tags)
	}

	updated, err := s.topics.Update(ctx, userID, input.TopicID, params)
	if err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", input.TopicID.String()),
	)

	return updated, nil
}
