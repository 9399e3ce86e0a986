package topic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

// CreateTopic creates a new topic for the authenticated user. New topics
// start in status pending.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
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

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyIntermediate
	}

	topic, err := s.topics.Create(ctx, &domain.Topic{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		SubjectID:   input.SubjectID,
		Difficulty:  difficulty,
		Status:      domain.TopicStatusPending,
		Tags:        domain.NormalizeTags(input.Tags),
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topic.ID.String()),
	)

	return topic, nil
}

// checkSubject turns a missing subject into a field error.
func (s *Service) checkSubject(ctx context.Context, id uuid.UUID) error {
	_, err := s.subjects.GetByID(ctx, id)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.NewValidationError("subject_id", "does not exist")
	default:
		return fmt.Errorf("get subject: %w", err)
	}
}
