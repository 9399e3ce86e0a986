package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

// ListTopics returns one page of the authenticated user's topics.
func (s *Service) ListTopics(ctx context.Context, input ListTopicsInput) (*ListResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	topics, total, err := s.topics.List(ctx, userID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return &ListResult{Topics: topics, Total: total}, nil
}

// TopicStats counts the authenticated user's topics by status and difficulty.
func (s *Service) TopicStats(ctx context.Context) (*domain.TopicStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.topics.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("topic stats: %w", err)
	}
	return stats, nil
}
