package topic

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

type topicRepo interface {
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
	Update(ctx context.Context, userID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
	Delete(ctx context.Context, userID, topicID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.TopicFilter) ([]domain.Topic, int, error)
	Stats(ctx context.Context, userID uuid.UUID) (*domain.TopicStats, error)
}

type subjectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
}

const (
	MaxTitleLength = 200
	MaxTags        = 20
	MaxTagLength   = 50
)

// Service provides topic management operations. Topic status is read-only
// here; the generation service owns it.
type Service struct {
	topics   topicRepo
	subjects subjectRepo
	log      *slog.Logger
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	subjects subjectRepo,
) *Service {
	return &Service{
		topics:   topics,
		subjects: subjects,
		log:      log.With("service", "topic"),
	}
}

// ListResult is one page of topics.
type ListResult struct {
	Topics []domain.Topic
	Total  int
}

// trimPtr returns a trimmed copy of *s, or nil.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
