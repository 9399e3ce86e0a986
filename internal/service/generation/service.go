// Package generation drives note generation for a topic: template
// selection, prompt building, the model call and response parsing. It is
// the only package that moves a topic between statuses.
package generation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/adapter/lock"
	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type topicRepo interface {
	GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
	UpdateStatus(ctx context.Context, topicID uuid.UUID, status domain.TopicStatus) error
}

type noteRepo interface {
	GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	ExistsByTopicID(ctx context.Context, topicID uuid.UUID) (bool, error)
	Create(ctx context.Context, n *domain.Note) (*domain.Note, error)
	DeleteByTopicID(ctx context.Context, topicID uuid.UUID) (bool, error)
}

type analyticsRepo interface {
	Create(ctx context.Context, noteID uuid.UUID) error
}

type preferenceRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Preference, error)
}

type templateSelector interface {
	SelectTemplate(ctx context.Context, preferred *domain.TemplateType) (*domain.Template, error)
}

type modelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Model() string
}

type callLogRepo interface {
	Create(ctx context.Context, e *domain.CallLogEntry) error
}

type locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (lock.Release, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Options tunes the generation flow.
type Options struct {
	// MaxRetries is the number of extra model calls made after an upstream
	// failure. Zero calls the model exactly once.
	MaxRetries           int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	// LockTTL bounds how long a crashed request can block its topic.
	LockTTL time.Duration
}

const defaultLockTTL = 5 * time.Minute

// Service implements note generation.
type Service struct {
	topics    topicRepo
	notes     noteRepo
	analytics analyticsRepo
	prefs     preferenceRepo
	templates templateSelector
	model     modelClient
	calls     callLogRepo
	locks     locker
	tx        txManager
	log       *slog.Logger
	opts      Options
}

// NewService creates a new generation Service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	notes noteRepo,
	analytics analyticsRepo,
	prefs preferenceRepo,
	templates templateSelector,
	model modelClient,
	calls callLogRepo,
	locks locker,
	tx txManager,
	opts Options,
) *Service {
	if opts.LockTTL <= 0 {
		opts.LockTTL = defaultLockTTL
	}
	return &Service{
		topics:    topics,
		notes:     notes,
		analytics: analytics,
		prefs:     prefs,
		templates: templates,
		model:     model,
		calls:     calls,
		locks:     locks,
		tx:        tx,
		log:       log.With("service", "generation"),
		opts:      opts,
	}
}
