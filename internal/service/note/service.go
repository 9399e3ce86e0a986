// Package note serves reading and editing of generated notes. Creating and
// deleting notes belongs to the generation service.
package note

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

type noteRepo interface {
	GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.NoteFilter) ([]domain.Note, int, error)
	Update(ctx context.Context, userID uuid.UUID, n *domain.Note) (*domain.Note, error)
}

type analyticsRepo interface {
	RecordView(ctx context.Context, noteID uuid.UUID) (*domain.NoteAnalytics, error)
	Rate(ctx context.Context, noteID uuid.UUID, rating int) (*domain.NoteAnalytics, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides note read, edit and rating operations.
type Service struct {
	notes     noteRepo
	analytics analyticsRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Note service.
func NewService(
	log *slog.Logger,
	notes noteRepo,
	analytics analyticsRepo,
	tx txManager,
) *Service {
	return &Service{
		notes:     notes,
		analytics: analytics,
		tx:        tx,
		log:       log.With("service", "note"),
	}
}
