// Package template is the template store: it picks the prompt template used
// for a generation and materializes the built-in academic template when the
// store has none.
package template

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

type templateRepo interface {
	FirstActiveByType(ctx context.Context, tt domain.TemplateType) (*domain.Template, error)
	Create(ctx context.Context, t *domain.Template) (*domain.Template, error)
	ListActive(ctx context.Context) ([]domain.Template, error)
}

// Service provides template selection and listing.
type Service struct {
	templates templateRepo
	log       *slog.Logger
}

// NewService creates a new template Service.
func NewService(log *slog.Logger, templates templateRepo) *Service {
	return &Service{
		templates: templates,
		log:       log.With("service", "template"),
	}
}
