package template

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

// SelectTemplate returns the first active template of the preferred type,
// falling back to the academic one and finally to the built-in default
// (see EnsureDefault). It always returns a usable template or an error.
func (s *Service) SelectTemplate(ctx context.Context, preferred *domain.TemplateType) (*domain.Template, error) {
	if preferred != nil && preferred.IsValid() && *preferred != domain.TemplateTypeAcademic {
		t, err := s.templates.FirstActiveByType(ctx, *preferred)
		switch {
		case err == nil:
			return t, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("select %s template: %w", *preferred, err)
		}
		s.log.DebugContext(ctx, "no active template for preferred style, falling back",
			slog.String("style", preferred.String()))
	}

	return s.EnsureDefault(ctx)
}

// EnsureDefault returns the first active academic template. If there is
// none, it persists the built-in default once and returns it.
func (s *Service) EnsureDefault(ctx context.Context) (*domain.Template, error) {
	t, err := s.templates.FirstActiveByType(ctx, domain.TemplateTypeAcademic)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("select academic template: %w", err)
	}

	def := Default()
	created, err := s.templates.Create(ctx, &def)
	switch {
	case err == nil:
		s.log.InfoContext(ctx, "default template created", slog.String("template_id", created.ID.String()))
		return created, nil
	case !errors.Is(err, domain.ErrAlreadyExists):
		return nil, fmt.Errorf("create default template: %w", err)
	}

	// Lost a creation race, or the default name is taken by an inactive row.
	t, err = s.templates.FirstActiveByType(ctx, domain.TemplateTypeAcademic)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("select academic template: %w", err)
	}

	s.log.WarnContext(ctx, "default template name taken by an inactive template, using built-in body")
	return &def, nil
}
