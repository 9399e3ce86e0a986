package template

import (
	"context"
	"fmt"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

// ListTemplates returns active templates ordered by type and name.
func (s *Service) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	templates, err := s.templates.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}
