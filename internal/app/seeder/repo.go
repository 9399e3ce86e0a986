// Package seeder loads the subject and template catalog into the database.
package seeder

import (
	"context"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

// SubjectUpserter is implemented by subject.Repo.
type SubjectUpserter interface {
	Upsert(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
}

// TemplateUpserter is implemented by template.Repo.
type TemplateUpserter interface {
	Upsert(ctx context.Context, t *domain.Template) (*domain.Template, error)
}
