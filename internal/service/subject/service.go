// Package subject manages the shared catalog of study subjects.
package subject

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

type subjectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error)
	List(ctx context.Context) ([]domain.Subject, error)
	Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const (
	DefaultColor  = "#007bff"
	MaxNameLength = 100
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service provides subject operations.
type Service struct {
	subjects subjectRepo
	log      *slog.Logger
}

// NewService creates a new Subject service.
func NewService(log *slog.Logger, subjects subjectRepo) *Service {
	return &Service{
		subjects: subjects,
		log:      log.With("service", "subject"),
	}
}

// CreateSubjectInput holds the parameters for creating a subject.
type CreateSubjectInput struct {
	Name        string
	Description string
	Color       string // empty = DefaultColor
}

// Validate checks all fields and collects all errors.
func (i CreateSubjectInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	if i.Color != "" && !hexColor.MatchString(i.Color) {
		errs = append(errs, domain.FieldError{Field: "color", Message: "must be a hex color like #1a2b3c"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateSubject adds a subject. Names are unique.
func (s *Service) CreateSubject(ctx context.Context, input CreateSubjectInput) (*domain.Subject, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	color := input.Color
	if color == "" {
		color = DefaultColor
	}

	created, err := s.subjects.Create(ctx, &domain.Subject{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Color:       color,
	})
	if err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}

	s.log.InfoContext(ctx, "subject created",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", created.ID.String()),
		slog.String("name", created.Name),
	)
	return created, nil
}

// ListSubjects returns all subjects ordered by name.
func (s *Service) ListSubjects(ctx context.Context) ([]domain.Subject, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// GetSubject returns a subject by ID.
func (s *Service) GetSubject(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("subject_id", "required")
	}
	subj, err := s.subjects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	return subj, nil
}

// DeleteSubject removes a subject. Topics that used it keep existing without one.
func (s *Service) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return domain.NewValidationError("subject_id", "required")
	}

	if err := s.subjects.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}

	s.log.InfoContext(ctx, "subject deleted",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", id.String()),
	)
	return nil
}
