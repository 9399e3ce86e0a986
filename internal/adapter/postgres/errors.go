package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

// PostgreSQL error codes the repositories care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// MapError converts pgx/pgconn errors into domain errors, prefixed with the
// entity name and id. Context errors are wrapped but never remapped.
// A nil id is omitted from the message.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if id != uuid.Nil {
		prefix = fmt.Sprintf("%s %s", entity, id)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s: %s: %w", prefix, pgErr.ConstraintName, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w", prefix, err)
}
