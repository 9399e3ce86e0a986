// Package subject implements the Subject repository using PostgreSQL.
package subject

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studynotes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

const table = "subjects"

var (
	columns   = []string{"id", "name", "description", "color", "created_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type row struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Color       string    `db:"color"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Subject {
	return domain.Subject{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		CreatedAt:   r.CreatedAt,
	}
}

// Repo provides subject persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subject repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a subject by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, q); err != nil {
		return nil, postgres.MapError(err, "subject", id)
	}
	s := out.toDomain()
	return &s, nil
}

// List returns all subjects ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Subject, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("name")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	out := make([]domain.Subject, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Create inserts a subject. Returns domain.ErrAlreadyExists on a duplicate name.
func (r *Repo) Create(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	q := postgres.Builder().Insert(table).
		Columns("name", "description", "color").
		Values(s.Name, s.Description, s.Color).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, q); err != nil {
		return nil, postgres.MapError(err, "subject", uuid.Nil)
	}
	created := out.toDomain()
	return &created, nil
}

// Upsert inserts a subject or updates description and color of the one with
// the same name.
func (r *Repo) Upsert(ctx context.Context, s *domain.Subject) (*domain.Subject, error) {
	q := postgres.Builder().Insert(table).
		Columns("name", "description", "color").
		Values(s.Name, s.Description, s.Color).
		Suffix("ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description, color = EXCLUDED.color " + returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, q); err != nil {
		return nil, postgres.MapError(err, "subject", uuid.Nil)
	}
	saved := out.toDomain()
	return &saved, nil
}

// Delete removes a subject. Topics referencing it keep existing with no subject.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete(table).Where(sq.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "subject", id)
	}
	if n == 0 {
		return fmt.Errorf("subject %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
