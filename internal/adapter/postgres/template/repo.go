// Package template implements the prompt template repository using PostgreSQL.
package template

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

const table = "prompt_templates"

var (
	columns   = []string{"id", "name", "type", "body", "description", "is_active", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type row struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Type        string    `db:"type"`
	Body        string    `db:"body"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Template {
	return domain.Template{
		ID:          r.ID,
		Name:        r.Name,
		Type:        domain.TemplateType(r.Type),
		Body:        r.Body,
		Description: r.Description,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Repo provides template persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new template repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// FirstActiveByType returns the oldest active template of the given type.
// Returns domain.ErrNotFound when there is none.
func (r *Repo) FirstActiveByType(ctx context.Context, tt domain.TemplateType) (*domain.Template, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"type": string(tt), "is_active": true}).
		OrderBy("created_at", "id").
		Limit(1)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, q); err != nil {
		return nil, postgres.MapError(err, "template "+string(tt), uuid.Nil)
	}
	t := out.toDomain()
	return &t, nil
}

// ListActive returns active templates ordered by type and name.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Template, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"is_active": true}).
		OrderBy("type", "name")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	out := make([]domain.Template, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Create inserts a template. Returns domain.ErrAlreadyExists on a duplicate name.
func (r *Repo) Create(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	q := postgres.Builder().Insert(table).
		Columns("name", "type", "body", "description", "is_active").
		Values(t.Name, string(t.Type), t.Body, t.Description, t.IsActive).
		Suffix(returning)

	return r.write(ctx, t.Name, q)
}

// Upsert inserts a template or replaces the one with the same name.
func (r *Repo) Upsert(ctx context.Context, t *domain.Template) (*domain.Template, error) {
	q := postgres.Builder().Insert(table).
		Columns("name", "type", "body", "description", "is_active").
		Values(t.Name, string(t.Type), t.Body, t.Description, t.IsActive).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			type = EXCLUDED.type,
			body = EXCLUDED.body,
			description = EXCLUDED.description,
			is_active = EXCLUDED.is_active,
			updated_at = now() ` + returning)

	return r.write(ctx, t.Name, q)
}

func (r *Repo) write(ctx context.Context, name string, q sq.InsertBuilder) (*domain.Template, error) {
	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, q); err != nil {
		return nil, postgres.MapError(err, "template "+name, uuid.Nil)
	}
	saved := out.toDomain()
	return &saved, nil
}
