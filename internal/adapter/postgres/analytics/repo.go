// Package analytics implements the note analytics repository using PostgreSQL.
// Every write is an upsert so a missing row is created on first use.
package analytics

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studynotes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

var returning = "RETURNING " + strings.Join([]string{
	"note_id", "views_count", "shares_count", "user_rating", "last_viewed", "created_at", "updated_at",
}, ", ")

type row struct {
	NoteID      uuid.UUID  `db:"note_id"`
	ViewsCount  int        `db:"views_count"`
	SharesCount int        `db:"shares_count"`
	UserRating  *int       `db:"user_rating"`
	LastViewed  *time.Time `db:"last_viewed"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.NoteAnalytics {
	return domain.NoteAnalytics(r)
}

// Repo provides note analytics persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a zeroed analytics row for a note. Existing rows are kept.
func (r *Repo) Create(ctx context.Context, noteID uuid.UUID) error {
	_, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Insert("note_analytics").
			Columns("note_id").Values(noteID).
			Suffix("ON CONFLICT (note_id) DO NOTHING"))
	if err != nil {
		return postgres.MapError(err, "analytics for note", noteID)
	}
	return nil
}

// RecordView increments views_count and stamps last_viewed.
func (r *Repo) RecordView(ctx context.Context, noteID uuid.UUID) (*domain.NoteAnalytics, error) {
	q := postgres.Builder().Insert("note_analytics").
		Columns("note_id", "views_count", "last_viewed").
		Values(noteID, 1, sq.Expr("now()")).
		Suffix(`ON CONFLICT (note_id) DO UPDATE SET
			views_count = note_analytics.views_count + 1,
			last_viewed = now(),
			updated_at = now() ` + returning)

	return r.upsert(ctx, noteID, q)
}

// Rate stores the user's 1..5 rating.
func (r *Repo) Rate(ctx context.Context, noteID uuid.UUID, rating int) (*domain.NoteAnalytics, error) {
	q := postgres.Builder().Insert("note_analytics").
		Columns("note_id", "user_rating").
		Values(noteID, rating).
		Suffix(`ON CONFLICT (note_id) DO UPDATE SET
			user_rating = EXCLUDED.user_rating,
			updated_at = now() ` + returning)

	return r.upsert(ctx, noteID, q)
}

func (r *Repo) upsert(ctx context.Context, noteID uuid.UUID, q sq.InsertBuilder) (*domain.NoteAnalytics, error) {
	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, q); err != nil {
		return nil, postgres.MapError(err, "analytics for note", noteID)
	}
	a := out.toDomain()
	return &a, nil
}
