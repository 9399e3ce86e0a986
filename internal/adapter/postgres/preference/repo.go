// Package preference implements the user preference repository using PostgreSQL.
package preference

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

const table = "user_preferences"

var (
	columns = []string{
		"user_id", "preferred_difficulty", "preferred_style", "include_examples",
		"include_summary", "include_key_points", "max_word_count", "created_at", "updated_at",
	}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type row struct {
	UserID              uuid.UUID `db:"user_id"`
	PreferredDifficulty string    `db:"preferred_difficulty"`
	PreferredStyle      string    `db:"preferred_style"`
	IncludeExamples     bool      `db:"include_examples"`
	IncludeSummary      bool      `db:"include_summary"`
	IncludeKeyPoints    bool      `db:"include_key_points"`
	MaxWordCount        int       `db:"max_word_count"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Preference {
	return domain.Preference{
		UserID:              r.UserID,
		PreferredDifficulty: domain.Difficulty(r.PreferredDifficulty),
		PreferredStyle:      domain.TemplateType(r.PreferredStyle),
		IncludeExamples:     r.IncludeExamples,
		IncludeSummary:      r.IncludeSummary,
		IncludeKeyPoints:    r.IncludeKeyPoints,
		MaxWordCount:        r.MaxWordCount,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// Repo provides preference persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new preference repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns a user's preferences or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.Preference, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"user_id": userID})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, q); err != nil {
		return nil, postgres.MapError(err, "preferences of user", userID)
	}
	p := out.toDomain()
	return &p, nil
}

// CreateIfMissing inserts p unless the user already has preferences, and
// returns whatever row is stored afterwards.
func (r *Repo) CreateIfMissing(ctx context.Context, p *domain.Preference) (*domain.Preference, error) {
	q := postgres.Builder().Insert(table).
		Columns("user_id", "preferred_difficulty", "preferred_style", "include_examples",
			"include_summary", "include_key_points", "max_word_count").
		Values(p.UserID, string(p.PreferredDifficulty), string(p.PreferredStyle), p.IncludeExamples,
			p.IncludeSummary, p.IncludeKeyPoints, p.MaxWordCount).
		Suffix("ON CONFLICT (user_id) DO NOTHING")

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q); err != nil {
		return nil, postgres.MapError(err, "preferences of user", p.UserID)
	}
	return r.Get(ctx, p.UserID)
}

// Update overwrites a user's preferences.
func (r *Repo) Update(ctx context.Context, p *domain.Preference) (*domain.Preference, error) {
	q := postgres.Builder().Update(table).
		Set("preferred_difficulty", string(p.PreferredDifficulty)).
		Set("preferred_style", string(p.PreferredStyle)).
		Set("include_examples", p.IncludeExamples).
		Set("include_summary", p.IncludeSummary).
		Set("include_key_points", p.IncludeKeyPoints).
		Set("max_word_count", p.MaxWordCount).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": p.UserID}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, q); err != nil {
		return nil, postgres.MapError(err, "preferences of user", p.UserID)
	}
	updated := out.toDomain()
	return &updated, nil
}
