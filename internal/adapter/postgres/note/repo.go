// Package note implements the Note repository using PostgreSQL.
// Ownership is checked through the parent topic's user_id.
package note

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

type row struct {
	ID                    uuid.UUID `db:"id"`
	TopicID               uuid.UUID `db:"topic_id"`
	TopicTitle            string    `db:"topic_title"`
	Content               string    `db:"content"`
	Summary               string    `db:"summary"`
	KeyPoints             []string  `db:"key_points"`
	References            []string  `db:"references"`
	WordCount             int       `db:"word_count"`
	ReadingTimeMinutes    int       `db:"reading_time_minutes"`
	ModelUsed             string    `db:"model_used"`
	GenerationTimeSeconds float64   `db:"generation_time_seconds"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Note {
	return domain.Note{
		ID:                    r.ID,
		TopicID:               r.TopicID,
		TopicTitle:            r.TopicTitle,
		Content:               r.Content,
		Summary:               r.Summary,
		KeyPoints:             nonNil(r.KeyPoints),
		References:            nonNil(r.References),
		WordCount:             r.WordCount,
		ReadingTimeMinutes:    r.ReadingTimeMinutes,
		ModelUsed:             r.ModelUsed,
		GenerationTimeSeconds: r.GenerationTimeSeconds,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

var sortColumns = map[string]string{
	"created_at": "n.created_at",
	"updated_at": "n.updated_at",
	"word_count": "n.word_count",
}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectNotes() sq.SelectBuilder {
	return postgres.Builder().
		Select("n.id", "n.topic_id", "t.title AS topic_title", "n.content", "n.summary",
			"n.key_points", `n."references"`, "n.word_count", "n.reading_time_minutes",
			"n.model_used", "n.generation_time_seconds", "n.created_at", "n.updated_at").
		From("notes n").
		Join("topics t ON t.id = n.topic_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a note whose topic is owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	q := selectNotes().Where(sq.Eq{"n.id": noteID, "t.user_id": userID})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, q); err != nil {
		return nil, postgres.MapError(err, "note", noteID)
	}
	n := out.toDomain()
	return &n, nil
}

// ExistsByTopicID reports whether a note exists for the topic.
func (r *Repo) ExistsByTopicID(ctx context.Context, topicID uuid.UUID) (bool, error) {
	q := postgres.Builder().Select("1").Prefix("SELECT EXISTS (").
		From("notes").Where(sq.Eq{"topic_id": topicID}).Suffix(")")

	var exists bool
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &exists, q); err != nil {
		return false, postgres.MapError(err, "note for topic", topicID)
	}
	return exists, nil
}

// List returns one page of a user's notes and the total number matching the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.NoteFilter) ([]domain.Note, int, error) {
	where := sq.And{sq.Eq{"t.user_id": userID}}
	if filter.ModelUsed != "" {
		where = append(where, sq.Eq{"n.model_used": filter.ModelUsed})
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := "%" + postgres.EscapeLike(s) + "%"
		where = append(where, sq.Or{
			sq.ILike{"t.title": pattern},
			sq.ILike{"n.content": pattern},
			sq.ILike{"n.summary": pattern},
		})
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	countQ := postgres.Builder().Select("count(*)").
		From("notes n").Join("topics t ON t.id = n.topic_id").Where(where)
	if err := postgres.Get(ctx, querier, &total, countQ); err != nil {
		return nil, 0, fmt.Errorf("count notes: %w", err)
	}

	col, ok := sortColumns[filter.SortBy]
	if !ok {
		col = sortColumns["created_at"]
	}
	dir := "DESC"
	if filter.SortOrder == domain.SortAsc {
		dir = "ASC"
	}

	q := selectNotes().Where(where).
		OrderBy(col+" "+dir, "n.id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	var rows []row
	if err := postgres.Select(ctx, querier, &rows, q); err != nil {
		return nil, 0, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]domain.Note, len(rows))
	for i, rw := range rows {
		notes[i] = rw.toDomain()
	}
	return notes, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a note. Returns domain.ErrAlreadyExists if the topic already
// has one (notes.topic_id is unique).
func (r *Repo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	q := postgres.Builder().Insert("notes").
		Columns("topic_id", "content", "summary", "key_points", `"references"`, "word_count",
			"reading_time_minutes", "model_used", "generation_time_seconds").
		Values(n.TopicID, n.Content, n.Summary, nonNil(n.KeyPoints), nonNil(n.References), n.WordCount,
			n.ReadingTimeMinutes, n.ModelUsed, n.GenerationTimeSeconds).
		Suffix("RETURNING id, created_at, updated_at")

	var ids struct {
		ID        uuid.UUID `db:"id"`
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &ids, q); err != nil {
		return nil, postgres.MapError(err, "note for topic", n.TopicID)
	}

	created := *n
	created.ID = ids.ID
	created.CreatedAt = ids.CreatedAt
	created.UpdatedAt = ids.UpdatedAt
	created.KeyPoints = nonNil(n.KeyPoints)
	created.References = nonNil(n.References)
	return &created, nil
}

// Update overwrites the editable fields and derived metrics of a note.
func (r *Repo) Update(ctx context.Context, userID uuid.UUID, n *domain.Note) (*domain.Note, error) {
	// Subqueries keep "?" placeholders; the outer builder renumbers them.
	owned := sq.Select("1").From("topics t").
		Where(sq.Expr("t.id = notes.topic_id")).Where(sq.Eq{"t.user_id": userID})

	q := postgres.Builder().Update("notes").
		Set("content", n.Content).
		Set("summary", n.Summary).
		Set("key_points", nonNil(n.KeyPoints)).
		Set(`"references"`, nonNil(n.References)).
		Set("word_count", n.WordCount).
		Set("reading_time_minutes", n.ReadingTimeMinutes).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": n.ID}).
		Where(sq.Expr("EXISTS (?)", owned))

	count, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, postgres.MapError(err, "note", n.ID)
	}
	if count == 0 {
		return nil, fmt.Errorf("note %s: %w", n.ID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, userID, n.ID)
}

// DeleteByTopicID removes the note of a topic, if any, and reports whether
// one was deleted. Analytics rows cascade.
func (r *Repo) DeleteByTopicID(ctx context.Context, topicID uuid.UUID) (bool, error) {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete("notes").Where(sq.Eq{"topic_id": topicID}))
	if err != nil {
		return false, postgres.MapError(err, "note for topic", topicID)
	}
	return n > 0, nil
}
