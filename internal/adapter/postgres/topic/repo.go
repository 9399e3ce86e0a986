// Package topic implements the Topic repository using PostgreSQL.
// Reads join subjects so callers get the subject name without a second query.
package topic

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
	ID          uuid.UUID  `db:"id"`
	UserID      uuid.UUID  `db:"user_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	SubjectID   *uuid.UUID `db:"subject_id"`
	SubjectName *string    `db:"subject_name"`
	Difficulty  string     `db:"difficulty"`
	Status      string     `db:"status"`
	Tags        []string   `db:"tags"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Topic {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return domain.Topic{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		SubjectID:   r.SubjectID,
		SubjectName: r.SubjectName,
		Difficulty:  domain.Difficulty(r.Difficulty),
		Status:      domain.TopicStatus(r.Status),
		Tags:        tags,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// sortColumns whitelists TopicFilter.SortBy values.
var sortColumns = map[string]string{
	"created_at": "t.created_at",
	"updated_at": "t.updated_at",
	"title":      "t.title",
}

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectTopics() sq.SelectBuilder {
	return postgres.Builder().
		Select("t.id", "t.user_id", "t.title", "t.description", "t.subject_id",
			"s.name AS subject_name", "t.difficulty", "t.status", "t.tags",
			"t.created_at", "t.updated_at").
		From("topics t").
		LeftJoin("subjects s ON s.id = t.subject_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic owned by userID.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	q := selectTopics().Where(sq.Eq{"t.id": topicID, "t.user_id": userID})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, q); err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}
	t := out.toDomain()
	return &t, nil
}

// List returns one page of a user's topics and the total number matching the filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.TopicFilter) ([]domain.Topic, int, error) {
	where := sq.And{sq.Eq{"t.user_id": userID}}
	if filter.Status != nil {
		where = append(where, sq.Eq{"t.status": string(*filter.Status)})
	}
	if filter.Difficulty != nil {
		where = append(where, sq.Eq{"t.difficulty": string(*filter.Difficulty)})
	}
	if filter.SubjectID != nil {
		where = append(where, sq.Eq{"t.subject_id": *filter.SubjectID})
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := "%" + postgres.EscapeLike(s) + "%"
		where = append(where, sq.Or{sq.ILike{"t.title": pattern}, sq.ILike{"t.description": pattern}})
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	countQ := postgres.Builder().Select("count(*)").From("topics t").Where(where)
	if err := postgres.Get(ctx, querier, &total, countQ); err != nil {
		return nil, 0, fmt.Errorf("count topics: %w", err)
	}

	col, ok := sortColumns[filter.SortBy]
	if !ok {
		col = sortColumns["created_at"]
	}
	dir := "DESC"
	if filter.SortOrder == domain.SortAsc {
		dir = "ASC"
	}

	q := selectTopics().Where(where).
		OrderBy(col+" "+dir, "t.id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	var rows []row
	if err := postgres.Select(ctx, querier, &rows, q); err != nil {
		return nil, 0, fmt.Errorf("list topics: %w", err)
	}

	topics := make([]domain.Topic, len(rows))
	for i, rw := range rows {
		topics[i] = rw.toDomain()
	}
	return topics, total, nil
}

// Stats counts a user's topics by status and difficulty.
func (r *Repo) Stats(ctx context.Context, userID uuid.UUID) (*domain.TopicStats, error) {
	q := postgres.Builder().
		Select("status", "difficulty", "count(*) AS n").
		From("topics").
		Where(sq.Eq{"user_id": userID}).
		GroupBy("status", "difficulty")

	var rows []struct {
		Status     string `db:"status"`
		Difficulty string `db:"difficulty"`
		N          int    `db:"n"`
	}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, fmt.Errorf("topic stats: %w", err)
	}

	stats := &domain.TopicStats{ByDifficulty: map[domain.Difficulty]int{
		domain.DifficultyBeginner:     0,
		domain.DifficultyIntermediate: 0,
		domain.DifficultyAdvanced:     0,
	}}
	for _, rw := range rows {
		stats.Total += rw.N
		stats.ByDifficulty[domain.Difficulty(rw.Difficulty)] += rw.N
		switch domain.TopicStatus(rw.Status) {
		case domain.TopicStatusCompleted:
			stats.Completed += rw.N
		case domain.TopicStatusPending:
			stats.Pending += rw.N
		case domain.TopicStatusProcessing:
			stats.Processing += rw.N
		case domain.TopicStatusFailed:
			stats.Failed += rw.N
		}
	}
	return stats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a topic in status pending and returns it with the subject joined.
// Returns domain.ErrNotFound if SubjectID references a missing subject.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	q := postgres.Builder().Insert("topics").
		Columns("user_id", "title", "description", "subject_id", "difficulty", "status", "tags").
		Values(t.UserID, t.Title, t.Description, t.SubjectID, string(t.Difficulty), string(domain.TopicStatusPending), tags).
		Suffix("RETURNING id")

	var id uuid.UUID
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &id, q); err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}
	return r.GetByID(ctx, t.UserID, id)
}

// Update applies a partial update. Status is not updatable here.
func (r *Repo) Update(ctx context.Context, userID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error) {
	q := postgres.Builder().Update("topics").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": topicID, "user_id": userID})

	if params.Title != nil {
		q = q.Set("title", *params.Title)
	}
	if params.Description != nil {
		q = q.Set("description", *params.Description)
	}
	switch {
	case params.ClearSubject:
		q = q.Set("subject_id", nil)
	case params.SubjectID != nil:
		q = q.Set("subject_id", *params.SubjectID)
	}
	if params.Difficulty != nil {
		q = q.Set("difficulty", string(*params.Difficulty))
	}
	if params.Tags != nil {
		q = q.Set("tags", params.Tags)
	}

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}
	if n == 0 {
		return nil, fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}
	return r.GetByID(ctx, userID, topicID)
}

// UpdateStatus sets a topic's status.
func (r *Repo) UpdateStatus(ctx context.Context, topicID uuid.UUID, status domain.TopicStatus) error {
	q := postgres.Builder().Update("topics").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": topicID})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "topic", topicID)
	}
	if n == 0 {
		return fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a topic; its note and analytics cascade, call log rows keep
// existing with no topic.
func (r *Repo) Delete(ctx context.Context, userID, topicID uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool),
		postgres.Builder().Delete("topics").Where(sq.Eq{"id": topicID, "user_id": userID}))
	if err != nil {
		return postgres.MapError(err, "topic", topicID)
	}
	if n == 0 {
		return fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}
	return nil
}
