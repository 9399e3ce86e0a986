// Package calllog implements the append-only model call log using PostgreSQL.
// There is no update or delete.
package calllog

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studynotes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

const table = "ai_call_logs"

type row struct {
	ID                  uuid.UUID  `db:"id"`
	UserID              uuid.UUID  `db:"user_id"`
	TopicID             *uuid.UUID `db:"topic_id"`
	Prompt              string     `db:"prompt"`
	RawResponse         string     `db:"raw_response"`
	Status              string     `db:"status"`
	ModelUsed           string     `db:"model_used"`
	ResponseTimeSeconds float64    `db:"response_time_seconds"`
	ErrorMessage        string     `db:"error_message"`
	CreatedAt           time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.CallLogEntry {
	return domain.CallLogEntry{
		ID:                  r.ID,
		UserID:              r.UserID,
		TopicID:             r.TopicID,
		Prompt:              r.Prompt,
		RawResponse:         r.RawResponse,
		Status:              domain.CallStatus(r.Status),
		ModelUsed:           r.ModelUsed,
		ResponseTimeSeconds: r.ResponseTimeSeconds,
		ErrorMessage:        r.ErrorMessage,
		CreatedAt:           r.CreatedAt,
	}
}

// Repo provides call log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new call log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create appends an entry.
func (r *Repo) Create(ctx context.Context, e *domain.CallLogEntry) error {
	q := postgres.Builder().Insert(table).
		Columns("user_id", "topic_id", "prompt", "raw_response", "status", "model_used",
			"response_time_seconds", "error_message").
		Values(e.UserID, e.TopicID, e.Prompt, e.RawResponse, string(e.Status), e.ModelUsed,
			e.ResponseTimeSeconds, e.ErrorMessage)

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q); err != nil {
		return postgres.MapError(err, "call log", uuid.Nil)
	}
	return nil
}

// List returns a user's entries, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.CallLogEntry, error) {
	q := postgres.Builder().
		Select("id", "user_id", "topic_id", "prompt", "raw_response", "status", "model_used",
			"response_time_seconds", "error_message", "created_at").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, fmt.Errorf("list call logs: %w", err)
	}

	out := make([]domain.CallLogEntry, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// CountByStatus counts a user's entries per status.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.CallStatus]int, error) {
	q := postgres.Builder().Select("status", "count(*) AS n").From(table).
		Where(sq.Eq{"user_id": userID}).
		GroupBy("status")

	var rows []struct {
		Status string `db:"status"`
		N      int    `db:"n"`
	}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, fmt.Errorf("count call logs: %w", err)
	}

	out := make(map[domain.CallStatus]int, len(rows))
	for _, rw := range rows {
		out[domain.CallStatus(rw.Status)] = rw.N
	}
	return out, nil
}

// AverageResponseTime is the mean response time of a user's successful calls,
// 0 when there are none.
func (r *Repo) AverageResponseTime(ctx context.Context, userID uuid.UUID) (float64, error) {
	q := postgres.Builder().Select("COALESCE(avg(response_time_seconds), 0)").From(table).
		Where(sq.Eq{"user_id": userID, "status": string(domain.CallStatusSuccess)})

	var avg float64
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &avg, q); err != nil {
		return 0, fmt.Errorf("average response time: %w", err)
	}
	return avg, nil
}

// ModelUsage counts a user's entries per model.
func (r *Repo) ModelUsage(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	q := postgres.Builder().Select("model_used", "count(*) AS n").From(table).
		Where(sq.Eq{"user_id": userID}).
		GroupBy("model_used")

	var rows []struct {
		ModelUsed string `db:"model_used"`
		N         int    `db:"n"`
	}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, q); err != nil {
		return nil, fmt.Errorf("model usage: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, rw := range rows {
		out[rw.ModelUsed] = rw.N
	}
	return out, nil
}
