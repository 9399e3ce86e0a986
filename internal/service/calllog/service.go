// Package calllog exposes the read side of the model call log.
package calllog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

type callLogRepo interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.CallLogEntry, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[domain.CallStatus]int, error)
	AverageResponseTime(ctx context.Context, userID uuid.UUID) (float64, error)
	ModelUsage(ctx context.Context, userID uuid.UUID) (map[string]int, error)
}

// Service provides call log reads.
type Service struct {
	logs callLogRepo
	log  *slog.Logger
}

// NewService creates a new call log Service.
func NewService(log *slog.Logger, logs callLogRepo) *Service {
	return &Service{
		logs: logs,
		log:  log.With("service", "calllog"),
	}
}

// ListCallLogsInput holds paging for the call log.
type ListCallLogsInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListCallLogsInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > domain.MaxPageLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListCallLogs returns the authenticated user's model calls, newest first.
func (s *Service) ListCallLogs(ctx context.Context, input ListCallLogsInput) ([]domain.CallLogEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = domain.DefaultPageLimit
	}

	entries, err := s.logs.List(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list call logs: %w", err)
	}
	return entries, nil
}

// CallLogStats aggregates the authenticated user's model calls.
func (s *Service) CallLogStats(ctx context.Context) (*domain.CallLogStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		byStatus map[domain.CallStatus]int
		avg      float64
		usage    map[string]int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		byStatus, err = s.logs.CountByStatus(gctx, userID)
		if err != nil {
			return fmt.Errorf("count by status: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		avg, err = s.logs.AverageResponseTime(gctx, userID)
		if err != nil {
			return fmt.Errorf("average response time: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		usage, err = s.logs.ModelUsage(gctx, userID)
		if err != nil {
			return fmt.Errorf("model usage: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &domain.CallLogStats{
		Successful:          byStatus[domain.CallStatusSuccess],
		Failed:              byStatus[domain.CallStatusFailed],
		AverageResponseTime: avg,
		ModelUsage:          usage,
	}
	for _, n := range byStatus {
		stats.Total += n
	}
	if stats.ModelUsage == nil {
		stats.ModelUsage = map[string]int{}
	}
	return stats, nil
}
