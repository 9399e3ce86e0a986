package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/adapter/lock"
	"github.com/heartmarshall/studynotes-backend/internal/domain"
)

func lockKey(topicID uuid.UUID) string {
	return "topic:" + topicID.String()
}

func (s *Service) acquire(ctx context.Context, topicID uuid.UUID) (lock.Release, error) {
	release, err := s.locks.Acquire(ctx, lockKey(topicID), s.opts.LockTTL)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("topic %s is being generated: %w", topicID, err)
		}
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	return release, nil
}

func (s *Service) release(ctx context.Context, topicID uuid.UUID, release lock.Release) {
	if err := release(context.WithoutCancel(ctx)); err != nil {
		s.log.WarnContext(ctx, "release generation lock",
			slog.String("topic_id", topicID.String()),
			slog.String("error", err.Error()))
	}
}

// complete calls the model, retrying upstream failures with exponential
// backoff when MaxRetries is set.
func (s *Service) complete(ctx context.Context, text string) (string, error) {
	if s.opts.MaxRetries <= 0 {
		return s.model.Complete(ctx, text)
	}

	b := backoff.NewExponentialBackOff()
	if s.opts.RetryInitialInterval > 0 {
		b.InitialInterval = s.opts.RetryInitialInterval
	}
	if s.opts.RetryMaxInterval > 0 {
		b.MaxInterval = s.opts.RetryMaxInterval
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.opts.MaxRetries)), ctx)

	op := func() (string, error) {
		out, err := s.model.Complete(ctx, text)
		if err != nil && !errors.Is(err, domain.ErrUpstream) {
			return "", backoff.Permanent(err)
		}
		return out, err
	}
	notify := func(err error, wait time.Duration) {
		s.log.WarnContext(ctx, "model call failed, retrying",
			slog.String("error", err.Error()),
			slog.Duration("wait", wait))
	}

	return backoff.RetryNotifyWithData(op, policy, notify)
}

// logCall appends a call log entry. Failures are logged and dropped.
func (s *Service) logCall(ctx context.Context, e domain.CallLogEntry) {
	if err := s.calls.Create(ctx, &e); err != nil {
		s.log.ErrorContext(ctx, "write call log",
			slog.String("status", e.Status.String()),
			slog.String("error", err.Error()))
	}
}

// setStatus is used on paths that already carry an error for the caller.
func (s *Service) setStatus(ctx context.Context, topicID uuid.UUID, status domain.TopicStatus) {
	if err := s.topics.UpdateStatus(ctx, topicID, status); err != nil {
		s.log.ErrorContext(ctx, "update topic status",
			slog.String("topic_id", topicID.String()),
			slog.String("status", status.String()),
			slog.String("error", err.Error()))
	}
}
