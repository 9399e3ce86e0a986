// Package preference manages per-user note generation settings.
package preference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/pkg/ctxutil"
)

type preferenceRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Preference, error)
	CreateIfMissing(ctx context.Context, p *domain.Preference) (*domain.Preference, error)
	Update(ctx context.Context, p *domain.Preference) (*domain.Preference, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	MinWordCount = 100
	MaxWordCount = 10000
)

// Service provides preference operations.
type Service struct {
	prefs preferenceRepo
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Preference service.
func NewService(log *slog.Logger, prefs preferenceRepo, tx txManager) *Service {
	return &Service{
		prefs: prefs,
		tx:    tx,
		log:   log.With("service", "preference"),
	}
}

// EnsurePreferences returns the user's preferences, storing the defaults the
// first time. Safe to call concurrently.
func (s *Service) EnsurePreferences(ctx context.Context, userID uuid.UUID) (*domain.Preference, error) {
	p, err := s.prefs.Get(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	def := domain.DefaultPreference(userID)
	p, err = s.prefs.CreateIfMissing(ctx, &def)
	if err != nil {
		return nil, fmt.Errorf("create preferences: %w", err)
	}

	s.log.InfoContext(ctx, "default preferences created", slog.String("user_id", userID.String()))
	return p, nil
}

// GetPreferences returns the authenticated user's preferences.
func (s *Service) GetPreferences(ctx context.Context) (*domain.Preference, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.EnsurePreferences(ctx, userID)
}

// UpdatePreferences applies a partial update to the authenticated user's
// preferences.
func (s *Service) UpdatePreferences(ctx context.Context, input UpdatePreferencesInput) (*domain.Preference, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Preference
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.EnsurePreferences(txCtx, userID)
		if err != nil {
			return err
		}

		input.apply(p)

		updated, err = s.prefs.Update(txCtx, p)
		if err != nil {
			return fmt.Errorf("update preferences: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "preferences updated", slog.String("user_id", userID.String()))
	return updated, nil
}
