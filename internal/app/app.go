package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/studynotes-backend/internal/adapter/llm"
	"github.com/heartmarshall/studynotes-backend/internal/adapter/lock"
	"github.com/heartmarshall/studynotes-backend/internal/adapter/postgres"
	analyticsrepo "github.com/heartmarshall/studynotes-backend/internal/adapter/postgres/analytics"
	calllogrepo "github.com/heartmarshall/studynotes-backend/internal/adapter/postgres/calllog"
	noterepo "github.com/heartmarshall/studynotes-backend/internal/adapter/postgres/note"
	preferencerepo "github.com/heartmarshall/studynotes-backend/internal/adapter/postgres/preference"
	subjectrepo "github.com/heartmarshall/studynotes-backend/internal/adapter/postgres/subject"
	templaterepo "github.com/heartmarshall/studynotes-backend/internal/adapter/postgres/template"
	topicrepo "github.com/heartmarshall/studynotes-backend/internal/adapter/postgres/topic"
	"github.com/heartmarshall/studynotes-backend/internal/auth"
	"github.com/heartmarshall/studynotes-backend/internal/config"
	"github.com/heartmarshall/studynotes-backend/internal/service/calllog"
	"github.com/heartmarshall/studynotes-backend/internal/service/generation"
	"github.com/heartmarshall/studynotes-backend/internal/service/note"
	"github.com/heartmarshall/studynotes-backend/internal/service/preference"
	"github.com/heartmarshall/studynotes-backend/internal/service/subject"
	"github.com/heartmarshall/studynotes-backend/internal/service/template"
	"github.com/heartmarshall/studynotes-backend/internal/service/topic"
	"github.com/heartmarshall/studynotes-backend/internal/transport/middleware"
	"github.com/heartmarshall/studynotes-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), builds the services and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	locks, healthChecks, closeLocks, err := newLocker(ctx, cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer closeLocks()

	model, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		return fmt.Errorf("create model client: %w", err)
	}

	// Repositories.
	txm := postgres.NewTxManager(pool)
	subjects := subjectrepo.New(pool)
	topics := topicrepo.New(pool)
	notes := noterepo.New(pool)
	analytics := analyticsrepo.New(pool)
	prefs := preferencerepo.New(pool)
	templates := templaterepo.New(pool)
	calls := calllogrepo.New(pool)

	// Services.
	templateSvc := template.NewService(logger, templates)
	if _, err := templateSvc.EnsureDefault(ctx); err != nil {
		return fmt.Errorf("ensure default template: %w", err)
	}

	generationSvc := generation.NewService(logger,
		topics, notes, analytics, prefs, templateSvc, model, calls, locks, txm,
		generation.Options{
			MaxRetries:           cfg.Generation.MaxRetries,
			RetryInitialInterval: cfg.Generation.RetryInitialInterval,
			RetryMaxInterval:     cfg.Generation.RetryMaxInterval,
			LockTTL:              cfg.Generation.LockTTL,
		},
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, BuildVersion(), healthChecks...),
		Subjects:    rest.NewSubjectHandler(subject.NewService(logger, subjects), logger),
		Topics:      rest.NewTopicHandler(topic.NewService(logger, topics, subjects), logger),
		Generation:  rest.NewGenerationHandler(generationSvc, logger),
		Notes:       rest.NewNoteHandler(note.NewService(logger, notes, analytics, txm), logger),
		Preferences: rest.NewPreferenceHandler(preference.NewService(logger, prefs, txm), logger),
		AI:          rest.NewAIHandler(templateSvc, calllog.NewService(logger, calls), generationSvc, logger),
	}, limiter.Limit(cfg.RateLimit.GeneratePerMinute))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

// generationLocker is what both lock implementations provide.
type generationLocker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (lock.Release, error)
}

// newLocker picks the Redis lock when redis.url is set, the in-process one otherwise.
func newLocker(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (generationLocker, []rest.HealthCheck, func(), error) {
	if cfg.URL == "" {
		logger.Info("generation lock: in-process")
		return lock.NewLocal(), nil, func() {}, nil
	}

	rdb, err := lock.Connect(ctx, cfg.URL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("generation lock: redis")

	check := rest.HealthCheck{
		Name: "redis",
		Pinger: rest.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}),
	}
	return lock.NewRedis(rdb), []rest.HealthCheck{check}, func() { closeRedis(rdb, logger) }, nil
}

func closeRedis(rdb *redis.Client, logger *slog.Logger) {
	if err := rdb.Close(); err != nil {
		logger.Warn("close redis", slog.String("error", err.Error()))
	}
}
