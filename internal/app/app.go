package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Akshansingh/EDTECHPCM/internal/auth"
	"github.com/Akshansingh/EDTECHPCM/internal/catalog"
	"github.com/Akshansingh/EDTECHPCM/internal/chat"
	"github.com/Akshansingh/EDTECHPCM/internal/config"
	"github.com/Akshansingh/EDTECHPCM/internal/logging"
	"github.com/Akshansingh/EDTECHPCM/internal/metrics"
	"github.com/Akshansingh/EDTECHPCM/internal/quiz"
	"github.com/Akshansingh/EDTECHPCM/internal/server"
	"github.com/Akshansingh/EDTECHPCM/internal/topic"
)

// Application aggregates shared infrastructure (catalog, session store,
// cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	redis *redis.Client
	http  *http.Server

	sweeper   *quiz.SweepWorker
	bgCancels []context.CancelFunc
}

// New bootstraps logger, catalog, session store, chat provider and HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	return newWithLogger(ctx, cfg, logging.New(cfg.Name, cfg.Env))
}

func newWithLogger(ctx context.Context, cfg *config.App, logger zerolog.Logger) (*Application, error) {
	logger.Info().Msg("starting application bootstrap")

	cat, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int("master_topics", len(cat.MasterTopics)).
		Int("question_topics", cat.Questions.Table.Len()).
		Int("quizzes", len(cat.Quizzes)).
		Msg("catalog loaded")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
	}

	var (
		store   quiz.Store
		sweeper *quiz.SweepWorker
	)
	switch cfg.Sessions.Store {
	case config.StoreRedis:
		if redisClient == nil {
			return nil, fmt.Errorf("REDIS_ADDR must be configured when SESSION_STORE=redis")
		}
		store = quiz.NewRedisStore(redisClient, cfg.Sessions.TTL, logger)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("sessions stored in redis")
	default:
		mem := quiz.NewMemoryStore(cfg.Sessions.TTL)
		store = mem
		sweeper = quiz.NewSweepWorker(mem, cfg.Sessions.SweepInterval, logger)
		logger.Info().Dur("ttl", cfg.Sessions.TTL).Msg("sessions stored in memory")
	}

	provider, err := chat.NewProvider(ctx, cfg.Chat)
	switch {
	case errors.Is(err, chat.ErrMissingAPIKey):
		logger.Warn().Err(err).Str("provider", cfg.Chat.Provider).Msg("chat provider has no API key")
		provider = nil
	case err != nil:
		return nil, fmt.Errorf("chat provider: %w", err)
	}
	if provider == nil {
		logger.Warn().Msg("chat provider not configured; chat endpoints disabled")
	} else {
		logger.Info().Str("provider", cfg.Chat.Provider).Str("model", provider.ModelID()).Msg("chat provider initialized")
	}

	resolver := topic.NewResolver(cat, topic.WithObserver(recorder))
	quizSvc := quiz.NewService(resolver, store, recorder, logger)
	chatSvc := chat.NewService(provider, cfg.Chat, recorder, logger)
	gate := auth.NewGate(cfg.Auth, logger)

	apiServer := server.NewHTTPServer(cfg, logger,
		server.Deps{
			Redis:      redisClient,
			Metrics:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			Middleware: []func(http.Handler) http.Handler{gate.Middleware},
		},
		topic.NewHTTPHandler(resolver, logger),
		quiz.NewHTTPHandlers(quizSvc, logger),
		quiz.NewWSHandler(quizSvc, logger),
		chat.NewHTTPHandler(chatSvc, logger),
		gate,
	)

	return &Application{
		cfg:       cfg,
		logger:    logger,
		redis:     redisClient,
		http:      apiServer,
		sweeper:   sweeper,
		bgCancels: make([]context.CancelFunc, 0, 1),
	}, nil
}

func loadCatalog(cfg config.Catalog) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		c := catalog.Default()
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
		return c, nil
	}
	return catalog.Load(cfg.Path)
}

// Handler exposes the fully wired HTTP handler.
func (a *Application) Handler() http.Handler {
	return a.http.Handler
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	a.shutdown()
	return runErr
}

func (a *Application) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.sweeper != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.sweeper.Run(bgCtx); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Warn().Err(err).Msg("session sweeper stopped")
			}
		}()
	}
}
