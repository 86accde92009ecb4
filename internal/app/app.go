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

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/proposal-backend/internal/adapter/postgres"
	employeerepo "github.com/heartmarshall/proposal-backend/internal/adapter/postgres/employee"
	proposalrepo "github.com/heartmarshall/proposal-backend/internal/adapter/postgres/proposal"
	"github.com/heartmarshall/proposal-backend/internal/adapter/provider/opportunity"
	"github.com/heartmarshall/proposal-backend/internal/adapter/provider/search"
	"github.com/heartmarshall/proposal-backend/internal/auth"
	"github.com/heartmarshall/proposal-backend/internal/config"
	"github.com/heartmarshall/proposal-backend/internal/metrics"
	"github.com/heartmarshall/proposal-backend/internal/service/proposal"
	"github.com/heartmarshall/proposal-backend/internal/transport/middleware"
	"github.com/heartmarshall/proposal-backend/internal/transport/rest"
)

const rateLimitCleanup = 5 * time.Minute

// App holds the components shared by the HTTP server and the CLI commands.
type App struct {
	cfg       *config.Config
	log       *slog.Logger
	pool      *pgxpool.Pool
	metrics   *metrics.Metrics
	proposals *proposal.Service
}

// New connects to the database, optionally runs migrations, and wires the
// proposal service with its repositories and integration clients.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return nil, err
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return NewWithPool(cfg, logger, pool), nil
}

// NewWithPool wires the application on top of an existing pool. The App
// takes ownership of the pool and closes it in Close.
func NewWithPool(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *App {
	m := metrics.New()

	opportunities := opportunity.NewClient(cfg.Integrations, m, logger)
	searcher := search.NewClient(cfg.Integrations, m, logger)

	employees := employeerepo.New(pool)
	proposals := proposalrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	hooks := proposal.NewHooks(
		logger,
		proposal.NewOpportunityEnricher(opportunities),
		proposal.NewEmployeeResolver(logger, searcher, employees),
		m,
	)

	return &App{
		cfg:       cfg,
		log:       logger,
		pool:      pool,
		metrics:   m,
		proposals: proposal.NewService(logger, hooks, proposals, employees, txm),
	}
}

// Close releases the database pool.
func (a *App) Close() {
	a.pool.Close()
}

// Proposals returns the wired proposal service.
func (a *App) Proposals() *proposal.Service {
	return a.proposals
}

// Handler builds the HTTP handler: probes and metrics are public, /api is
// behind bearer auth when a JWT secret is configured. The returned stop
// function releases the rate limiter.
func (a *App) Handler() (http.Handler, func()) {
	mux := http.NewServeMux()

	rest.RegisterHealth(mux, rest.NewHealthHandler(Version, map[string]rest.Pinger{
		"database": a.pool,
	}))
	mux.Handle("GET /metrics", a.metrics.Handler())

	api := http.NewServeMux()
	rest.RegisterAPI(api,
		rest.NewProposalHandler(a.proposals, a.log),
		rest.NewEmployeeHandler(a.proposals, a.log),
	)

	var apiMiddleware []middleware.Middleware
	if a.cfg.Auth.Enabled() {
		jwtManager := auth.NewJWTManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.JWTIssuer)
		apiMiddleware = append(apiMiddleware, middleware.Auth(jwtManager, a.log))
	} else {
		a.log.Warn("API authentication disabled: auth.jwt_secret is empty")
	}

	stop := func() {}
	if a.cfg.Server.WriteRateLimit > 0 {
		limiter := middleware.NewRateLimiter(a.cfg.Server.WriteRateLimit, rateLimitCleanup)
		apiMiddleware = append(apiMiddleware, middleware.When(middleware.IsWrite, limiter.Middleware()))
		stop = limiter.Stop
	}
	mux.Handle("/api/", middleware.Chain(apiMiddleware...)(api))

	global := middleware.Chain(
		middleware.Recovery(a.log),
		middleware.RequestID(),
		middleware.Logger(a.log),
		middleware.CORS(a.cfg.CORS),
	)
	return global(mux), stop
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	handler, stop := a.Handler()
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Run is the server entry point: it loads configuration, wires the
// application and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
