package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/aitools/internal/cache"
	"github.com/GlebRadaev/aitools/internal/config"
	"github.com/GlebRadaev/aitools/internal/events"
	"github.com/GlebRadaev/aitools/internal/gateway/razorpay"
	"github.com/GlebRadaev/aitools/internal/handlers"
	"github.com/GlebRadaev/aitools/internal/pg"
	"github.com/GlebRadaev/aitools/internal/repo"
	"github.com/GlebRadaev/aitools/internal/service"
	"github.com/GlebRadaev/aitools/internal/worker"
	"github.com/GlebRadaev/aitools/pkg/clients"
	"github.com/GlebRadaev/aitools/pkg/logger"
	"github.com/GlebRadaev/aitools/pkg/ratelimit"
)

var ErrMissingDatabase = errors.New("DATABASE_URI is not set; export it or pass -d with a postgres DSN")

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	pool    *pgxpool.Pool
	workers *worker.WorkerPool
	cache   *cache.Cache
	amqp    *events.AMQPPublisher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	if cfg.Database == "" {
		return ErrMissingDatabase
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.pool = pool
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	deps := service.Deps{
		TXManager: txManager,
		Gateway:   razorpay.NewClient(cfg.RazorpayURL, clients.NewHTTPClient()),
		Publisher: events.NoopPublisher{},
	}

	if cfg.RedisAddress != "" {
		c, err := cache.InitServer(ctx, cache.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			zap.L().Warn("redis unavailable, settings cache disabled", zap.Error(err))
		} else {
			a.cache = c
			deps.Cache = c
		}
	}

	if cfg.AMQPURL != "" {
		p, err := events.Dial(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			zap.L().Warn("amqp unavailable, events disabled", zap.Error(err))
		} else {
			a.amqp = p
			deps.Publisher = p
		}
	}

	a.workers = worker.NewWorkerPool(cfg.WorkerPoolSize)
	deps.Pool = a.workers

	if !cfg.GatewayFromEnv() {
		zap.L().Info("gateway credentials not in environment, falling back to stored settings")
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(cfg, a.repo, deps)
	a.api = handlers.New(a.srv, ratelimit.New(cfg.PaymentRateLimit, cfg.PaymentRateBurst))

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startReconciler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startReconciler(ctx context.Context) {
	if a.cfg.ReconcileInterval <= 0 {
		zap.L().Info("payment reconciler disabled")
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.srv.Reconciler.Run(ctx)
	}()
}

// close releases the shared resources once every server goroutine has stopped.
func (a *Application) close() {
	if a.workers != nil {
		a.workers.Close()
	}
	if a.amqp != nil {
		if err := a.amqp.Close(); err != nil {
			zap.L().Warn("close amqp publisher", zap.Error(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			zap.L().Warn("close redis", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()
	a.close()

	return appErr
}
