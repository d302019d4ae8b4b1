package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	httpdelivery "github.com/Xausdorf/debit-core/internal/delivery/http"
	"github.com/Xausdorf/debit-core/internal/domain/validation"
	"github.com/Xausdorf/debit-core/internal/infrastructure/config"
	"github.com/Xausdorf/debit-core/internal/infrastructure/datastore"
	"github.com/Xausdorf/debit-core/internal/infrastructure/logging"
	"github.com/Xausdorf/debit-core/internal/infrastructure/metrics"
	"github.com/Xausdorf/debit-core/internal/infrastructure/postgres"
	redisstore "github.com/Xausdorf/debit-core/internal/infrastructure/redis"
	"github.com/Xausdorf/debit-core/internal/usecase/account"
	"github.com/Xausdorf/debit-core/internal/usecase/payment"
)

const (
	dbMaxConns        = 10
	dbMinConns        = 2
	dbMaxConnLifetime = 30 * time.Minute
	dbMaxConnIdleTime = 5 * time.Minute

	redisPingTimeout      = 3 * time.Second
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.MigrationsPath != "" {
		if err := postgres.Migrate(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			logger.Error("migrations failed", "error", err)
			return err
		}
	}

	pool, err := initDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("database init failed", "error", err)
		return err
	}
	defer pool.Close()

	rdb, err := initRedis(ctx, cfg)
	if err != nil {
		logger.Error("redis init failed", "error", err)
		return err
	}
	defer rdb.Close()

	stores := datastore.NewFactory(
		postgres.NewAccountStore(pool),
		redisstore.NewAccountStore(rdb),
	)
	logger.Info("account store selected", "data_store_type", cfg.DataStoreType)

	paymentMetrics := metrics.NewPayments()
	prometheus.MustRegister(paymentMetrics)

	paymentUC := payment.NewUseCase(stores, cfg.DataStoreType, validation.Default(), logger)
	accountUC := account.NewUseCase(stores, cfg.DataStoreType)

	handler := httpdelivery.NewHandler(paymentUC, accountUC, paymentMetrics, logger)
	router := httpdelivery.NewRouter(handler, prometheus.DefaultGatherer)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", serveErr)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

func initDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = dbMaxConns
	cfg.MinConns = dbMinConns
	cfg.MaxConnLifetime = dbMaxConnLifetime
	cfg.MaxConnIdleTime = dbMaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func initRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}
