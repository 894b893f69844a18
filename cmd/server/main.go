package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	httpdelivery "github.com/Xausdorf/maemanee-qr/internal/delivery/http"
	"github.com/Xausdorf/maemanee-qr/internal/domain/repository"
	"github.com/Xausdorf/maemanee-qr/internal/infrastructure/cache"
	"github.com/Xausdorf/maemanee-qr/internal/infrastructure/config"
	"github.com/Xausdorf/maemanee-qr/internal/infrastructure/postgres"
	"github.com/Xausdorf/maemanee-qr/internal/infrastructure/qrgenerator"
	"github.com/Xausdorf/maemanee-qr/internal/usecase/generateqr"
	"github.com/Xausdorf/maemanee-qr/internal/usecase/verifyqr"
)

const (
	readHeaderTimeout     = 5 * time.Second
	gracefulShutdownDelay = 5 * time.Second

	dbMaxConns        = 10
	dbMinConns        = 2
	dbMaxConnLifetime = 30 * time.Minute
	dbMaxConnIdleTime = 5 * time.Minute
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config load failed", zap.Error(err))
		os.Exit(1)
	}

	var issued repository.IssuedQRRepository
	if cfg.PersistenceEnabled() {
		pool, err := initDB(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("database init failed", zap.Error(err))
			os.Exit(1)
		}
		defer pool.Close()
		issued = postgres.NewIssuedQRRepo(pool)
	} else {
		logger.Info("DATABASE_URL not set, issued payloads will not be stored")
	}

	qrGen := qrgenerator.NewGenerator(cfg.QRCodeSize)
	imageCache := cache.NewImageCache(cfg.CacheSize, cfg.CacheTTL)

	generateQRUC := generateqr.NewUseCase(qrGen, imageCache, issued)
	verifyQRUC := verifyqr.NewUseCase()

	handler := httpdelivery.NewHandler(generateQRUC, verifyQRUC, logger)
	router := httpdelivery.NewRouter(handler)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			logger.Error("http serve failed", zap.Error(serveErr))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownDelay)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
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

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
