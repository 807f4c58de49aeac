package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-estate-ledger/internal/adapter"
	"github.com/feral-file/ff-estate-ledger/internal/config"
	"github.com/feral-file/ff-estate-ledger/internal/ledger"
	"github.com/feral-file/ff-estate-ledger/internal/logger"
	"github.com/feral-file/ff-estate-ledger/internal/messaging"
	"github.com/feral-file/ff-estate-ledger/internal/settlement"
	"github.com/feral-file/ff-estate-ledger/internal/store"
	"github.com/feral-file/ff-estate-ledger/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "estate-ledger-sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	if !cfg.Resync.Enabled {
		logger.InfoCtx(ctx, "Ledger resync disabled, nothing to do")
		return
	}
	logger.InfoCtx(ctx, "Starting Sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()
	gateway := ledger.NewGateway(cfg.Ledger, adapter.NewFabricDialer(adapter.NewFileSystem()), jsonAdapter)

	// Registrations only, no settlement runs through this orchestrator
	orchestrator := settlement.NewOrchestrator(settlement.Config{}, dataStore, gateway, messaging.NewNoopPublisher(), jsonAdapter, clock)

	resyncConfig := &sweeper.LedgerResyncSweeperConfig{
		Interval:        cfg.Resync.Interval,
		MinAge:          cfg.Resync.MinAge,
		BatchSize:       cfg.Resync.BatchSize,
		MaxElapsed:      cfg.Resync.MaxElapsed,
		WorkerPoolSize:  cfg.Resync.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Resync.Worker.WorkerQueueSize,
	}
	resyncSweeper := sweeper.NewLedgerResyncSweeper(resyncConfig, dataStore, gateway, orchestrator, clock)

	logger.InfoCtx(ctx, "Initialized ledger resync sweeper",
		zap.Duration("interval", cfg.Resync.Interval),
		zap.Duration("min_age", cfg.Resync.MinAge),
		zap.Int("batch_size", cfg.Resync.BatchSize),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := resyncSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Give the sweeper time to finish the record in flight
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := resyncSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	cancel()

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
