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
	"github.com/feral-file/ff-estate-ledger/internal/api/server"
	"github.com/feral-file/ff-estate-ledger/internal/config"
	"github.com/feral-file/ff-estate-ledger/internal/ledger"
	"github.com/feral-file/ff-estate-ledger/internal/logger"
	"github.com/feral-file/ff-estate-ledger/internal/messaging"
	"github.com/feral-file/ff-estate-ledger/internal/providers/jetstream"
	"github.com/feral-file/ff-estate-ledger/internal/reconcile"
	"github.com/feral-file/ff-estate-ledger/internal/settlement"
	"github.com/feral-file/ff-estate-ledger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "estate-ledger-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Estate Ledger API")

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
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Ledger gateway, connects per call while enabled
	gateway := ledger.NewGateway(cfg.Ledger, adapter.NewFabricDialer(fs), jsonAdapter)
	if gateway.Enabled() {
		logger.InfoCtx(ctx, "Ledger integration enabled",
			zap.String("channel", cfg.Ledger.Channel),
			zap.String("contract", cfg.Ledger.Contract),
		)
	} else {
		logger.WarnCtx(ctx, "Ledger integration disabled, settlements are mirror-only")
	}

	// Settlement events
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter, adapter.NewJCS())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create settlement event publisher", zap.Error(err))
		}
	} else {
		logger.InfoCtx(ctx, "NATS not configured, settlement events are not published")
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	strictContexts, err := cfg.Settlement.Contexts()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid settlement configuration", zap.Error(err))
	}

	orchestrator := settlement.NewOrchestrator(
		settlement.Config{StrictContexts: strictContexts},
		dataStore,
		gateway,
		publisher,
		jsonAdapter,
		clock,
	)
	reconciler := reconcile.NewService(reconcile.Config{WorkerPoolSize: cfg.Worker.WorkerPoolSize}, dataStore, gateway)

	srv := server.New(server.Config{
		Debug:              cfg.Debug,
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:        time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
	}, orchestrator, reconciler)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, fmt.Errorf("server forced to shutdown: %w", err))
	}

	logger.Info("API server stopped")
}
