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
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sectoken-labs/ledgerd/internal/adapter"
	"github.com/sectoken-labs/ledgerd/internal/batch"
	"github.com/sectoken-labs/ledgerd/internal/chain"
	"github.com/sectoken-labs/ledgerd/internal/claim"
	"github.com/sectoken-labs/ledgerd/internal/config"
	"github.com/sectoken-labs/ledgerd/internal/logger"
	"github.com/sectoken-labs/ledgerd/internal/messaging/jetstream"
	"github.com/sectoken-labs/ledgerd/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadPersonalInfoConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "personal-infod",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting personal info processor")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Connect to the chain node
	eth, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to chain node", zap.Error(err), zap.String("rpc_url", cfg.Chain.RPCURL))
	}
	defer eth.Close()

	chainClient, err := chain.NewClient(eth)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize chain client", zap.Error(err))
	}

	sender, err := chain.NewSender(eth, cfg.Chain.TxSenderKey, cfg.Chain.ChainID)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize transaction sender", zap.Error(err))
	}

	// Connect to NATS for notification events
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
	}, adapter.NewNatsJetStream(), adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	// Initialize processor
	processor := batch.NewPersonalInfoProcessor(
		batch.PersonalInfoConfig{
			WorkerPoolSize: cfg.Worker.WorkerPoolSize,
			BatchSize:      cfg.Worker.BatchSize,
			Interval:       cfg.Interval,
		},
		dataStore,
		chainClient,
		sender,
		claim.NewRegistry(),
		publisher,
		adapter.NewJSON(),
		adapter.NewClock(),
	)

	// Start the processor in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := processor.Start(ctx); err != nil {
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

	// Cancel context to stop the processor
	cancel()

	// Give the processor time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := processor.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Personal info processor stopped")
}
