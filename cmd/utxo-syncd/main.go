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
	"github.com/sectoken-labs/ledgerd/internal/block"
	"github.com/sectoken-labs/ledgerd/internal/chain"
	"github.com/sectoken-labs/ledgerd/internal/config"
	"github.com/sectoken-labs/ledgerd/internal/ledger"
	"github.com/sectoken-labs/ledgerd/internal/logger"
	"github.com/sectoken-labs/ledgerd/internal/personalinfo"
	"github.com/sectoken-labs/ledgerd/internal/reconciler"
	"github.com/sectoken-labs/ledgerd/internal/store"
	"github.com/sectoken-labs/ledgerd/internal/syncer"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadUTXOSyncConfig(*configFile, *envPath)
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
			"service": "utxo-syncd",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting UTXO sync daemon")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Connect to the chain node
	eth, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to chain node", zap.Error(err), zap.String("rpc_url", cfg.Chain.RPCURL))
	}
	defer eth.Close()
	logger.InfoCtx(ctx, "Connected to chain node", zap.String("rpc_url", cfg.Chain.RPCURL))

	chainClient, err := chain.NewClient(eth)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize chain client", zap.Error(err))
	}

	// Initialize clock adapter
	clock := adapter.NewClock()

	// Initialize block provider
	blocks := block.NewProvider(chain.NewBlockFetcher(eth), block.Config{
		HeadTTL:     cfg.Chain.BlockHeadTTL,
		StaleWindow: cfg.Chain.BlockHeadStaleWindow,
	}, clock)

	// Ledger documents render dates in the deployment timezone
	location, err := time.LoadLocation(cfg.Sync.Timezone)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load timezone", zap.Error(err), zap.String("timezone", cfg.Sync.Timezone))
	}

	// Initialize sync pipeline
	resolver := personalinfo.NewResolver(dataStore, chainClient)
	ledgers := ledger.NewBuilder(chainClient, resolver, clock, location)
	processor := syncer.NewProcessor(dataStore, blocks, reconciler.New(chainClient, blocks), ledgers, cfg.Sync.MaxBlockLot)
	daemon := syncer.NewDaemon(syncer.DaemonConfig{Interval: cfg.Sync.Interval}, processor, clock)

	// Start the daemon in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := daemon.Start(ctx); err != nil {
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

	// Cancel context to stop the daemon
	cancel()

	// Give the daemon time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer shutdownCancel()

	if err := daemon.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "UTXO sync daemon stopped")
}
