package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/dao-indexer/internal/adapter"
	"github.com/feral-file/dao-indexer/internal/block"
	"github.com/feral-file/dao-indexer/internal/config"
	"github.com/feral-file/dao-indexer/internal/ingest"
	"github.com/feral-file/dao-indexer/internal/logger"
	"github.com/feral-file/dao-indexer/internal/providers/ethereum"
	"github.com/feral-file/dao-indexer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadIndexerConfig(*configFile, *envPath)
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
			"service": "dao-indexer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting DAO indexer",
		zap.String("contract", cfg.Ethereum.ContractAddress),
		zap.Uint64("start_block", cfg.Ethereum.StartBlock),
		zap.Uint64("chunk_size", cfg.Ethereum.ChunkSize),
	)

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	ethDialer := adapter.NewEthClientDialer()
	ethClient, err := ethDialer.Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to dial Ethereum RPC", zap.Error(err))
	}

	retry := ethereum.DefaultRetryConfig()
	retry.RequestTimeout = cfg.Ethereum.RequestTimeout
	retry.MaxElapsedTime = cfg.Ethereum.MaxRetryElapsed

	blockProvider := block.NewBlockProvider(
		ethereum.NewEthereumBlockFetcher(ethClient, clockAdapter, retry),
		block.Config{
			HeadTTL:         cfg.Ethereum.BlockHeadTTL,
			HeadStaleWindow: cfg.Ethereum.PollInterval,
			TimestampTTL:    cfg.Ethereum.BlockTimestampTTL,
		},
		clockAdapter,
	)

	contractABI, err := ethereum.LoadABI(cfg.Ethereum.ABIPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to load DAO ABI", zap.Error(err), zap.String("path", cfg.Ethereum.ABIPath))
	}

	chain, err := ethereum.NewChainClient(ethereum.Config{
		ContractAddress: common.HexToAddress(cfg.Ethereum.ContractAddress),
		ABI:             contractABI,
		Retry:           retry,
	}, ethClient, blockProvider)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create chain client", zap.Error(err))
	}
	defer chain.Close()

	// Worker pool for block timestamp prefetch
	pool := pond.NewPool(cfg.Worker.PoolSize, pond.WithContext(ctx))
	defer pool.StopAndWait()

	ingester := ingest.NewIngester(
		chain,
		ingest.NewFetcher(chain, pool),
		ingest.NewProjector(dataStore),
		dataStore,
		clockAdapter,
	)

	backfill := ingest.NewBackfill(chain, ingester, dataStore, ingest.BackfillConfig{
		StartBlock: cfg.Ethereum.StartBlock,
		ChunkSize:  cfg.Ethereum.ChunkSize,
	})
	poller := ingest.NewPoller(chain, ingester, dataStore, backfill, cfg.Ethereum.PollInterval)

	// Metrics endpoint
	var metricsServer *http.Server
	if cfg.Metrics.Address != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:              cfg.Metrics.Address,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.InfoCtx(ctx, "Starting metrics server", zap.String("address", cfg.Metrics.Address))
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.ErrorCtx(ctx, err, zap.String("component", "metrics"))
			}
		}()
	}

	// Ticks are skipped until backfill completes
	if err := poller.Start(ctx); err != nil {
		logger.FatalCtx(ctx, "Failed to start live poll scheduler", zap.Error(err))
	}

	// Channel for backfill errors
	errCh := make(chan error, 1)
	go func() {
		if err := backfill.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// A failed backfill stops the process; a restart resumes from the checkpoint
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "backfill"))
	}
	cancel()

	if err := poller.Stop(); err != nil {
		logger.Error(err, zap.String("component", "poller"))
	}

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, zap.String("component", "metrics"))
		}
	}

	// Use non-context logger for final message since ctx is canceled
	logger.Info("DAO indexer stopped")
}
