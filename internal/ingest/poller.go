package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/feral-file/dao-indexer/internal/domain"
	"github.com/feral-file/dao-indexer/internal/logger"
	"github.com/feral-file/dao-indexer/internal/metrics"
	"github.com/feral-file/dao-indexer/internal/providers/ethereum"
	"github.com/feral-file/dao-indexer/internal/store"
)

const (
	pollerIdle int32 = iota
	pollerRunning
)

// Poller extends ingestion from checkpoint+1 to the chain tip on every tick once backfill is done
type Poller struct {
	chain       ethereum.ChainClient
	ingester    *Ingester
	checkpoints store.CheckpointStore
	backfill    Readiness
	interval    time.Duration

	state     atomic.Int32
	scheduler gocron.Scheduler
}

// NewPoller creates a live poll scheduler
func NewPoller(chain ethereum.ChainClient, ingester *Ingester, checkpoints store.CheckpointStore, backfill Readiness, interval time.Duration) *Poller {
	return &Poller{
		chain:       chain,
		ingester:    ingester,
		checkpoints: checkpoints,
		backfill:    backfill,
		interval:    interval,
	}
}

// Tick runs one poll. It returns domain.ErrBackfillIncomplete or domain.ErrTickInFlight
// without touching the chain when it must not run, and a nil report when there are no new blocks.
func (p *Poller) Tick(ctx context.Context) (*Report, error) {
	if !p.backfill.Done() {
		metrics.TicksSkippedTotal.WithLabelValues(metrics.SkipBackfillPending).Inc()
		return nil, domain.ErrBackfillIncomplete
	}

	if !p.state.CompareAndSwap(pollerIdle, pollerRunning) {
		metrics.TicksSkippedTotal.WithLabelValues(metrics.SkipInFlight).Inc()
		return nil, domain.ErrTickInFlight
	}
	defer p.state.Store(pollerIdle)

	checkpoint, err := p.checkpoints.GetCheckpoint(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read checkpoint: %w", err)
	}

	tip, err := p.chain.CurrentHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain tip: %w", err)
	}
	metrics.ChainTipBlock.Set(float64(tip))

	if checkpoint+1 > tip {
		metrics.TicksSkippedTotal.WithLabelValues(metrics.SkipNoNewBlocks).Inc()
		logger.DebugCtx(ctx, "No new blocks", zap.Uint64("checkpoint", checkpoint), zap.Uint64("tip", tip))
		return nil, nil
	}

	return p.ingester.IngestRange(ctx, metrics.ModeLive, domain.BlockRange{From: checkpoint + 1, To: tip})
}

// Running reports whether a tick is in flight
func (p *Poller) Running() bool {
	return p.state.Load() == pollerRunning
}

// Start schedules Tick every interval, first run immediately. Ticks run until Stop or ctx is done.
func (p *Poller) Start(ctx context.Context) error {
	if p.interval <= 0 {
		return errors.New("poll interval must be greater than 0")
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(p.interval),
		gocron.NewTask(func() { p.runTick(ctx) }),
		gocron.WithName("live-poll"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("failed to schedule poll job: %w", err)
	}

	p.scheduler = s
	s.Start()

	logger.InfoCtx(ctx, "Live poll scheduler started", zap.Duration("interval", p.interval))
	return nil
}

// Stop shuts the scheduler down, waiting for a running tick to return
func (p *Poller) Stop() error {
	if p.scheduler == nil {
		return nil
	}
	if err := p.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}
	logger.Info("Live poll scheduler stopped")
	return nil
}

func (p *Poller) runTick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	_, err := p.Tick(ctx)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrBackfillIncomplete), errors.Is(err, domain.ErrTickInFlight):
		logger.DebugCtx(ctx, "Poll tick skipped", zap.Error(err))
	default:
		// Checkpoint is unchanged, the next tick retries the same range
		logger.WarnCtx(ctx, "Poll tick failed", zap.Error(err))
	}
}
