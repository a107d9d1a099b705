package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/feral-file/dao-indexer/internal/domain"
	"github.com/feral-file/dao-indexer/internal/logger"
	"github.com/feral-file/dao-indexer/internal/metrics"
	"github.com/feral-file/dao-indexer/internal/providers/ethereum"
	"github.com/feral-file/dao-indexer/internal/store"
)

// BackfillConfig holds configuration for the backfill coordinator
type BackfillConfig struct {
	// StartBlock is the floor the checkpoint is raised to before replay
	StartBlock uint64
	// ChunkSize is the number of blocks per replayed range
	ChunkSize uint64
}

// Readiness is the one-way signal that historical replay has finished
type Readiness interface {
	// Done reports whether backfill has completed
	Done() bool
}

// Backfill replays history from the checkpoint to the tip captured at start, chunk by chunk
type Backfill struct {
	chain       ethereum.ChainClient
	ingester    *Ingester
	checkpoints store.CheckpointStore
	config      BackfillConfig

	done  atomic.Bool
	ready chan struct{}
	once  sync.Once
}

// NewBackfill creates a backfill coordinator
func NewBackfill(chain ethereum.ChainClient, ingester *Ingester, checkpoints store.CheckpointStore, config BackfillConfig) *Backfill {
	return &Backfill{
		chain:       chain,
		ingester:    ingester,
		checkpoints: checkpoints,
		config:      config,
		ready:       make(chan struct{}),
	}
}

// Done reports whether backfill has completed
func (b *Backfill) Done() bool {
	return b.done.Load()
}

// Ready is closed when backfill completes
func (b *Backfill) Ready() <-chan struct{} {
	return b.ready
}

// Run replays every chunk up to the current tip. Any chunk error aborts the run
// with the checkpoint left at the last committed chunk and backfill incomplete.
func (b *Backfill) Run(ctx context.Context) error {
	if b.config.ChunkSize == 0 {
		return errors.New("chunk size must be greater than 0")
	}

	tip, err := b.chain.CurrentHeight(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain tip: %w", err)
	}
	metrics.ChainTipBlock.Set(float64(tip))

	cursor, err := b.checkpoints.GetCheckpoint(ctx)
	if err != nil {
		return fmt.Errorf("failed to read checkpoint: %w", err)
	}

	if cursor < b.config.StartBlock {
		logger.InfoCtx(ctx, "Raising checkpoint to configured start block",
			zap.Uint64("checkpoint", cursor),
			zap.Uint64("start_block", b.config.StartBlock))
		if err := b.checkpoints.SetCheckpoint(ctx, b.config.StartBlock); err != nil {
			return fmt.Errorf("failed to raise checkpoint to start block: %w", err)
		}
		cursor = b.config.StartBlock
	}
	metrics.CheckpointBlock.Set(float64(cursor))

	logger.InfoCtx(ctx, "Starting backfill",
		zap.Uint64("from_block", cursor),
		zap.Uint64("tip", tip),
		zap.Uint64("chunk_size", b.config.ChunkSize))

	chunks := 0
	for _, r := range Chunks(cursor, tip, b.config.ChunkSize) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := b.ingester.IngestRange(ctx, metrics.ModeBackfill, r); err != nil {
			logger.ErrorCtx(ctx, errors.New("backfill aborted"),
				zap.Uint64("from_block", r.From),
				zap.Uint64("to_block", r.To),
				zap.Error(err))
			return fmt.Errorf("%w: chunk %d-%d: %w", domain.ErrBackfillIncomplete, r.From, r.To, err)
		}
		chunks++
	}

	b.markDone()
	logger.InfoCtx(ctx, "Backfill complete", zap.Uint64("tip", tip), zap.Int("chunks", chunks))

	return nil
}

func (b *Backfill) markDone() {
	b.once.Do(func() {
		b.done.Store(true)
		metrics.BackfillComplete.Set(1)
		close(b.ready)
	})
}

// Chunks splits replay from cursor to tip into consecutive ranges of at most size blocks.
// Ranges are produced while the cursor is below tip and never extend past it.
func Chunks(cursor, tip, size uint64) []domain.BlockRange {
	if size == 0 {
		return nil
	}

	var ranges []domain.BlockRange
	for cursor < tip {
		end := tip
		// Compared as a distance so a huge size cannot wrap around
		if size <= tip-cursor {
			end = cursor + size - 1
		}
		ranges = append(ranges, domain.BlockRange{From: cursor, To: end})
		cursor = end + 1
	}
	return ranges
}
