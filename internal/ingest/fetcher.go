package ingest

import (
	"context"
	"fmt"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/dao-indexer/internal/domain"
	"github.com/feral-file/dao-indexer/internal/logger"
	"github.com/feral-file/dao-indexer/internal/providers/ethereum"
)

// Fetcher reads one block range from the chain into a Batch
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/fetcher.go -package=mocks -mock_names=Fetcher=MockFetcher
type Fetcher interface {
	// Fetch returns the events of every tracked kind in r together with their block timestamps
	Fetch(ctx context.Context, r domain.BlockRange) (*Batch, error)
}

type fetcher struct {
	chain ethereum.ChainClient
	pool  pond.Pool
}

// NewFetcher creates a Fetcher resolving block timestamps through pool
func NewFetcher(chain ethereum.ChainClient, pool pond.Pool) Fetcher {
	return &fetcher{
		chain: chain,
		pool:  pool,
	}
}

func (f *fetcher) Fetch(ctx context.Context, r domain.BlockRange) (*Batch, error) {
	batch := NewBatch(r)

	// The three kinds are independent reads; results are keyed by kind so arrival order never matters
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range domain.EventKinds {
		kind := kind
		g.Go(func() error {
			events, err := f.chain.Events(gctx, kind, r.From, r.To)
			if err != nil {
				return fmt.Errorf("failed to fetch %s events: %w", kind, err)
			}
			mu.Lock()
			batch.Events[kind] = events
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	blocks := batch.BlockNumbers()
	if len(blocks) == 0 {
		return batch, nil
	}

	group := f.pool.NewGroup()
	for _, n := range blocks {
		n := n
		group.SubmitErr(func() error {
			ts, err := f.chain.BlockTimestamp(ctx, n)
			if err != nil {
				return fmt.Errorf("failed to resolve timestamp of block %d: %w", n, err)
			}
			mu.Lock()
			batch.Timestamps[n] = ts
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Fetched block range",
		zap.Uint64("from_block", r.From),
		zap.Uint64("to_block", r.To),
		zap.Int("events", batch.Len()),
		zap.Int("blocks", len(blocks)))

	return batch, nil
}
