package block

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/dao-indexer/internal/adapter"
	"github.com/feral-file/dao-indexer/internal/logger"
)

// BlockProvider answers "how high is the chain" and "when was block N mined"
// with a TTL cache in front of the node.
//
//go:generate mockgen -source=block.go -destination=../mocks/block_provider.go -package=mocks -mock_names=BlockProvider=MockBlockProvider,BlockFetcher=MockBlockFetcher
type BlockProvider interface {
	// GetLatestBlock returns the chain tip, potentially from cache
	GetLatestBlock(ctx context.Context) (uint64, error)

	// GetBlockTimestamp returns the timestamp of a block, potentially from cache
	GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)

	// Evict drops cached timestamps for blocks at or below blockNumber
	Evict(blockNumber uint64)
}

// BlockFetcher reads block information from the node
type BlockFetcher interface {
	// FetchLatestBlock fetches the latest block number
	FetchLatestBlock(ctx context.Context) (uint64, error)

	// FetchBlockTimestamp fetches the timestamp for a given block number
	FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// Config holds configuration for the BlockProvider
type Config struct {
	// HeadTTL is how long a fetched tip is served from cache
	HeadTTL time.Duration

	// HeadStaleWindow is how long a cached tip may be served when refreshing it fails
	HeadStaleWindow time.Duration

	// TimestampTTL is how long block timestamps are cached, 0 caches until evicted
	TimestampTTL time.Duration
}

type cachedHead struct {
	number    uint64
	fetchedAt time.Time
}

type cachedTimestamp struct {
	timestamp time.Time
	fetchedAt time.Time
}

type blockProvider struct {
	fetcher BlockFetcher
	config  Config
	clock   adapter.Clock

	mu         sync.RWMutex
	head       *cachedHead
	timestamps map[uint64]cachedTimestamp
}

// NewBlockProvider creates a caching BlockProvider
func NewBlockProvider(fetcher BlockFetcher, config Config, clock adapter.Clock) BlockProvider {
	return &blockProvider{
		fetcher:    fetcher,
		config:     config,
		clock:      clock,
		timestamps: make(map[uint64]cachedTimestamp),
	}
}

func (p *blockProvider) GetLatestBlock(ctx context.Context) (uint64, error) {
	p.mu.RLock()
	head := p.head
	p.mu.RUnlock()

	now := p.clock.Now()
	if head != nil && now.Sub(head.fetchedAt) < p.config.HeadTTL {
		return head.number, nil
	}

	number, err := p.fetcher.FetchLatestBlock(ctx)
	if err != nil {
		if head != nil && now.Sub(head.fetchedAt) < p.config.HeadStaleWindow {
			logger.WarnCtx(ctx, "Serving stale chain tip",
				zap.Uint64("block_number", head.number),
				zap.Error(err))
			return head.number, nil
		}
		return 0, fmt.Errorf("failed to fetch latest block: %w", err)
	}

	p.mu.Lock()
	// never move the cached tip backwards when a lagging node answers
	if p.head == nil || number >= p.head.number {
		p.head = &cachedHead{number: number, fetchedAt: now}
	} else {
		number = p.head.number
		p.head.fetchedAt = now
	}
	p.mu.Unlock()

	return number, nil
}

func (p *blockProvider) GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	p.mu.RLock()
	cached, ok := p.timestamps[blockNumber]
	p.mu.RUnlock()

	now := p.clock.Now()
	if ok && (p.config.TimestampTTL == 0 || now.Sub(cached.fetchedAt) < p.config.TimestampTTL) {
		return cached.timestamp, nil
	}

	logger.DebugCtx(ctx, "Fetching block timestamp", zap.Uint64("block_number", blockNumber))
	timestamp, err := p.fetcher.FetchBlockTimestamp(ctx, blockNumber)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to fetch timestamp for block %d: %w", blockNumber, err)
	}

	p.mu.Lock()
	p.timestamps[blockNumber] = cachedTimestamp{timestamp: timestamp, fetchedAt: now}
	p.mu.Unlock()

	return timestamp, nil
}

func (p *blockProvider) Evict(blockNumber uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for n := range p.timestamps {
		if n <= blockNumber {
			delete(p.timestamps, n)
		}
	}
}
