package ethereum

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/feral-file/dao-indexer/internal/adapter"
	"github.com/feral-file/dao-indexer/internal/block"
)

// ethereumBlockFetcher implements block.BlockFetcher over JSON-RPC with retries
type ethereumBlockFetcher struct {
	client adapter.EthClient
	clock  adapter.Clock
	retry  RetryConfig
}

func NewEthereumBlockFetcher(client adapter.EthClient, clock adapter.Clock, retry RetryConfig) block.BlockFetcher {
	return &ethereumBlockFetcher{client: client, clock: clock, retry: retry}
}

// FetchLatestBlock returns eth_blockNumber
func (f *ethereumBlockFetcher) FetchLatestBlock(ctx context.Context) (uint64, error) {
	return withRetry(ctx, f.retry, "eth_blockNumber", f.client.BlockNumber)
}

// FetchBlockTimestamp reads the header of blockNumber and returns its timestamp
func (f *ethereumBlockFetcher) FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	header, err := withRetry(ctx, f.retry, "eth_getBlockByNumber", func(ctx context.Context) (*types.Header, error) {
		return f.client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	})
	if err != nil {
		return time.Time{}, err
	}
	if header == nil {
		return time.Time{}, errors.New("node returned no header")
	}
	return f.clock.Unix(int64(header.Time), 0), nil //nolint:gosec,G115 // header.Time is a unix timestamp
}
