package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/dao-indexer/internal/adapter"
	"github.com/feral-file/dao-indexer/internal/block"
	"github.com/feral-file/dao-indexer/internal/domain"
	"github.com/feral-file/dao-indexer/internal/logger"
)

// ChainClient is the node-facing side of the ingestion pipeline
//
//go:generate mockgen -source=client.go -destination=../../mocks/chain_client.go -package=mocks -mock_names=ChainClient=MockChainClient
type ChainClient interface {
	// CurrentHeight returns the chain tip as seen by the node
	CurrentHeight(ctx context.Context) (uint64, error)

	// BlockTimestamp returns the timestamp of a block
	BlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)

	// Events returns the decoded events of one kind emitted by the DAO contract in [fromBlock, toBlock],
	// ordered by block number then log index
	Events(ctx context.Context, kind domain.EventKind, fromBlock, toBlock uint64) ([]domain.Event, error)

	// ForgetTimestampsThrough releases cached timestamps for blocks at or below blockNumber
	ForgetTimestampsThrough(blockNumber uint64)

	// Close closes the connection
	Close()
}

// Config holds the contract binding of a ChainClient
type Config struct {
	ContractAddress common.Address
	ABI             abi.ABI
	Retry           RetryConfig
}

type daoClient struct {
	client   adapter.EthClient
	blocks   block.BlockProvider
	contract common.Address
	events   map[domain.EventKind]abi.Event
	retry    RetryConfig
}

// NewChainClient binds a ChainClient to the DAO contract described by cfg
func NewChainClient(cfg Config, client adapter.EthClient, blocks block.BlockProvider) (ChainClient, error) {
	if err := validateABI(cfg.ABI); err != nil {
		return nil, err
	}

	events := make(map[domain.EventKind]abi.Event, len(domain.EventKinds))
	for _, kind := range domain.EventKinds {
		events[kind] = cfg.ABI.Events[string(kind)]
	}

	return &daoClient{
		client:   client,
		blocks:   blocks,
		contract: cfg.ContractAddress,
		events:   events,
		retry:    cfg.Retry,
	}, nil
}

func (c *daoClient) CurrentHeight(ctx context.Context) (uint64, error) {
	return c.blocks.GetLatestBlock(ctx)
}

func (c *daoClient) BlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	return c.blocks.GetBlockTimestamp(ctx, blockNumber)
}

func (c *daoClient) ForgetTimestampsThrough(blockNumber uint64) {
	c.blocks.Evict(blockNumber)
}

func (c *daoClient) Events(ctx context.Context, kind domain.EventKind, fromBlock, toBlock uint64) ([]domain.Event, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEventKind, kind)
	}
	// validateABI guarantees every valid kind is bound
	event := c.events[kind]
	if fromBlock > toBlock {
		return nil, nil
	}

	logs, err := c.filterLogs(ctx, event.ID, fromBlock, toBlock)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s logs for range %d-%d: %w", kind, fromBlock, toBlock, err)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber < logs[j].BlockNumber
		}
		return logs[i].Index < logs[j].Index
	})

	decoded := make([]domain.Event, 0, len(logs))
	for _, vLog := range logs {
		if vLog.Removed {
			continue
		}
		ev, err := decodeLog(kind, event, vLog)
		if err != nil {
			return nil, err
		}
		decoded = append(decoded, ev)
	}

	return decoded, nil
}

// filterLogs walks [fromBlock, toBlock] and halves the span whenever the node
// refuses a query for returning too many results.
func (c *daoClient) filterLogs(ctx context.Context, topic common.Hash, fromBlock, toBlock uint64) ([]types.Log, error) {
	var all []types.Log
	span := toBlock - fromBlock + 1
	current := fromBlock

	for current <= toBlock {
		end := toBlock
		if span > 0 && current+span-1 < toBlock {
			end = current + span - 1
		}

		query := ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(current),
			ToBlock:   new(big.Int).SetUint64(end),
			Addresses: []common.Address{c.contract},
			Topics:    [][]common.Hash{{topic}},
		}

		logs, err := withRetry(ctx, c.retry, "eth_getLogs", func(ctx context.Context) ([]types.Log, error) {
			logs, err := c.client.FilterLogs(ctx, query)
			if isTooManyResultsError(err) {
				return nil, backoff.Permanent(err)
			}
			return logs, err
		})
		if err == nil {
			all = append(all, logs...)
			current = end + 1
			continue
		}

		if !isTooManyResultsError(err) || end == current {
			return nil, err
		}

		span = (end - current + 1) / 2
		logger.WarnCtx(ctx, "Too many results, reducing log query span",
			zap.Uint64("from_block", current),
			zap.Uint64("to_block", end),
			zap.Uint64("new_span", span))
	}

	return all, nil
}

// isTooManyResultsError matches the range and result-size limits of common providers
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "query returned more than") ||
		strings.Contains(msg, "too many results") ||
		strings.Contains(msg, "block range is too wide") ||
		strings.Contains(msg, "block range too large") ||
		strings.Contains(msg, "exceeded maximum") ||
		strings.Contains(msg, "query timeout exceeded")
}

// decodeLog turns a raw log into the typed event of kind, reading arguments by position
func decodeLog(kind domain.EventKind, event abi.Event, vLog types.Log) (domain.Event, error) {
	if len(vLog.Topics) == 0 || vLog.Topics[0] != event.ID {
		return nil, malformed(kind, vLog, errors.New("topic does not match event signature"))
	}

	values := make(map[string]interface{}, len(event.Inputs))
	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if err := abi.ParseTopicsIntoMap(values, indexed, vLog.Topics[1:]); err != nil {
		return nil, malformed(kind, vLog, err)
	}
	if err := event.Inputs.UnpackIntoMap(values, vLog.Data); err != nil {
		return nil, malformed(kind, vLog, err)
	}

	args := make([]interface{}, len(event.Inputs))
	for i, input := range event.Inputs {
		args[i] = values[input.Name]
	}

	meta := domain.EventMeta{
		BlockNumber: vLog.BlockNumber,
		LogIndex:    vLog.Index,
		TxHash:      vLog.TxHash.Hex(),
		BlockHash:   vLog.BlockHash.Hex(),
	}

	var (
		decoded domain.Event
		ok      bool
	)
	switch kind {
	case domain.EventKindProposalCreated:
		ev := &domain.ProposalCreatedEvent{EventMeta: meta}
		ev.ProposalID, ok = args[0].(*big.Int)
		if ok {
			ev.Creator, ok = addressArg(args[1])
		}
		if ok {
			ev.Description, ok = args[2].(string)
		}
		decoded = ev

	case domain.EventKindVoted:
		ev := &domain.VotedEvent{EventMeta: meta}
		ev.ProposalID, ok = args[0].(*big.Int)
		if ok {
			ev.Voter, ok = addressArg(args[1])
		}
		if ok {
			ev.Support, ok = args[2].(bool)
		}
		if ok {
			ev.Amount, ok = args[3].(*big.Int)
		}
		decoded = ev

	case domain.EventKindProposalExecuted:
		ev := &domain.ProposalExecutedEvent{EventMeta: meta}
		ev.ProposalID, ok = args[0].(*big.Int)
		if ok {
			ev.Executor, ok = addressArg(args[1])
		}
		if ok {
			ev.Rewarded, ok = args[2].(bool)
		}
		decoded = ev

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEventKind, kind)
	}

	if !ok || decoded.ProposalNumber() == nil {
		return nil, malformed(kind, vLog, errors.New("unexpected argument types"))
	}

	return decoded, nil
}

func addressArg(v interface{}) (string, bool) {
	addr, ok := v.(common.Address)
	if !ok {
		return "", false
	}
	return addr.Hex(), true
}

func malformed(kind domain.EventKind, vLog types.Log, cause error) error {
	return fmt.Errorf("%w: %s at block %d log %d: %v", domain.ErrMalformedEvent, kind, vLog.BlockNumber, vLog.Index, cause)
}

func (c *daoClient) Close() {
	c.client.Close()
}
