package ingest_test

import (
	"math/big"
	"os"
	"testing"
	"time"

	"github.com/feral-file/dao-indexer/internal/domain"
	"github.com/feral-file/dao-indexer/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var baseTime = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func blockTime(n uint64) time.Time {
	return baseTime.Add(time.Duration(n) * 12 * time.Second)
}

func meta(block uint64, index uint) domain.EventMeta {
	return domain.EventMeta{BlockNumber: block, LogIndex: index, TxHash: "0xtx"}
}

func created(id int64, block uint64, index uint) *domain.ProposalCreatedEvent {
	return &domain.ProposalCreatedEvent{
		EventMeta:   meta(block, index),
		ProposalID:  big.NewInt(id),
		Creator:     "0x1111111111111111111111111111111111111111",
		Description: "proposal",
	}
}

func voted(id int64, block uint64, index uint, support bool, amount *big.Int) *domain.VotedEvent {
	return &domain.VotedEvent{
		EventMeta:  meta(block, index),
		ProposalID: big.NewInt(id),
		Voter:      "0x2222222222222222222222222222222222222222",
		Support:    support,
		Amount:     amount,
	}
}

func executed(id int64, block uint64, index uint) *domain.ProposalExecutedEvent {
	return &domain.ProposalExecutedEvent{
		EventMeta:  meta(block, index),
		ProposalID: big.NewInt(id),
		Executor:   "0x3333333333333333333333333333333333333333",
		Rewarded:   true,
	}
}
