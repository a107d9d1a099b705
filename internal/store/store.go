package store

import (
	"context"
	"math/big"
	"time"

	"github.com/feral-file/dao-indexer/internal/store/schema"
)

// WriteOutcome tells the caller what an idempotent domain write actually did
type WriteOutcome string

const (
	// WriteApplied means a new row was inserted and its side effects applied
	WriteApplied WriteOutcome = "applied"
	// WriteDuplicate means the same log was already recorded, nothing changed
	WriteDuplicate WriteOutcome = "duplicate"
	// WriteOrphaned means the row was inserted but the referenced proposal does not exist
	WriteOrphaned WriteOutcome = "orphaned"
)

// Tally is the pair of running vote sums of a proposal
type Tally struct {
	For     *big.Int
	Against *big.Int
}

// TallyFunc computes the next tally of a proposal from its current one
type TallyFunc func(current Tally) (Tally, error)

// CreateProposalInput contains the data needed to create a proposal
type CreateProposalInput struct {
	ID          string
	Creator     string
	Description string
	CreatedAt   time.Time
	BlockNumber uint64
	LogIndex    uint
	TxHash      string
}

// RecordVoteInput contains the data needed to record a vote
type RecordVoteInput struct {
	ProposalID  string
	Voter       string
	Choice      bool
	Amount      string
	VotedAt     time.Time
	BlockNumber uint64
	LogIndex    uint
	TxHash      string
	Raw         []byte
}

// RecordExecutionInput contains the data needed to record an execution
type RecordExecutionInput struct {
	ProposalID  string
	Executor    string
	Rewarded    bool
	ExecutedAt  time.Time
	BlockNumber uint64
	LogIndex    uint
	TxHash      string
	Raw         []byte
}

// CheckpointStore persists the single ingestion checkpoint
type CheckpointStore interface {
	// GetCheckpoint returns the last processed block, creating the row with 1 when absent
	GetCheckpoint(ctx context.Context) (uint64, error)
	// SetCheckpoint upserts the last processed block; a value lower than the stored one is ignored
	SetCheckpoint(ctx context.Context, blockNumber uint64) error
}

// DomainStore applies projected events. Every write is keyed by the originating log so replays are no-ops.
type DomainStore interface {
	// CreateProposal inserts a proposal unless one with the same id exists.
	// Reusing an id from a different log returns domain.ErrProposalAlreadyExists.
	CreateProposal(ctx context.Context, input CreateProposalInput) (WriteOutcome, error)
	// RecordVote inserts a vote and, when the row is new and the proposal exists, applies tally in the same transaction
	RecordVote(ctx context.Context, input RecordVoteInput, tally TallyFunc) (WriteOutcome, error)
	// RecordExecution inserts an execution and, when the row is new, marks the proposal executed
	RecordExecution(ctx context.Context, input RecordExecutionInput) (WriteOutcome, error)
}

// QueryStore serves the read-only API
type QueryStore interface {
	// PeekCheckpoint returns the last processed block without creating the row; DefaultCheckpoint when absent
	PeekCheckpoint(ctx context.Context) (uint64, error)
	// ListProposals returns every proposal ordered by id
	ListProposals(ctx context.Context) ([]schema.Proposal, error)
	// GetProposal returns a proposal by id, nil when absent
	GetProposal(ctx context.Context, id string) (*schema.Proposal, error)
	// GetVotesByProposalID returns the votes of a proposal ordered by block and log index
	GetVotesByProposalID(ctx context.Context, proposalID string) ([]schema.Vote, error)
	// GetVotesByProposalIDs returns votes grouped by proposal id
	GetVotesByProposalIDs(ctx context.Context, proposalIDs []string) (map[string][]schema.Vote, error)
	// GetExecutionsByProposalID returns the executions of a proposal ordered by block and log index
	GetExecutionsByProposalID(ctx context.Context, proposalID string) ([]schema.Execution, error)
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,CheckpointStore=MockCheckpointStore,DomainStore=MockDomainStore,QueryStore=MockQueryStore
type Store interface {
	CheckpointStore
	DomainStore
	QueryStore
}
