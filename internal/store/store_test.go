package store

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/dao-indexer/internal/domain"
	"github.com/feral-file/dao-indexer/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var testBlockTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func buildTestProposal(id string, block uint64, logIndex uint) CreateProposalInput {
	return CreateProposalInput{
		ID:          id,
		Creator:     "0x1234567890123456789012345678901234567890",
		Description: "proposal " + id,
		CreatedAt:   testBlockTime,
		BlockNumber: block,
		LogIndex:    logIndex,
		TxHash:      "0xcreate",
	}
}

func buildTestVote(proposalID string, choice bool, amount string, block uint64, logIndex uint) RecordVoteInput {
	return RecordVoteInput{
		ProposalID:  proposalID,
		Voter:       "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd",
		Choice:      choice,
		Amount:      amount,
		VotedAt:     testBlockTime.Add(time.Minute),
		BlockNumber: block,
		LogIndex:    logIndex,
		TxHash:      "0xvote",
		Raw:         []byte(`{"proposal_id":` + proposalID + `}`),
	}
}

func buildTestExecution(proposalID string, block uint64, logIndex uint) RecordExecutionInput {
	return RecordExecutionInput{
		ProposalID:  proposalID,
		Executor:    "0x9999999999999999999999999999999999999999",
		Rewarded:    true,
		ExecutedAt:  testBlockTime.Add(time.Hour),
		BlockNumber: block,
		LogIndex:    logIndex,
		TxHash:      "0xexec",
	}
}

// addTally is the tally function used by the projector, inlined for store tests
func addTally(choice bool, amount int64) TallyFunc {
	return func(current Tally) (Tally, error) {
		next := Tally{For: new(big.Int).Set(current.For), Against: new(big.Int).Set(current.Against)}
		if choice {
			next.For.Add(next.For, big.NewInt(amount))
		} else {
			next.Against.Add(next.Against, big.NewInt(amount))
		}
		return next, nil
	}
}

// =============================================================================
// Checkpoint
// =============================================================================

func testCheckpoint(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("defaults to 1 when never written", func(t *testing.T) {
		cp, err := store.GetCheckpoint(ctx)
		require.NoError(t, err)
		assert.Equal(t, DefaultCheckpoint, cp)

		// Reading again returns the persisted default
		cp, err = store.GetCheckpoint(ctx)
		require.NoError(t, err)
		assert.Equal(t, DefaultCheckpoint, cp)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, store.SetCheckpoint(ctx, 5))
		cp, err := store.GetCheckpoint(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(5), cp)

		require.NoError(t, store.SetCheckpoint(ctx, 10))
		cp, err = store.GetCheckpoint(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), cp)
	})

	t.Run("same value is idempotent", func(t *testing.T) {
		require.NoError(t, store.SetCheckpoint(ctx, 10))
		cp, err := store.GetCheckpoint(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), cp)
	})

	t.Run("never moves backwards", func(t *testing.T) {
		require.NoError(t, store.SetCheckpoint(ctx, 3))
		cp, err := store.GetCheckpoint(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), cp)
	})
}

func testCheckpointFirstWrite(t *testing.T, store Store) {
	ctx := context.Background()

	require.NoError(t, store.SetCheckpoint(ctx, 42))
	cp, err := store.GetCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cp)
}

func testPeekCheckpointDoesNotWrite(t *testing.T, store Store) {
	ctx := context.Background()

	cp, err := store.PeekCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultCheckpoint, cp)
	assert.Equal(t, int64(0), countCheckpointRows(t, store))

	require.NoError(t, store.SetCheckpoint(ctx, 9))
	cp, err = store.PeekCheckpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), cp)
	assert.Equal(t, int64(1), countCheckpointRows(t, store))
}

func countCheckpointRows(t *testing.T, store Store) int64 {
	var n int64
	require.NoError(t, store.(*pgStore).db.Model(&schema.Checkpoint{}).Count(&n).Error)
	return n
}

// =============================================================================
// Proposals
// =============================================================================

func testCreateProposal(t *testing.T, store Store) {
	ctx := context.Background()

	outcome, err := store.CreateProposal(ctx, buildTestProposal("1", 100, 0))
	require.NoError(t, err)
	assert.Equal(t, WriteApplied, outcome)

	p, err := store.GetProposal(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "proposal 1", p.Description)
	assert.Equal(t, "0", p.VoteCountFor)
	assert.Equal(t, "0", p.VoteCountAgainst)
	assert.False(t, p.IsExecuted)
	assert.Nil(t, p.ExecutedAt)
	assert.True(t, testBlockTime.Equal(p.CreatedAt))
	assert.Equal(t, uint64(100), p.CreatedBlock)

	t.Run("replay of the same log is a duplicate", func(t *testing.T) {
		outcome, err := store.CreateProposal(ctx, buildTestProposal("1", 100, 0))
		require.NoError(t, err)
		assert.Equal(t, WriteDuplicate, outcome)
	})

	t.Run("same id from another log is rejected", func(t *testing.T) {
		in := buildTestProposal("1", 200, 3)
		in.Description = "impostor"
		_, err := store.CreateProposal(ctx, in)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProposalAlreadyExists)

		p, err := store.GetProposal(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "proposal 1", p.Description)
	})
}

func testGetProposalNotFound(t *testing.T, store Store) {
	p, err := store.GetProposal(context.Background(), "404")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func testListProposals(t *testing.T, store Store) {
	ctx := context.Background()

	proposals, err := store.ListProposals(ctx)
	require.NoError(t, err)
	assert.Empty(t, proposals)

	for i, id := range []string{"10", "2", "7"} {
		_, err := store.CreateProposal(ctx, buildTestProposal(id, uint64(100+i), 0))
		require.NoError(t, err)
	}

	proposals, err = store.ListProposals(ctx)
	require.NoError(t, err)
	require.Len(t, proposals, 3)
	assert.Equal(t, "2", proposals[0].ID)
	assert.Equal(t, "7", proposals[1].ID)
	assert.Equal(t, "10", proposals[2].ID)
}

// =============================================================================
// Votes
// =============================================================================

func testRecordVote(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateProposal(ctx, buildTestProposal("1", 100, 0))
	require.NoError(t, err)

	outcome, err := store.RecordVote(ctx, buildTestVote("1", true, "40", 101, 0), addTally(true, 40))
	require.NoError(t, err)
	assert.Equal(t, WriteApplied, outcome)

	outcome, err = store.RecordVote(ctx, buildTestVote("1", false, "15", 101, 1), addTally(false, 15))
	require.NoError(t, err)
	assert.Equal(t, WriteApplied, outcome)

	outcome, err = store.RecordVote(ctx, buildTestVote("1", true, "2", 102, 0), addTally(true, 2))
	require.NoError(t, err)
	assert.Equal(t, WriteApplied, outcome)

	p, err := store.GetProposal(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "42", p.VoteCountFor)
	assert.Equal(t, "15", p.VoteCountAgainst)

	votes, err := store.GetVotesByProposalID(ctx, "1")
	require.NoError(t, err)
	require.Len(t, votes, 3)
	assert.Equal(t, "40", votes[0].Amount)
	assert.True(t, votes[0].Choice)
	assert.Equal(t, "15", votes[1].Amount)
	assert.False(t, votes[1].Choice)
	assert.Equal(t, uint64(102), votes[2].BlockNumber)
}

func testRecordVoteReplay(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateProposal(ctx, buildTestProposal("1", 100, 0))
	require.NoError(t, err)

	vote := buildTestVote("1", true, "40", 101, 0)
	outcome, err := store.RecordVote(ctx, vote, addTally(true, 40))
	require.NoError(t, err)
	assert.Equal(t, WriteApplied, outcome)

	called := false
	outcome, err = store.RecordVote(ctx, vote, func(current Tally) (Tally, error) {
		called = true
		return current, nil
	})
	require.NoError(t, err)
	assert.Equal(t, WriteDuplicate, outcome)
	assert.False(t, called, "tally must not run for a replayed vote")

	p, err := store.GetProposal(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "40", p.VoteCountFor)

	votes, err := store.GetVotesByProposalID(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, votes, 1)
}

func testRecordVoteUnknownProposal(t *testing.T, store Store) {
	ctx := context.Background()

	called := false
	outcome, err := store.RecordVote(ctx, buildTestVote("7", true, "5", 50, 0), func(current Tally) (Tally, error) {
		called = true
		return current, nil
	})
	require.NoError(t, err)
	assert.Equal(t, WriteOrphaned, outcome)
	assert.False(t, called)

	p, err := store.GetProposal(ctx, "7")
	require.NoError(t, err)
	assert.Nil(t, p)

	votes, err := store.GetVotesByProposalID(ctx, "7")
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, "7", votes[0].ProposalID)
}

func testGetVotesByProposalIDs(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateProposal(ctx, buildTestProposal("1", 100, 0))
	require.NoError(t, err)
	_, err = store.CreateProposal(ctx, buildTestProposal("2", 100, 1))
	require.NoError(t, err)

	_, err = store.RecordVote(ctx, buildTestVote("1", true, "1", 101, 0), addTally(true, 1))
	require.NoError(t, err)
	_, err = store.RecordVote(ctx, buildTestVote("2", false, "2", 101, 1), addTally(false, 2))
	require.NoError(t, err)
	_, err = store.RecordVote(ctx, buildTestVote("1", false, "3", 102, 0), addTally(false, 3))
	require.NoError(t, err)

	grouped, err := store.GetVotesByProposalIDs(ctx, []string{"1", "2", "3"})
	require.NoError(t, err)
	assert.Len(t, grouped["1"], 2)
	assert.Len(t, grouped["2"], 1)
	assert.Empty(t, grouped["3"])

	empty, err := store.GetVotesByProposalIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// =============================================================================
// Executions
// =============================================================================

func testRecordExecution(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.CreateProposal(ctx, buildTestProposal("1", 100, 0))
	require.NoError(t, err)

	exec := buildTestExecution("1", 150, 2)
	outcome, err := store.RecordExecution(ctx, exec)
	require.NoError(t, err)
	assert.Equal(t, WriteApplied, outcome)

	p, err := store.GetProposal(ctx, "1")
	require.NoError(t, err)
	assert.True(t, p.IsExecuted)
	require.NotNil(t, p.ExecutedAt)
	assert.True(t, exec.ExecutedAt.Equal(*p.ExecutedAt))

	outcome, err = store.RecordExecution(ctx, exec)
	require.NoError(t, err)
	assert.Equal(t, WriteDuplicate, outcome)

	executions, err := store.GetExecutionsByProposalID(ctx, "1")
	require.NoError(t, err)
	require.Len(t, executions, 1)
	assert.Equal(t, "0x9999999999999999999999999999999999999999", executions[0].Executor)
	assert.True(t, executions[0].Rewarded)
}

func testRecordExecutionUnknownProposal(t *testing.T, store Store) {
	ctx := context.Background()

	outcome, err := store.RecordExecution(ctx, buildTestExecution("9", 150, 0))
	require.NoError(t, err)
	assert.Equal(t, WriteOrphaned, outcome)

	executions, err := store.GetExecutionsByProposalID(ctx, "9")
	require.NoError(t, err)
	assert.Len(t, executions, 1)
}

// RunStoreTests runs the whole suite against a store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Checkpoint", testCheckpoint},
		{"CheckpointFirstWrite", testCheckpointFirstWrite},
		{"PeekCheckpointDoesNotWrite", testPeekCheckpointDoesNotWrite},
		{"CreateProposal", testCreateProposal},
		{"GetProposalNotFound", testGetProposalNotFound},
		{"ListProposals", testListProposals},
		{"RecordVote", testRecordVote},
		{"RecordVoteReplay", testRecordVoteReplay},
		{"RecordVoteUnknownProposal", testRecordVoteUnknownProposal},
		{"GetVotesByProposalIDs", testGetVotesByProposalIDs},
		{"RecordExecution", testRecordExecution},
		{"RecordExecutionUnknownProposal", testRecordExecutionUnknownProposal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			tt.fn(t, store)
		})
	}
}
