package executor

import (
	"context"
	"fmt"

	"github.com/feral-file/dao-indexer/internal/api/shared/dto"
	apierrors "github.com/feral-file/dao-indexer/internal/api/shared/errors"
	"github.com/feral-file/dao-indexer/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ListProposals returns every proposal with its votes, ordered by id
	ListProposals(ctx context.Context) ([]dto.ProposalResponse, error)

	// GetProposal returns a proposal with its votes and executions, nil when absent
	GetProposal(ctx context.Context, id string) (*dto.ProposalResponse, error)

	// GetProposalVotes returns the votes recorded for a proposal id
	GetProposalVotes(ctx context.Context, id string) ([]dto.VoteResponse, error)

	// GetCheckpoint returns the last block the indexer has fully processed
	GetCheckpoint(ctx context.Context) (*dto.CheckpointResponse, error)
}

type executor struct {
	store store.Store
}

func NewExecutor(store store.Store) Executor {
	return &executor{store: store}
}

func (e *executor) ListProposals(ctx context.Context) ([]dto.ProposalResponse, error) {
	proposals, err := e.store.ListProposals(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to list proposals: %v", err))
	}

	if len(proposals) == 0 {
		return []dto.ProposalResponse{}, nil
	}

	ids := make([]string, len(proposals))
	for i, p := range proposals {
		ids[i] = p.ID
	}

	// One query for all votes instead of one per proposal
	votesByProposal, err := e.store.GetVotesByProposalIDs(ctx, ids)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get votes: %v", err))
	}

	out := make([]dto.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, dto.MapProposalToDTO(p, votesByProposal[p.ID]))
	}
	return out, nil
}

func (e *executor) GetProposal(ctx context.Context, id string) (*dto.ProposalResponse, error) {
	proposal, err := e.store.GetProposal(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get proposal: %v", err))
	}

	if proposal == nil {
		return nil, nil
	}

	votes, err := e.store.GetVotesByProposalID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get votes: %v", err))
	}

	executions, err := e.store.GetExecutionsByProposalID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get executions: %v", err))
	}

	resp := dto.MapProposalToDTO(*proposal, votes)
	resp.Executions = dto.MapExecutionsToDTO(executions)
	return &resp, nil
}

func (e *executor) GetProposalVotes(ctx context.Context, id string) ([]dto.VoteResponse, error) {
	votes, err := e.store.GetVotesByProposalID(ctx, id)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get votes: %v", err))
	}
	return dto.MapVotesToDTO(votes), nil
}

func (e *executor) GetCheckpoint(ctx context.Context) (*dto.CheckpointResponse, error) {
	block, err := e.store.PeekCheckpoint(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get checkpoint: %v", err))
	}
	return &dto.CheckpointResponse{LastProcessedBlock: block}, nil
}
