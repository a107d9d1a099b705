package dto

import (
	"time"

	"github.com/feral-file/dao-indexer/internal/store/schema"
)

// ProposalResponse is a proposal together with the votes cast on it
type ProposalResponse struct {
	ID               string              `json:"id"`
	Creator          string              `json:"creator"`
	Description      string              `json:"description"`
	CreatedAt        time.Time           `json:"created_at"`
	IsExecuted       bool                `json:"is_executed"`
	ExecutedAt       *time.Time          `json:"executed_at"`
	VoteCountFor     string              `json:"vote_count_for"`
	VoteCountAgainst string              `json:"vote_count_against"`
	Votes            []VoteResponse      `json:"votes"`
	Executions       []ExecutionResponse `json:"executions,omitempty"`
}

// VoteResponse is a single recorded vote
type VoteResponse struct {
	Voter   string    `json:"voter"`
	Vote    bool      `json:"vote"`
	Amount  string    `json:"amount"`
	VotedAt time.Time `json:"voted_at"`
}

// ExecutionResponse is a single ProposalExecuted record
type ExecutionResponse struct {
	Executor    string    `json:"executor"`
	Rewarded    bool      `json:"rewarded"`
	ExecutedAt  time.Time `json:"executed_at"`
	BlockNumber uint64    `json:"block_number"`
	TxHash      string    `json:"tx_hash"`
}

// CheckpointResponse reports ingestion progress
type CheckpointResponse struct {
	LastProcessedBlock uint64 `json:"last_processed_block"`
}

// MapProposalToDTO maps a stored proposal and its votes to the response shape
func MapProposalToDTO(p schema.Proposal, votes []schema.Vote) ProposalResponse {
	resp := ProposalResponse{
		ID:               p.ID,
		Creator:          p.Creator,
		Description:      p.Description,
		CreatedAt:        p.CreatedAt.UTC(),
		IsExecuted:       p.IsExecuted,
		VoteCountFor:     p.VoteCountFor,
		VoteCountAgainst: p.VoteCountAgainst,
		Votes:            MapVotesToDTO(votes),
	}
	if p.ExecutedAt != nil {
		executedAt := p.ExecutedAt.UTC()
		resp.ExecutedAt = &executedAt
	}
	return resp
}

// MapVotesToDTO never returns nil so an empty list encodes as []
func MapVotesToDTO(votes []schema.Vote) []VoteResponse {
	out := make([]VoteResponse, 0, len(votes))
	for _, v := range votes {
		out = append(out, VoteResponse{
			Voter:   v.Voter,
			Vote:    v.Choice,
			Amount:  v.Amount,
			VotedAt: v.VotedAt.UTC(),
		})
	}
	return out
}

func MapExecutionsToDTO(executions []schema.Execution) []ExecutionResponse {
	out := make([]ExecutionResponse, 0, len(executions))
	for _, e := range executions {
		out = append(out, ExecutionResponse{
			Executor:    e.Executor,
			Rewarded:    e.Rewarded,
			ExecutedAt:  e.ExecutedAt.UTC(),
			BlockNumber: e.BlockNumber,
			TxHash:      e.TxHash,
		})
	}
	return out
}
