package domain

import "math/big"

// EventKind names one of the governance events emitted by the DAO contract
type EventKind string

const (
	EventKindProposalCreated  EventKind = "ProposalCreated"
	EventKindVoted            EventKind = "Voted"
	EventKindProposalExecuted EventKind = "ProposalExecuted"
)

// EventKinds lists every kind in projection order.
// Creation must come first so votes and executions in the same range find their proposal.
var EventKinds = []EventKind{
	EventKindProposalCreated,
	EventKindVoted,
	EventKindProposalExecuted,
}

// Valid reports whether k is one of the tracked kinds
func (k EventKind) Valid() bool {
	switch k {
	case EventKindProposalCreated, EventKindVoted, EventKindProposalExecuted:
		return true
	}
	return false
}

// EventMeta locates a decoded log on chain
type EventMeta struct {
	BlockNumber uint64 `json:"block_number"`
	LogIndex    uint   `json:"log_index"`
	TxHash      string `json:"tx_hash"`
	BlockHash   string `json:"block_hash,omitempty"`
}

// Event is a decoded governance event
type Event interface {
	Kind() EventKind
	Meta() EventMeta
	// ProposalNumber is the contract-assigned proposal id the event refers to
	ProposalNumber() *big.Int
}

// ProposalCreatedEvent is ProposalCreated(proposalId, creator, description)
type ProposalCreatedEvent struct {
	EventMeta
	ProposalID  *big.Int `json:"proposal_id"`
	Creator     string   `json:"creator"`
	Description string   `json:"description"`
}

func (e *ProposalCreatedEvent) Kind() EventKind          { return EventKindProposalCreated }
func (e *ProposalCreatedEvent) Meta() EventMeta          { return e.EventMeta }
func (e *ProposalCreatedEvent) ProposalNumber() *big.Int { return e.ProposalID }

// VotedEvent is Voted(proposalId, voter, vote, amount)
type VotedEvent struct {
	EventMeta
	ProposalID *big.Int `json:"proposal_id"`
	Voter      string   `json:"voter"`
	// Support is true for a vote in favour, false for a vote against
	Support bool     `json:"support"`
	Amount  *big.Int `json:"amount"`
}

func (e *VotedEvent) Kind() EventKind          { return EventKindVoted }
func (e *VotedEvent) Meta() EventMeta          { return e.EventMeta }
func (e *VotedEvent) ProposalNumber() *big.Int { return e.ProposalID }

// ProposalExecutedEvent is ProposalExecuted(proposalId, executor, rewarded)
type ProposalExecutedEvent struct {
	EventMeta
	ProposalID *big.Int `json:"proposal_id"`
	Executor   string   `json:"executor"`
	Rewarded   bool     `json:"rewarded"`
}

func (e *ProposalExecutedEvent) Kind() EventKind          { return EventKindProposalExecuted }
func (e *ProposalExecutedEvent) Meta() EventMeta          { return e.EventMeta }
func (e *ProposalExecutedEvent) ProposalNumber() *big.Int { return e.ProposalID }

// BlockRange is an inclusive block interval
type BlockRange struct {
	From uint64
	To   uint64
}
