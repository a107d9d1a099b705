package schema

import "time"

// Proposal represents the proposals table - one row per ProposalCreated event
type Proposal struct {
	// ID is the contract-assigned proposal id (stored as string to support up to 78 digits)
	ID string `gorm:"column:id;primaryKey;type:numeric(78,0)"`
	// Creator is the address that opened the proposal
	Creator string `gorm:"column:creator;not null;type:text"`
	// Description is the free text attached to the proposal
	Description string `gorm:"column:description;not null;type:text"`
	// CreatedAt is the timestamp of the block that emitted ProposalCreated
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime:false"`
	// IsExecuted flips to true on ProposalExecuted
	IsExecuted bool `gorm:"column:is_executed;not null;default:false"`
	// ExecutedAt is the timestamp of the block that emitted ProposalExecuted
	ExecutedAt *time.Time `gorm:"column:executed_at"`
	// VoteCountFor is the running sum of supporting vote amounts
	VoteCountFor string `gorm:"column:vote_count_for;not null;type:numeric(78,0);default:0"`
	// VoteCountAgainst is the running sum of rejecting vote amounts
	VoteCountAgainst string `gorm:"column:vote_count_against;not null;type:numeric(78,0);default:0"`
	// CreatedBlock and CreatedLogIndex locate the creating log, used to tell replays from id reuse
	CreatedBlock    uint64 `gorm:"column:created_block;not null"`
	CreatedLogIndex uint   `gorm:"column:created_log_index;not null"`
	// CreatedTxHash is the transaction that created the proposal
	CreatedTxHash string `gorm:"column:created_tx_hash;not null;type:text"`
	// IndexedAt is the timestamp when this record was first written
	IndexedAt time.Time `gorm:"column:indexed_at;not null;autoCreateTime"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Proposal model
func (Proposal) TableName() string {
	return "proposals"
}
