package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Vote represents the votes table - append-only, one row per Voted event
type Vote struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProposalID is the proposal voted on; it may reference a proposal that was never created
	ProposalID string `gorm:"column:proposal_id;not null;type:numeric(78,0);index:idx_votes_proposal_id"`
	// Voter is the voting address
	Voter string `gorm:"column:voter;not null;type:text"`
	// Choice is true for support, false for reject
	Choice bool `gorm:"column:choice;not null"`
	// Amount is the vote weight (stored as string to support up to 78 digits)
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// VotedAt is the timestamp of the block that emitted Voted
	VotedAt time.Time `gorm:"column:voted_at;not null"`
	// BlockNumber and LogIndex identify the log and de-duplicate replays
	BlockNumber uint64 `gorm:"column:block_number;not null;uniqueIndex:idx_votes_block_log"`
	LogIndex    uint   `gorm:"column:log_index;not null;uniqueIndex:idx_votes_block_log"`
	// TxHash is the transaction hash of the vote
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// Raw is the decoded event as JSON
	Raw datatypes.JSON `gorm:"column:raw"`
	// CreatedAt is the timestamp when this record was indexed
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the Vote model
func (Vote) TableName() string {
	return "votes"
}
