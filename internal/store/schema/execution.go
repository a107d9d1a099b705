package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Execution represents the executions table - append-only, one row per ProposalExecuted event
type Execution struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	ProposalID string    `gorm:"column:proposal_id;not null;type:numeric(78,0);index:idx_executions_proposal_id"`
	Executor   string    `gorm:"column:executor;not null;type:text"`
	Rewarded   bool      `gorm:"column:rewarded;not null"`
	ExecutedAt time.Time `gorm:"column:executed_at;not null"`
	// BlockNumber and LogIndex identify the log and de-duplicate replays
	BlockNumber uint64         `gorm:"column:block_number;not null;uniqueIndex:idx_executions_block_log"`
	LogIndex    uint           `gorm:"column:log_index;not null;uniqueIndex:idx_executions_block_log"`
	TxHash      string         `gorm:"column:tx_hash;not null;type:text"`
	Raw         datatypes.JSON `gorm:"column:raw"`
	CreatedAt   time.Time      `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the Execution model
func (Execution) TableName() string {
	return "executions"
}
