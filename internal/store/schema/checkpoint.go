package schema

import "time"

// CheckpointID is the fixed identity of the single checkpoint row
const CheckpointID = 1

// Checkpoint represents the checkpoints table - the highest block whose events are durably projected
type Checkpoint struct {
	// ID is always CheckpointID
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// LastProcessedBlock is the highest fully applied block number
	LastProcessedBlock uint64 `gorm:"column:last_processed_block;not null"`
	// UpdatedAt is the timestamp when the checkpoint last moved
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for the Checkpoint model
func (Checkpoint) TableName() string {
	return "checkpoints"
}
