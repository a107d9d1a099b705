package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/dao-indexer/internal/store/schema"
)

// DefaultCheckpoint is the value of a checkpoint that was never written
const DefaultCheckpoint uint64 = 1

// GetCheckpoint retrieves the last processed block number
func (s *pgStore) GetCheckpoint(ctx context.Context) (uint64, error) {
	var cp schema.Checkpoint
	err := s.db.WithContext(ctx).Where("id = ?", schema.CheckpointID).First(&cp).Error
	if err == nil {
		return cp.LastProcessedBlock, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	cp = schema.Checkpoint{ID: schema.CheckpointID, LastProcessedBlock: DefaultCheckpoint}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&cp).Error
	if err != nil {
		return 0, fmt.Errorf("failed to create checkpoint: %w", err)
	}

	// Another writer may have won the insert
	if err := s.db.WithContext(ctx).Where("id = ?", schema.CheckpointID).First(&cp).Error; err != nil {
		return 0, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	return cp.LastProcessedBlock, nil
}

// PeekCheckpoint reads the checkpoint without writing, for readers that must not own the row
func (s *pgStore) PeekCheckpoint(ctx context.Context) (uint64, error) {
	var cp schema.Checkpoint
	err := s.db.WithContext(ctx).Where("id = ?", schema.CheckpointID).First(&cp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DefaultCheckpoint, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get checkpoint: %w", err)
	}

	return cp.LastProcessedBlock, nil
}

// SetCheckpoint stores the last processed block number
func (s *pgStore) SetCheckpoint(ctx context.Context, blockNumber uint64) error {
	cp := schema.Checkpoint{ID: schema.CheckpointID, LastProcessedBlock: blockNumber}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_processed_block", "updated_at"}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "checkpoints.last_processed_block <= excluded.last_processed_block"},
			}},
		}).
		Create(&cp).Error
	if err != nil {
		return fmt.Errorf("failed to set checkpoint: %w", err)
	}

	return nil
}
