package store

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/dao-indexer/internal/domain"
	"github.com/feral-file/dao-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables backing the store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&schema.Checkpoint{},
		&schema.Proposal{},
		&schema.Vote{},
		&schema.Execution{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 1 hour
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = time.Hour
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateProposal inserts a proposal, ignoring a replay of the same creating log
func (s *pgStore) CreateProposal(ctx context.Context, input CreateProposalInput) (WriteOutcome, error) {
	proposal := schema.Proposal{
		ID:               input.ID,
		Creator:          input.Creator,
		Description:      input.Description,
		CreatedAt:        input.CreatedAt,
		VoteCountFor:     "0",
		VoteCountAgainst: "0",
		CreatedBlock:     input.BlockNumber,
		CreatedLogIndex:  input.LogIndex,
		CreatedTxHash:    input.TxHash,
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&proposal)
	if result.Error != nil {
		return "", fmt.Errorf("failed to create proposal: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return WriteApplied, nil
	}

	var existing schema.Proposal
	if err := s.db.WithContext(ctx).Where("id = ?", input.ID).First(&existing).Error; err != nil {
		return "", fmt.Errorf("failed to get existing proposal: %w", err)
	}
	if existing.CreatedBlock == input.BlockNumber && existing.CreatedLogIndex == input.LogIndex {
		return WriteDuplicate, nil
	}

	return "", fmt.Errorf("%w: id %s created at block %d log %d",
		domain.ErrProposalAlreadyExists, input.ID, existing.CreatedBlock, existing.CreatedLogIndex)
}

// RecordVote inserts a vote and applies the tally to its proposal in one transaction
func (s *pgStore) RecordVote(ctx context.Context, input RecordVoteInput, tally TallyFunc) (WriteOutcome, error) {
	outcome := WriteApplied
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vote := schema.Vote{
			ProposalID:  input.ProposalID,
			Voter:       input.Voter,
			Choice:      input.Choice,
			Amount:      input.Amount,
			VotedAt:     input.VotedAt,
			BlockNumber: input.BlockNumber,
			LogIndex:    input.LogIndex,
			TxHash:      input.TxHash,
			Raw:         rawJSON(input.Raw),
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "block_number"}, {Name: "log_index"}},
			DoNothing: true,
		}).Create(&vote)
		if result.Error != nil {
			return fmt.Errorf("failed to insert vote: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			outcome = WriteDuplicate
			return nil
		}

		var proposal schema.Proposal
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.ProposalID).
			First(&proposal).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			outcome = WriteOrphaned
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get proposal: %w", err)
		}

		current, err := parseTally(proposal)
		if err != nil {
			return err
		}
		next, err := tally(current)
		if err != nil {
			return err
		}

		err = tx.Model(&schema.Proposal{}).
			Where("id = ?", input.ProposalID).
			Updates(map[string]interface{}{
				"vote_count_for":     next.For.String(),
				"vote_count_against": next.Against.String(),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update proposal tally: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

// RecordExecution inserts an execution and marks its proposal executed in one transaction
func (s *pgStore) RecordExecution(ctx context.Context, input RecordExecutionInput) (WriteOutcome, error) {
	outcome := WriteApplied
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		execution := schema.Execution{
			ProposalID:  input.ProposalID,
			Executor:    input.Executor,
			Rewarded:    input.Rewarded,
			ExecutedAt:  input.ExecutedAt,
			BlockNumber: input.BlockNumber,
			LogIndex:    input.LogIndex,
			TxHash:      input.TxHash,
			Raw:         rawJSON(input.Raw),
		}

		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "block_number"}, {Name: "log_index"}},
			DoNothing: true,
		}).Create(&execution)
		if result.Error != nil {
			return fmt.Errorf("failed to insert execution: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			outcome = WriteDuplicate
			return nil
		}

		executedAt := input.ExecutedAt
		result = tx.Model(&schema.Proposal{}).
			Where("id = ?", input.ProposalID).
			Updates(map[string]interface{}{
				"is_executed": true,
				"executed_at": &executedAt,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to mark proposal executed: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			outcome = WriteOrphaned
		}

		return nil
	})
	if err != nil {
		return "", err
	}

	return outcome, nil
}

// ListProposals returns every proposal ordered by id
func (s *pgStore) ListProposals(ctx context.Context) ([]schema.Proposal, error) {
	var proposals []schema.Proposal
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&proposals).Error; err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}
	return proposals, nil
}

// GetProposal retrieves a proposal by its id
func (s *pgStore) GetProposal(ctx context.Context, id string) (*schema.Proposal, error) {
	var proposal schema.Proposal
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&proposal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return &proposal, nil
}

// GetVotesByProposalID retrieves the votes of a proposal
func (s *pgStore) GetVotesByProposalID(ctx context.Context, proposalID string) ([]schema.Vote, error) {
	var votes []schema.Vote
	err := s.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("block_number ASC, log_index ASC").
		Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}
	return votes, nil
}

// GetVotesByProposalIDs retrieves votes for several proposals at once
func (s *pgStore) GetVotesByProposalIDs(ctx context.Context, proposalIDs []string) (map[string][]schema.Vote, error) {
	grouped := make(map[string][]schema.Vote, len(proposalIDs))
	if len(proposalIDs) == 0 {
		return grouped, nil
	}

	var votes []schema.Vote
	err := s.db.WithContext(ctx).
		Where("proposal_id IN ?", proposalIDs).
		Order("block_number ASC, log_index ASC").
		Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get votes by proposal ids: %w", err)
	}

	for _, v := range votes {
		grouped[v.ProposalID] = append(grouped[v.ProposalID], v)
	}
	return grouped, nil
}

// GetExecutionsByProposalID retrieves the executions of a proposal
func (s *pgStore) GetExecutionsByProposalID(ctx context.Context, proposalID string) ([]schema.Execution, error) {
	var executions []schema.Execution
	err := s.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("block_number ASC, log_index ASC").
		Find(&executions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get executions: %w", err)
	}
	return executions, nil
}

func parseTally(p schema.Proposal) (Tally, error) {
	votesFor, ok := new(big.Int).SetString(p.VoteCountFor, 10)
	if !ok {
		return Tally{}, fmt.Errorf("proposal %s has invalid vote_count_for %q", p.ID, p.VoteCountFor)
	}
	votesAgainst, ok := new(big.Int).SetString(p.VoteCountAgainst, 10)
	if !ok {
		return Tally{}, fmt.Errorf("proposal %s has invalid vote_count_against %q", p.ID, p.VoteCountAgainst)
	}
	return Tally{For: votesFor, Against: votesAgainst}, nil
}

func rawJSON(raw []byte) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}
