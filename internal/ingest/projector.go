package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/dao-indexer/internal/domain"
	"github.com/feral-file/dao-indexer/internal/logger"
	"github.com/feral-file/dao-indexer/internal/metrics"
	"github.com/feral-file/dao-indexer/internal/store"
)

// Projector applies decoded events to the domain store
//
//go:generate mockgen -source=projector.go -destination=../mocks/projector.go -package=mocks -mock_names=Projector=MockProjector
type Projector interface {
	// Project applies every event of batch in projection order.
	// An event rejected by a domain rule (duplicate id, unknown proposal, ErrInvalidEvent values)
	// is recorded in the report and skipped. Everything else, including ErrMalformedEvent, is
	// batch-level: the returned error means the remaining events were not applied.
	Project(ctx context.Context, batch *Batch) (*Report, error)
}

type projector struct {
	store store.DomainStore
}

// NewProjector creates a Projector writing to s
func NewProjector(s store.DomainStore) Projector {
	return &projector{store: s}
}

func (p *projector) Project(ctx context.Context, batch *Batch) (*Report, error) {
	report := NewReport(batch.Range)

	for _, ev := range batch.Ordered() {
		meta := ev.Meta()
		result := EventResult{
			Kind:        ev.Kind(),
			BlockNumber: meta.BlockNumber,
			LogIndex:    meta.LogIndex,
		}
		if id := ev.ProposalNumber(); id != nil {
			result.ProposalID = id.String()
		}

		status, err := p.apply(ctx, batch, ev)
		if err != nil && !isEventError(err) {
			return report, fmt.Errorf("failed to project %s at block %d log %d: %w",
				ev.Kind(), meta.BlockNumber, meta.LogIndex, err)
		}

		result.Status = status
		if err != nil {
			result.Status = EventFailed
			result.Err = err
			logger.ErrorCtx(ctx, err,
				zap.String("kind", string(result.Kind)),
				zap.String("proposal_id", result.ProposalID),
				zap.Uint64("block_number", result.BlockNumber),
				zap.Uint("log_index", result.LogIndex))
		}

		report.Add(result)
		metrics.EventsTotal.WithLabelValues(string(result.Kind), string(result.Status)).Inc()
	}

	return report, nil
}

// isEventError reports whether err is confined to one event and must not abort its siblings.
// ErrMalformedEvent is not one of them: a payload that cannot be decoded fails the whole range.
func isEventError(err error) bool {
	return errors.Is(err, domain.ErrProposalAlreadyExists) ||
		errors.Is(err, domain.ErrProposalNotFound) ||
		errors.Is(err, domain.ErrInvalidEvent) ||
		errors.Is(err, domain.ErrUnknownEventKind)
}

func (p *projector) apply(ctx context.Context, batch *Batch, ev domain.Event) (EventStatus, error) {
	ts, err := batch.timestampOf(ev)
	if err != nil {
		return EventFailed, err
	}
	if ev.ProposalNumber() == nil {
		return EventFailed, fmt.Errorf("%w: %s without proposal id", domain.ErrInvalidEvent, ev.Kind())
	}

	meta := ev.Meta()
	var outcome store.WriteOutcome

	switch e := ev.(type) {
	case *domain.ProposalCreatedEvent:
		outcome, err = p.store.CreateProposal(ctx, store.CreateProposalInput{
			ID:          e.ProposalID.String(),
			Creator:     e.Creator,
			Description: e.Description,
			CreatedAt:   ts,
			BlockNumber: meta.BlockNumber,
			LogIndex:    meta.LogIndex,
			TxHash:      meta.TxHash,
		})

	case *domain.VotedEvent:
		tally, terr := addVote(e.Support, e.Amount)
		if terr != nil {
			return EventFailed, terr
		}
		outcome, err = p.store.RecordVote(ctx, store.RecordVoteInput{
			ProposalID:  e.ProposalID.String(),
			Voter:       e.Voter,
			Choice:      e.Support,
			Amount:      e.Amount.String(),
			VotedAt:     ts,
			BlockNumber: meta.BlockNumber,
			LogIndex:    meta.LogIndex,
			TxHash:      meta.TxHash,
			Raw:         rawEvent(e),
		}, tally)

	case *domain.ProposalExecutedEvent:
		outcome, err = p.store.RecordExecution(ctx, store.RecordExecutionInput{
			ProposalID:  e.ProposalID.String(),
			Executor:    e.Executor,
			Rewarded:    e.Rewarded,
			ExecutedAt:  ts,
			BlockNumber: meta.BlockNumber,
			LogIndex:    meta.LogIndex,
			TxHash:      meta.TxHash,
			Raw:         rawEvent(e),
		})

	default:
		return EventFailed, fmt.Errorf("%w: %s", domain.ErrUnknownEventKind, ev.Kind())
	}
	if err != nil {
		return EventFailed, err
	}

	switch outcome {
	case store.WriteApplied:
		return EventApplied, nil
	case store.WriteDuplicate:
		return EventDuplicate, nil
	case store.WriteOrphaned:
		// The row is kept; only the proposal side effect is lost
		return EventFailed, fmt.Errorf("%w: %s references proposal %s",
			domain.ErrProposalNotFound, ev.Kind(), ev.ProposalNumber().String())
	default:
		return EventFailed, fmt.Errorf("unexpected write outcome %q", outcome)
	}
}

func rawEvent(ev domain.Event) []byte {
	raw, err := json.Marshal(ev)
	if err != nil {
		return nil
	}
	return raw
}
