package ingest

import (
	"github.com/feral-file/dao-indexer/internal/domain"
)

// EventStatus is the outcome of projecting one event
type EventStatus string

const (
	EventApplied   EventStatus = "applied"
	EventDuplicate EventStatus = "duplicate"
	EventFailed    EventStatus = "failed"
)

// EventResult is the tagged result of projecting one event
type EventResult struct {
	Kind        domain.EventKind
	ProposalID  string
	BlockNumber uint64
	LogIndex    uint
	Status      EventStatus
	// Err is set when Status is EventFailed
	Err error
}

// Report aggregates the per-event results of one block range
type Report struct {
	Range   domain.BlockRange
	Results []EventResult
}

// NewReport creates an empty report for r
func NewReport(r domain.BlockRange) *Report {
	return &Report{Range: r}
}

// Add appends a result
func (r *Report) Add(result EventResult) {
	r.Results = append(r.Results, result)
}

// Count returns how many results have the given status
func (r *Report) Count(status EventStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}

// Failures returns the failed results in projection order
func (r *Report) Failures() []EventResult {
	var failed []EventResult
	for _, res := range r.Results {
		if res.Status == EventFailed {
			failed = append(failed, res)
		}
	}
	return failed
}
