package ingest

import (
	"fmt"
	"sort"
	"time"

	"github.com/feral-file/dao-indexer/internal/domain"
)

// Batch holds every tracked event of one block range, grouped by kind,
// with the timestamps of the blocks that emitted them
type Batch struct {
	Range      domain.BlockRange
	Events     map[domain.EventKind][]domain.Event
	Timestamps map[uint64]time.Time
}

// NewBatch creates an empty batch for r
func NewBatch(r domain.BlockRange) *Batch {
	return &Batch{
		Range:      r,
		Events:     make(map[domain.EventKind][]domain.Event, len(domain.EventKinds)),
		Timestamps: make(map[uint64]time.Time),
	}
}

// Ordered returns the events in projection order: kinds in domain.EventKinds order,
// each kind ascending by block number then log index
func (b *Batch) Ordered() []domain.Event {
	var ordered []domain.Event
	for _, kind := range domain.EventKinds {
		events := append([]domain.Event(nil), b.Events[kind]...)
		sort.SliceStable(events, func(i, j int) bool {
			mi, mj := events[i].Meta(), events[j].Meta()
			if mi.BlockNumber != mj.BlockNumber {
				return mi.BlockNumber < mj.BlockNumber
			}
			return mi.LogIndex < mj.LogIndex
		})
		ordered = append(ordered, events...)
	}
	return ordered
}

// Len returns the number of events across all kinds
func (b *Batch) Len() int {
	n := 0
	for _, events := range b.Events {
		n += len(events)
	}
	return n
}

// BlockNumbers returns the distinct blocks that emitted events, ascending
func (b *Batch) BlockNumbers() []uint64 {
	seen := make(map[uint64]struct{})
	var blocks []uint64
	for _, events := range b.Events {
		for _, ev := range events {
			n := ev.Meta().BlockNumber
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			blocks = append(blocks, n)
		}
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i] < blocks[j] })
	return blocks
}

// timestampOf looks up the timestamp of the block that emitted ev
func (b *Batch) timestampOf(ev domain.Event) (time.Time, error) {
	ts, ok := b.Timestamps[ev.Meta().BlockNumber]
	if !ok {
		return time.Time{}, fmt.Errorf("no timestamp resolved for block %d", ev.Meta().BlockNumber)
	}
	return ts, nil
}
