package domain

import "errors"

var (
	// ErrProposalAlreadyExists is returned when a ProposalCreated event reuses an id created by another log
	ErrProposalAlreadyExists = errors.New("proposal already exists")

	// ErrProposalNotFound is returned when a vote or execution references a proposal that was never created
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrUnknownEventKind is returned for kinds outside the tracked set
	ErrUnknownEventKind = errors.New("unknown event kind")

	// ErrMalformedEvent is returned when a log cannot be decoded into its event
	ErrMalformedEvent = errors.New("malformed event")

	// ErrInvalidEvent is returned when a decoded event carries values no projection accepts,
	// such as a missing proposal id or a negative vote amount
	ErrInvalidEvent = errors.New("invalid event")

	// ErrBackfillIncomplete is returned by the poller while historical replay has not finished
	ErrBackfillIncomplete = errors.New("backfill incomplete")

	// ErrTickInFlight is returned when a poll tick fires while the previous one is still running
	ErrTickInFlight = errors.New("poll tick already in flight")
)
