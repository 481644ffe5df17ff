// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import (
	"context"

	"livepoll/models"
)

// BallotLedger is the durable record of who has voted on what.
//
// Record is insert-if-absent: the implementation must enforce uniqueness of
// (PollID, VoterID) atomically at insert time and return ErrAlreadyVoted on
// a duplicate. Any storage engine with a unique constraint or
// compare-and-swap primitive can satisfy this.
type BallotLedger interface {
	Record(ctx context.Context, b models.Ballot) error

	// Delete removes a ledger entry. Only used as the compensating action
	// when the paired counter increment finds no matching poll/option.
	Delete(ctx context.Context, pollID, voterID string) error
}

// PollStore is the durable record of polls and their vote counters.
type PollStore interface {
	Create(ctx context.Context, p models.Poll) error
	Get(ctx context.Context, pollID string) (models.Poll, error)

	// List returns all polls, newest first.
	List(ctx context.Context) ([]models.Poll, error)

	// IncrementVote atomically adds one vote to the option and returns the
	// post-increment poll snapshot in the same operation. Returns
	// ErrNotFound when the poll or option does not exist. Concurrent
	// increments on the same option must all be reflected (no lost
	// updates).
	IncrementVote(ctx context.Context, pollID, optionID string) (models.Poll, error)
}

// Publisher fans poll updates out to live subscribers. Implemented by the
// hub package; fire-and-forget.
type Publisher interface {
	Publish(p models.Poll)
	PublishListChanged()
}
