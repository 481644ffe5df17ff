// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"livepoll/ident"
	"livepoll/models"
)

// Coordinator is the only writer that touches both the ballot ledger and
// the poll store, and is responsible for keeping them consistent.
type Coordinator struct {
	ledger BallotLedger
	polls  PollStore
	pub    Publisher
}

func NewCoordinator(ledger BallotLedger, polls PollStore, pub Publisher) *Coordinator {
	return &Coordinator{ledger: ledger, polls: polls, pub: pub}
}

// CastVote counts one vote for optionID on pollID by voterID.
//
// The ledger insert happens first: its uniqueness constraint is the only
// thing preventing a double count, so it must precede any counter
// mutation. A duplicate is rejected before the counter is touched, which
// also makes retries of the whole operation safe. If the increment then
// finds no matching poll/option, the ballot written in step one is deleted
// again; the two stores are not covered by one transaction, so this
// compensating delete is what keeps a rejected vote from leaking a "used"
// ballot.
func (c *Coordinator) CastVote(ctx context.Context, pollID, optionID, voterID, clientIP string) (models.Poll, error) {
	if pollID == "" || optionID == "" || voterID == "" || clientIP == "" {
		return models.Poll{}, fmt.Errorf("%w: missing pollId, optionId, voterId, or IP address", ErrValidation)
	}

	ballot := models.Ballot{
		PollID:    pollID,
		VoterID:   voterID,
		IP:        clientIP,
		CreatedAt: time.Now(),
	}
	if err := c.ledger.Record(ctx, ballot); err != nil {
		if errors.Is(err, ErrAlreadyVoted) {
			return models.Poll{}, err
		}
		return models.Poll{}, fmt.Errorf("failed to record ballot: %w", err)
	}

	poll, err := c.polls.IncrementVote(ctx, pollID, optionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			if delErr := c.ledger.Delete(ctx, pollID, voterID); delErr != nil {
				// The ballot is now orphaned; log loudly, the vote
				// itself is still correctly rejected.
				slog.Error("ballot rollback failed", "error", delErr, "poll_id", pollID, "voter_id", voterID)
			}
			return models.Poll{}, err
		}
		return models.Poll{}, fmt.Errorf("failed to count vote: %w", err)
	}

	c.pub.Publish(poll)

	return poll, nil
}

// CreatePoll validates and persists a new poll with all counters at zero,
// then signals list subscribers.
func (c *Coordinator) CreatePoll(ctx context.Context, question string, options []string) (string, error) {
	question = strings.TrimSpace(question)

	texts := make([]string, 0, len(options))
	for _, opt := range options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			texts = append(texts, trimmed)
		}
	}

	if question == "" || len(texts) < 2 {
		return "", fmt.Errorf("%w: question and at least two options are required", ErrValidation)
	}

	pollID, err := ident.NewPollID()
	if err != nil {
		return "", fmt.Errorf("failed to generate poll id: %w", err)
	}

	opts := make([]models.Option, len(texts))
	for i, text := range texts {
		id, err := ident.NewID(12)
		if err != nil {
			return "", fmt.Errorf("failed to generate option id: %w", err)
		}
		opts[i] = models.Option{ID: id, Text: text, Votes: 0}
	}

	now := time.Now()
	poll := models.Poll{
		ID:        pollID,
		Question:  question,
		Options:   opts,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.polls.Create(ctx, poll); err != nil {
		return "", fmt.Errorf("failed to create poll: %w", err)
	}

	slog.Info("poll created", "poll_id", pollID, "options", len(opts))

	c.pub.PublishListChanged()

	return pollID, nil
}

// GetPoll returns one poll by id.
func (c *Coordinator) GetPoll(ctx context.Context, pollID string) (models.Poll, error) {
	if pollID == "" {
		return models.Poll{}, fmt.Errorf("%w: poll id is required", ErrValidation)
	}
	return c.polls.Get(ctx, pollID)
}

// ListPolls returns all polls, newest first.
func (c *Coordinator) ListPolls(ctx context.Context) ([]models.Poll, error) {
	return c.polls.List(ctx)
}
