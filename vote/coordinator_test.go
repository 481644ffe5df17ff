// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package vote_test

import (
	"context"
	"errors"
	"testing"

	"livepoll/memstore"
	"livepoll/testutil"
	"livepoll/vote"
)

func newTestCoordinator() (*vote.Coordinator, *memstore.Store, *testutil.PublisherSpy) {
	store := memstore.New()
	spy := &testutil.PublisherSpy{}
	return vote.NewCoordinator(store, store, spy), store, spy
}

func TestCreatePollValidation(t *testing.T) {
	coord, _, spy := newTestCoordinator()
	ctx := context.Background()

	cases := []struct {
		name     string
		question string
		options  []string
	}{
		{"empty question", "", []string{"A", "B"}},
		{"whitespace question", "   ", []string{"A", "B"}},
		{"one option", "Q", []string{"A"}},
		{"no options", "Q", nil},
		{"blank options collapse", "Q", []string{"A", "  ", ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coord.CreatePoll(ctx, tc.question, tc.options)
			if !errors.Is(err, vote.ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
		})
	}

	// Nothing may be persisted or broadcast on validation failure
	polls, err := coord.ListPolls(ctx)
	if err != nil {
		t.Fatalf("ListPolls failed: %v", err)
	}
	if len(polls) != 0 {
		t.Errorf("Expected no polls persisted, got %d", len(polls))
	}
	if spy.ListChanges() != 0 {
		t.Errorf("Expected no broadcasts, got %d", spy.ListChanges())
	}
}

func TestCreatePollZeroCountersAndOrder(t *testing.T) {
	coord, _, spy := newTestCoordinator()
	ctx := context.Background()

	pollID, err := coord.CreatePoll(ctx, "Best editor?", []string{" vim ", "emacs"})
	if err != nil {
		t.Fatalf("CreatePoll failed: %v", err)
	}
	if len(pollID) != 10 {
		t.Errorf("Expected 10-symbol poll id, got %q", pollID)
	}

	poll, err := coord.GetPoll(ctx, pollID)
	if err != nil {
		t.Fatalf("GetPoll failed: %v", err)
	}
	if poll.Question != "Best editor?" {
		t.Errorf("Unexpected question %q", poll.Question)
	}
	if len(poll.Options) != 2 {
		t.Fatalf("Expected 2 options, got %d", len(poll.Options))
	}
	if poll.Options[0].Text != "vim" || poll.Options[1].Text != "emacs" {
		t.Errorf("Options out of order or untrimmed: %+v", poll.Options)
	}
	for _, opt := range poll.Options {
		if opt.Votes != 0 {
			t.Errorf("Expected zero votes on %q, got %d", opt.Text, opt.Votes)
		}
	}

	if spy.ListChanges() != 1 {
		t.Errorf("Expected 1 list-changed broadcast, got %d", spy.ListChanges())
	}
}

func TestCastVoteSuccess(t *testing.T) {
	coord, store, spy := newTestCoordinator()
	ctx := context.Background()

	seed := testutil.CreateTestPoll(t, store, "Q", "A", "B")
	target := seed.Options[1]

	poll, err := coord.CastVote(ctx, seed.ID, target.ID, "voter-1", "10.0.0.1")
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if poll.Options[1].Votes != 1 || poll.Options[0].Votes != 0 {
		t.Errorf("Unexpected counters after vote: %+v", poll.Options)
	}

	if !store.HasBallot(seed.ID, "voter-1") {
		t.Error("Expected a ledger entry for the voter")
	}

	published := spy.Published()
	if len(published) != 1 {
		t.Fatalf("Expected exactly 1 publish, got %d", len(published))
	}
	if published[0].Options[1].Votes != 1 {
		t.Errorf("Published snapshot is stale: %+v", published[0].Options)
	}
}

func TestCastVoteValidation(t *testing.T) {
	coord, store, _ := newTestCoordinator()
	ctx := context.Background()

	seed := testutil.CreateTestPoll(t, store, "Q", "A", "B")

	cases := []struct {
		name                          string
		pollID, optionID, voterID, ip string
	}{
		{"missing poll", "", seed.Options[0].ID, "v", "1.2.3.4"},
		{"missing option", seed.ID, "", "v", "1.2.3.4"},
		{"missing voter", seed.ID, seed.Options[0].ID, "", "1.2.3.4"},
		{"missing ip", seed.ID, seed.Options[0].ID, "v", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coord.CastVote(ctx, tc.pollID, tc.optionID, tc.voterID, tc.ip)
			if !errors.Is(err, vote.ErrValidation) {
				t.Errorf("Expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestCastVoteDuplicateIsStable(t *testing.T) {
	coord, store, spy := newTestCoordinator()
	ctx := context.Background()

	seed := testutil.CreateTestPoll(t, store, "Q", "A", "B")
	opt := seed.Options[0]

	if _, err := coord.CastVote(ctx, seed.ID, opt.ID, "voter-1", "10.0.0.1"); err != nil {
		t.Fatalf("First vote failed: %v", err)
	}

	// Retrying the identical request keeps failing the same way, with no
	// counter drift.
	for i := 0; i < 3; i++ {
		_, err := coord.CastVote(ctx, seed.ID, opt.ID, "voter-1", "10.0.0.1")
		if !errors.Is(err, vote.ErrAlreadyVoted) {
			t.Fatalf("Retry %d: expected ErrAlreadyVoted, got %v", i, err)
		}
	}

	poll, err := coord.GetPoll(ctx, seed.ID)
	if err != nil {
		t.Fatalf("GetPoll failed: %v", err)
	}
	if poll.Options[0].Votes != 1 {
		t.Errorf("Expected counter 1 after retries, got %d", poll.Options[0].Votes)
	}
	if len(spy.Published()) != 1 {
		t.Errorf("Expected 1 publish total, got %d", len(spy.Published()))
	}
}

func TestCastVoteUnknownOptionRollsBack(t *testing.T) {
	coord, store, spy := newTestCoordinator()
	ctx := context.Background()

	seed := testutil.CreateTestPoll(t, store, "Q", "A", "B")

	_, err := coord.CastVote(ctx, seed.ID, "no-such-option", "voter-1", "10.0.0.1")
	if !errors.Is(err, vote.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	// The compensating delete must leave no residual ledger entry
	if store.HasBallot(seed.ID, "voter-1") {
		t.Error("Expected ballot rollback, found residual ledger entry")
	}
	if len(spy.Published()) != 0 {
		t.Errorf("Expected no publish on failure, got %d", len(spy.Published()))
	}

	// The voter can still cast a valid vote afterwards
	if _, err := coord.CastVote(ctx, seed.ID, seed.Options[0].ID, "voter-1", "10.0.0.1"); err != nil {
		t.Errorf("Vote after rollback failed: %v", err)
	}
}

func TestCastVoteUnknownPoll(t *testing.T) {
	coord, store, _ := newTestCoordinator()

	_, err := coord.CastVote(context.Background(), "nope", "opt", "voter-1", "10.0.0.1")
	if !errors.Is(err, vote.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if store.HasBallot("nope", "voter-1") {
		t.Error("Expected ballot rollback for unknown poll")
	}
}
