// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package memstore

import (
	"context"
	"sync"
	"time"

	"livepoll/models"
	"livepoll/vote"
)

// Store is a single-process implementation of vote.BallotLedger and
// vote.PollStore: the mutex stands in for the unique constraint and the
// atomic increment that a SQL engine would provide.
type Store struct {
	mu      sync.Mutex
	polls   map[string]models.Poll
	order   []string // poll ids in creation order
	ballots map[string]models.Ballot
}

func New() *Store {
	return &Store{
		polls:   make(map[string]models.Poll),
		ballots: make(map[string]models.Ballot),
	}
}

func ballotKey(pollID, voterID string) string {
	return pollID + "\x00" + voterID
}

// Record is insert-if-absent under the lock; the check and the insert are
// one critical section, so two concurrent calls for the same (poll, voter)
// resolve to exactly one success.
func (s *Store) Record(_ context.Context, b models.Ballot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := ballotKey(b.PollID, b.VoterID)
	if _, exists := s.ballots[key]; exists {
		return vote.ErrAlreadyVoted
	}
	s.ballots[key] = b
	return nil
}

func (s *Store) Delete(_ context.Context, pollID, voterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.ballots, ballotKey(pollID, voterID))
	return nil
}

// HasBallot reports whether a ledger entry exists. Test helper.
func (s *Store) HasBallot(pollID, voterID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.ballots[ballotKey(pollID, voterID)]
	return exists
}

func (s *Store) Create(_ context.Context, p models.Poll) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.polls[p.ID] = clone(p)
	s.order = append(s.order, p.ID)
	return nil
}

func (s *Store) Get(_ context.Context, pollID string) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.polls[pollID]
	if !ok {
		return models.Poll{}, vote.ErrNotFound
	}
	return clone(p), nil
}

func (s *Store) List(_ context.Context) ([]models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	polls := make([]models.Poll, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		polls = append(polls, clone(s.polls[s.order[i]]))
	}
	return polls, nil
}

func (s *Store) IncrementVote(_ context.Context, pollID, optionID string) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.polls[pollID]
	if !ok {
		return models.Poll{}, vote.ErrNotFound
	}

	for i := range p.Options {
		if p.Options[i].ID == optionID {
			p.Options[i].Votes++
			p.UpdatedAt = time.Now()
			s.polls[pollID] = p
			return clone(p), nil
		}
	}

	return models.Poll{}, vote.ErrNotFound
}

// clone copies the option slice so callers never alias stored state.
func clone(p models.Poll) models.Poll {
	opts := make([]models.Option, len(p.Options))
	copy(opts, p.Options)
	p.Options = opts
	return p
}
