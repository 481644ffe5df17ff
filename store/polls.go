// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"livepoll/models"
	"livepoll/vote"
)

// Polls implements vote.PollStore over SQL.
type Polls struct {
	db *sql.DB
}

func NewPolls(db *sql.DB) *Polls {
	return &Polls{db: db}
}

func (s *Polls) Create(ctx context.Context, p models.Poll) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll (id, question, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, p.ID, p.Question, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert poll: %w", err)
	}

	for i, opt := range p.Options {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO poll_option (id, poll_id, position, text, votes)
			VALUES ($1, $2, $3, $4, $5)
		`, opt.ID, p.ID, i, opt.Text, opt.Votes)
		if err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit poll: %w", err)
	}

	return nil
}

func (s *Polls) Get(ctx context.Context, pollID string) (models.Poll, error) {
	return getPoll(ctx, s.db, pollID)
}

func (s *Polls) List(ctx context.Context) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question, created_at, updated_at
		FROM poll
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Question, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polls: %w", err)
	}

	for i := range polls {
		opts, err := loadOptions(ctx, s.db, polls[i].ID)
		if err != nil {
			return nil, err
		}
		polls[i].Options = opts
	}

	return polls, nil
}

// IncrementVote adds one vote and returns the post-increment snapshot. The
// counter bump is a single UPDATE, so concurrent increments on the same
// option serialize in the engine and none are lost. The snapshot is read
// inside the same transaction.
func (s *Polls) IncrementVote(ctx context.Context, pollID, optionID string) (models.Poll, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var votes int
	err = tx.QueryRowContext(ctx, `
		UPDATE poll_option
		SET votes = votes + 1
		WHERE poll_id = $1 AND id = $2
		RETURNING votes
	`, pollID, optionID).Scan(&votes)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, vote.ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to increment vote: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE poll SET updated_at = CURRENT_TIMESTAMP WHERE id = $1
	`, pollID)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to touch poll: %w", err)
	}

	poll, err := getPoll(ctx, tx, pollID)
	if err != nil {
		return models.Poll{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Poll{}, fmt.Errorf("failed to commit vote: %w", err)
	}

	return poll, nil
}

// querier lets the poll read path run on the pool or inside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getPoll(ctx context.Context, q querier, pollID string) (models.Poll, error) {
	var p models.Poll
	err := q.QueryRowContext(ctx, `
		SELECT id, question, created_at, updated_at
		FROM poll
		WHERE id = $1
	`, pollID).Scan(&p.ID, &p.Question, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Poll{}, vote.ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}

	opts, err := loadOptions(ctx, q, pollID)
	if err != nil {
		return models.Poll{}, err
	}
	p.Options = opts

	return p, nil
}

func loadOptions(ctx context.Context, q querier, pollID string) ([]models.Option, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, text, votes
		FROM poll_option
		WHERE poll_id = $1
		ORDER BY position
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.Text, &opt.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}

	return options, nil
}
