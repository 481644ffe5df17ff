// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"livepoll/models"
	"livepoll/vote"
)

// Ledger implements vote.BallotLedger over SQL. The ballot table's
// (poll_id, voter_id) primary key is the uniqueness guard; no
// application-level locking is involved.
type Ledger struct {
	db *sql.DB
}

func NewLedger(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

func (l *Ledger) Record(ctx context.Context, b models.Ballot) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO ballot (poll_id, voter_id, ip, created_at)
		VALUES ($1, $2, $3, $4)
	`, b.PollID, b.VoterID, b.IP, b.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return vote.ErrAlreadyVoted
		}
		return fmt.Errorf("failed to insert ballot: %w", err)
	}

	return nil
}

func (l *Ledger) Delete(ctx context.Context, pollID, voterID string) error {
	_, err := l.db.ExecContext(ctx, `
		DELETE FROM ballot WHERE poll_id = $1 AND voter_id = $2
	`, pollID, voterID)

	if err != nil {
		return fmt.Errorf("failed to delete ballot: %w", err)
	}

	return nil
}

// isUniqueViolation recognizes a constraint violation on either engine:
// pq reports SQLSTATE 23505, sqlite only a message.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
