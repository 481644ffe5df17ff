// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured engine. dbType is "sqlite" or "postgres".
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "postgres":
		return sql.Open("postgres", url)
	case "sqlite":
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer; serializing through one
		// connection avoids SQLITE_BUSY under concurrent votes.
		conn.SetMaxOpenConns(1)
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is portable between sqlite and postgres.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    question TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_poll_created_at ON poll(created_at);

-- Options (position preserves creation order; counters never go negative)
CREATE TABLE IF NOT EXISTS poll_option (
    id TEXT PRIMARY KEY,
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    text TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
    UNIQUE (poll_id, position)
);

CREATE INDEX IF NOT EXISTS idx_poll_option_poll_id ON poll_option(poll_id);

-- Ballots: the (poll_id, voter_id) primary key is the double-vote guard
CREATE TABLE IF NOT EXISTS ballot (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    voter_id TEXT NOT NULL,
    ip TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (poll_id, voter_id)
);

CREATE INDEX IF NOT EXISTS idx_ballot_poll_id ON ballot(poll_id);
`

// CreateChangeFeed installs the poll-change notification trigger. Postgres
// only; callers on sqlite must skip it. The payload carries the operation
// and the poll id so the observer can target the right subscriber group.
func CreateChangeFeed(db *sql.DB) error {
	_, err := db.Exec(changeFeed)
	if err != nil {
		return fmt.Errorf("failed to create change feed: %w", err)
	}

	return nil
}

// ChangeFeedChannel is the NOTIFY channel the trigger publishes on.
const ChangeFeedChannel = "poll_changes"

const changeFeed = `
CREATE OR REPLACE FUNCTION notify_poll_change() RETURNS trigger AS $$
DECLARE
    pid TEXT;
BEGIN
    IF TG_OP = 'DELETE' THEN
        pid := OLD.id;
    ELSE
        pid := NEW.id;
    END IF;
    PERFORM pg_notify('poll_changes', json_build_object('op', TG_OP, 'poll_id', pid)::text);
    RETURN NULL;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS poll_change_notify ON poll;
CREATE TRIGGER poll_change_notify
    AFTER INSERT OR UPDATE OR DELETE ON poll
    FOR EACH ROW EXECUTE FUNCTION notify_poll_change();
`
