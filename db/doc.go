// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Engines

Open selects the driver from the configured type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

sqlite (modernc.org/sqlite, pure Go) is the zero-config development engine;
postgres (lib/pq) is the production engine. All SQL in the store package is
written to run unchanged on both: placeholders are $1..$n in order of first
occurrence, which lib/pq binds by number and sqlite binds positionally.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - poll: question and timestamps
  - poll_option: ordered options with vote counters
  - ballot: one row per (poll, voter); the primary key enforces
    one vote per voter per poll

# Relationships

	poll 1──* poll_option
	poll 1──* ballot

All foreign keys use ON DELETE CASCADE.

# Change Feed

CreateChangeFeed installs a postgres trigger that emits

	NOTIFY poll_changes, '{"op": "UPDATE", "poll_id": "..."}'

on every poll-table mutation. The observer package listens on this channel
to re-broadcast state that changed behind the coordinator's back. sqlite
has no equivalent; deployments on sqlite run without the backstop.
*/
package db
