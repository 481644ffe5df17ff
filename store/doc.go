// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements the vote package's BallotLedger and PollStore
contracts over database/sql.

# Concurrency

No locks live here. Correctness rests on two engine primitives:

  - the ballot table's (poll_id, voter_id) primary key, checked atomically
    at insert time (Ledger.Record returns vote.ErrAlreadyVoted on a
    violation)
  - UPDATE ... SET votes = votes + 1 ... RETURNING, which can't lose a
    concurrent increment

# Engines

The same SQL runs on postgres (lib/pq) and sqlite (modernc.org/sqlite).
Unique-violation detection handles both: pq errors carry SQLSTATE 23505,
sqlite errors only the "UNIQUE constraint failed" message. Placeholders
appear strictly in $1..$n order so sqlite's positional binding matches
pq's numbered binding.
*/
package store
