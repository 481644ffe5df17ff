// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package vote implements the vote transaction coordinator and the contracts
it runs on.

# Contracts

The coordinator depends on three small interfaces:

  - BallotLedger: insert-if-absent record of (poll, voter) pairs
  - PollStore: poll persistence plus an atomic increment-and-return
  - Publisher: fire-and-forget fan-out to live subscribers

The store package implements the first two over SQL, memstore over
mutex-guarded maps, and the hub package implements Publisher.

# CastVote Ordering

The ordering inside CastVote is load-bearing:

 1. ledger insert (the single serialization point; duplicates stop here)
 2. atomic counter increment returning the updated poll
 3. on missing poll/option: compensating ledger delete, then not-found
 4. publish the snapshot, return it

Two concurrent votes by the same (poll, voter) resolve to exactly one
success and one ErrAlreadyVoted regardless of interleaving, because the
ledger insert precedes any counter mutation.

# Errors

ErrValidation, ErrAlreadyVoted, and ErrNotFound are terminal client
errors. Everything else is a storage fault, safe to retry whole: a retry
that already committed its ledger insert fails as a duplicate instead of
double counting.
*/
package vote
