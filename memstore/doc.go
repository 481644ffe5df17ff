// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package memstore is a mutex-guarded, in-process implementation of the vote
package's BallotLedger and PollStore contracts.

It backs the test suites (no database required, deterministic under the
race detector) and works as a throwaway single-node engine. Durability is
out of its scope: restart and everything is gone.
*/
package memstore
