// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package observer is the resiliency backstop between the poll store and the
broadcast hub.

It LISTENs on the postgres change feed installed by db.CreateChangeFeed
and, for each notification, pushes the freshest state it can: a targeted
vote:update snapshot when an UPDATE names a poll, otherwise the generic
polls:refreshed signal. This catches out-of-band writes that bypass the
vote coordinator (another process, manual SQL) so subscribers never
diverge from durable state for long.

Strictly best-effort and non-blocking: Start failing (or the engine being
sqlite, which has no feed) leaves the system on direct coordinator
publishes alone.
*/
package observer
