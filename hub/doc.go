// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package hub is the broadcast hub: it maps poll ids to sets of live
connections and pushes updated poll snapshots to them.

# Model

Each connection is a Client with a buffered Send channel. The hub only
enqueues; the websocket transport in the handlers package drains Send with
a per-connection write goroutine. A client that can't keep up (full
buffer) is dropped rather than allowed to stall fan-out — delivery is
at-most-once and clients re-fetch on reconnect.

# Ordering

Membership changes and publishes all run under one mutex, so a given
subscriber sees a single poll's updates in publish order. Nothing is
guaranteed across different polls.

# Lifecycle

	c := hub.NewClient()
	h.Register(c)         // receives polls:refreshed from now on
	h.Subscribe(c, id)    // at most one poll per connection; re-join moves it
	h.Unsubscribe(c)      // idempotent
	h.Unregister(c)       // on disconnect; closes c.Send

The hub is transport-agnostic: tests drive it with bare Clients and read
Send directly.
*/
package hub
