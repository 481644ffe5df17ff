// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP and websocket request handlers.

# Handler Types

  - PollHandler: poll creation and reads
  - VoteHandler: vote casting
  - WSHandler: the live-update channel

PollHandler and VoteHandler wrap the vote coordinator:

	pollHandler := handlers.NewPollHandler(coord)

# Voting Flow

	POST /polls           → Create (201 {pollId})
	GET  /polls           → List (newest first)
	GET  /polls/{id}      → Get
	POST /polls/{id}/vote → CastVote (200 with the updated poll)

CastVote maps the coordinator's errors onto statuses: validation 400,
already-voted 403, missing poll/option 404, storage faults 500. Error
messages are surfaced verbatim to the client.

# Live Updates

	GET /ws → WSHandler.Serve

After the upgrade the client sends {"type":"join:poll","pollId":...} to
subscribe; the server pushes vote:update snapshots and polls:refreshed
signals. Each connection runs one read pump and one write pump; the write
pump pings on a timer and the read pump's pong deadline reaps dead
connections that never said goodbye.
*/
package handlers
