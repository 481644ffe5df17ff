// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the livepoll API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(coord, broadcast, cfg)

# Endpoints

Health:

	GET /health

Polls:

	POST /polls           - Create poll
	GET  /polls           - List polls, newest first
	GET  /polls/{id}      - Poll with options and counters

Voting:

	POST /polls/{id}/vote - Cast one vote (body: optionId, voterId)

Live updates:

	GET /ws - websocket; client sends join:poll, server pushes
	          vote:update and polls:refreshed

All JSON endpoints are wrapped in request logging; the websocket endpoint
is not, since a connection can outlive the process's interest in a single
log line.
*/
package router
