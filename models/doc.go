// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePollRequest: question, options ([]string)
  - VoteRequest: optionId, voterId

# Response Types

Types for JSON responses:

  - CreatePollResponse: pollId
  - ErrorResponse: error, message

Poll itself is the response body for poll reads and successful votes.

# Domain Types

Internal data structures:

  - Poll: question, ordered options, timestamps
  - Option: display text and vote counter
  - Ballot: one ledger entry per (poll, voter)

# Websocket Messages

Server to client:

  - Event{Type: "vote:update", Poll: <snapshot>}
  - Event{Type: "polls:refreshed"}

Client to server:

  - ClientMessage{Type: "join:poll", PollID: "..."}
*/
package models
