package models

import "time"

// Websocket event types
const (
	EventVoteUpdate     = "vote:update"
	EventPollsRefreshed = "polls:refreshed"
	EventJoinPoll       = "join:poll"
)

// Request types

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// VoteRequest identifies the poll by URL path; the body carries the rest.
type VoteRequest struct {
	OptionID string `json:"optionId"`
	VoterID  string `json:"voterId"`
}

// Response types

type CreatePollResponse struct {
	PollID string `json:"pollId"`
}

// Domain types

type Poll struct {
	ID        string    `json:"pollId"`
	Question  string    `json:"question"`
	Options   []Option  `json:"options"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Option struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// Ballot records that a voter has cast a vote on a poll. The (PollID,
// VoterID) pair is unique; IP is kept for audit only.
type Ballot struct {
	PollID    string    `json:"poll_id"`
	VoterID   string    `json:"-"` // Never expose in JSON
	IP        string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
}

// Websocket messages

// Event is a server-to-client push. Poll is set for vote:update and
// omitted for polls:refreshed.
type Event struct {
	Type string `json:"type"`
	Poll *Poll  `json:"poll,omitempty"`
}

// ClientMessage is a client-to-server signal (currently only join:poll).
type ClientMessage struct {
	Type   string `json:"type"`
	PollID string `json:"pollId,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
