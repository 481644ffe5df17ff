// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package hub

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"livepoll/models"
)

// sendBuffer bounds the per-client queue. A client that falls this far
// behind is dropped; it re-fetches authoritative state on reconnect.
const sendBuffer = 16

// Client is one live connection. The transport (see handlers.WSHandler)
// drains Send; the hub only ever enqueues.
type Client struct {
	ID   string
	Send chan models.Event
}

func NewClient() *Client {
	return &Client{
		ID:   uuid.NewString(),
		Send: make(chan models.Event, sendBuffer),
	}
}

// Hub maintains per-poll subscriber groups and fans poll updates out to
// them. All membership mutations and publishes go through one mutex;
// holding it across a publish keeps each subscriber's event order aligned
// with publish order.
type Hub struct {
	mu     sync.Mutex
	groups map[string]map[*Client]struct{}
	// joined maps every registered client to its poll group ("" = none).
	joined map[*Client]string
}

func New() *Hub {
	return &Hub{
		groups: make(map[string]map[*Client]struct{}),
		joined: make(map[*Client]string),
	}
}

// Register adds a connection to the hub without joining any poll group.
// Registered clients receive polls:refreshed signals.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.joined[c]; !ok {
		h.joined[c] = ""
	}
}

// Subscribe joins c to pollID's group. A connection belongs to at most one
// group; subscribing again moves it.
func (h *Hub) Subscribe(c *Client, pollID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	prev, registered := h.joined[c]
	if !registered {
		// Subscribe implies registration for callers that skip Register.
		prev = ""
	}
	if prev == pollID {
		return
	}
	if prev != "" {
		h.leave(c, prev)
	}

	group, ok := h.groups[pollID]
	if !ok {
		group = make(map[*Client]struct{})
		h.groups[pollID] = group
	}
	group[c] = struct{}{}
	h.joined[c] = pollID

	slog.Info("client joined poll", "client_id", c.ID, "poll_id", pollID)
}

// Unsubscribe removes c from whatever group it is in. Idempotent.
func (h *Hub) Unsubscribe(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if pollID, ok := h.joined[c]; ok && pollID != "" {
		h.leave(c, pollID)
		h.joined[c] = ""
	}
}

// Unregister drops the connection entirely and closes its Send channel.
// Safe to call more than once.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.drop(c)
}

// Publish sends the full poll snapshot to every member of its group.
// Fire-and-forget: nothing is queued for absent subscribers.
func (h *Hub) Publish(p models.Poll) {
	h.mu.Lock()
	defer h.mu.Unlock()

	snapshot := p
	for c := range h.groups[p.ID] {
		h.enqueue(c, models.Event{Type: models.EventVoteUpdate, Poll: &snapshot})
	}
}

// PublishListChanged signals every registered client that the poll
// collection changed and should be re-fetched. No payload.
func (h *Hub) PublishListChanged() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.joined {
		h.enqueue(c, models.Event{Type: models.EventPollsRefreshed})
	}
}

// enqueue delivers without blocking; a full queue means the client is too
// slow to keep, so it gets dropped. Callers hold h.mu.
func (h *Hub) enqueue(c *Client, ev models.Event) {
	select {
	case c.Send <- ev:
	default:
		slog.Warn("dropping slow client", "client_id", c.ID)
		h.drop(c)
	}
}

// leave removes c from a group, deleting the group when it empties.
// Callers hold h.mu.
func (h *Hub) leave(c *Client, pollID string) {
	if group, ok := h.groups[pollID]; ok {
		delete(group, c)
		if len(group) == 0 {
			delete(h.groups, pollID)
		}
	}
}

// drop removes c everywhere and closes Send exactly once. Callers hold h.mu.
func (h *Hub) drop(c *Client) {
	pollID, ok := h.joined[c]
	if !ok {
		return
	}
	if pollID != "" {
		h.leave(c, pollID)
	}
	delete(h.joined, c)
	close(c.Send)
}
