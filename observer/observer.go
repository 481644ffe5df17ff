// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package observer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/lib/pq"

	"livepoll/db"
	"livepoll/vote"
)

const (
	minReconnect = 10 * time.Second
	maxReconnect = time.Minute
	pingInterval = 90 * time.Second
)

// changeEvent is the trigger payload from db.CreateChangeFeed.
type changeEvent struct {
	Op     string `json:"op"`
	PollID string `json:"poll_id"`
}

// Observer watches the poll store's change feed and nudges subscribers
// whose view may have drifted. Best-effort: it repairs visibility, never
// correctness, and the system runs fine without it.
type Observer struct {
	dsn      string
	polls    vote.PollStore
	pub      vote.Publisher
	listener *pq.Listener
}

func New(dsn string, polls vote.PollStore, pub vote.Publisher) *Observer {
	return &Observer{dsn: dsn, polls: polls, pub: pub}
}

// Start opens the LISTEN connection and launches the watch loop. An error
// here means no backstop; callers log it and move on.
func (o *Observer) Start(ctx context.Context) error {
	listener := pq.NewListener(o.dsn, minReconnect, maxReconnect, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Warn("change feed listener event", "event", ev, "error", err)
		}
	})

	if err := listener.Listen(db.ChangeFeedChannel); err != nil {
		listener.Close()
		return fmt.Errorf("failed to listen on %s: %w", db.ChangeFeedChannel, err)
	}

	o.listener = listener
	go o.run(ctx)

	slog.Info("change feed observer started", "channel", db.ChangeFeedChannel)
	return nil
}

func (o *Observer) run(ctx context.Context) {
	defer o.listener.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-o.listener.Notify:
			if !ok {
				return
			}
			if n == nil {
				// Reconnect marker: notifications may have been missed
				// while the connection was down.
				o.pub.PublishListChanged()
				continue
			}
			o.handle(ctx, n.Extra)
		case <-time.After(pingInterval):
			if err := o.listener.Ping(); err != nil {
				slog.Warn("change feed ping failed", "error", err)
			}
		}
	}
}

// handle turns one raw notification into the most precise signal it can.
// Updates carrying a poll id get a fresh snapshot pushed to that poll's
// group; everything else degrades to the generic refresh signal.
func (o *Observer) handle(ctx context.Context, payload string) {
	var ev changeEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil || ev.PollID == "" {
		o.pub.PublishListChanged()
		return
	}

	if ev.Op == "UPDATE" {
		poll, err := o.polls.Get(ctx, ev.PollID)
		if err != nil {
			o.pub.PublishListChanged()
			return
		}
		o.pub.Publish(poll)
		return
	}

	// INSERT means a poll nobody can be subscribed to yet; DELETE is out
	// of scope for targeted delivery. Both fall back to the list signal.
	o.pub.PublishListChanged()
}
