// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"livepoll/cliparse"
	"livepoll/hub"
	"livepoll/models"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer. If
	// disconnect events are missed, this deadline is the sweep that
	// eventually clears the subscription.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
)

type WSHandler struct {
	hub      *hub.Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(h *hub.Hub, cfg cliparse.Config) *WSHandler {
	allowed := cfg.AllowedOrigin
	return &WSHandler{
		hub: h,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowed == "*" {
					return true
				}
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowed
			},
		},
	}
}

// Serve handles GET /ws: upgrades the connection, registers it with the
// hub, and runs the read/write pumps until disconnect.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	client := hub.NewClient()
	h.hub.Register(client)

	slog.Info("socket connected", "client_id", client.ID, "remote", r.RemoteAddr)

	go h.writePump(conn, client)
	h.readPump(conn, client)
}

// readPump consumes client signals (join:poll) until the connection dies,
// then unregisters the client. One reader per connection.
func (h *WSHandler) readPump(conn *websocket.Conn, client *hub.Client) {
	defer func() {
		h.hub.Unregister(client)
		conn.Close()
		slog.Info("socket disconnected", "client_id", client.ID)
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg models.ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("socket read failed", "error", err, "client_id", client.ID)
			}
			return
		}

		if msg.Type == models.EventJoinPoll && msg.PollID != "" {
			h.hub.Subscribe(client, msg.PollID)
		}
	}
}

// writePump drains the client's send queue and keeps the connection alive
// with pings. One writer per connection; it exits when the hub closes the
// send channel or a write fails.
func (h *WSHandler) writePump(conn *websocket.Conn, client *hub.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case ev, ok := <-client.Send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub dropped us.
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
