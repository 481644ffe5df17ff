// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"livepoll/cliparse"
	"livepoll/handlers"
	"livepoll/hub"
	"livepoll/middleware"
	"livepoll/vote"
)

func NewRouter(coord *vote.Coordinator, broadcast *hub.Hub, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(coord)
	voteHandler := handlers.NewVoteHandler(coord)
	wsHandler := handlers.NewWSHandler(broadcast, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Polls
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.Create))
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.List))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.Get))

	// Voting
	mux.HandleFunc("POST /polls/{id}/vote", middleware.WithLogging(voteHandler.CastVote))

	// Live updates (long-lived; not wrapped in request logging)
	mux.HandleFunc("GET /ws", wsHandler.Serve)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("livepoll API v1"))
	})

	return mux
}
