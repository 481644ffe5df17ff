// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"livepoll/middleware"
	"livepoll/models"
	"livepoll/vote"
)

type VoteHandler struct {
	coord *vote.Coordinator
}

func NewVoteHandler(coord *vote.Coordinator) *VoteHandler {
	return &VoteHandler{coord: coord}
}

// CastVote handles POST /polls/{id}/vote
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	clientIP := middleware.GetClientIP(r)

	poll, err := h.coord.CastVote(r.Context(), pollID, req.OptionID, req.VoterID, clientIP)
	switch {
	case errors.Is(err, vote.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, vote.ErrAlreadyVoted):
		// Proof a prior vote succeeded; clients mark themselves as voted.
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
		return
	case errors.Is(err, vote.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		slog.Error("failed to process vote", "error", err, "poll_id", pollID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	slog.Info("vote counted", "poll_id", pollID, "option_id", req.OptionID)

	middleware.JSONResponse(w, http.StatusOK, poll)
}
