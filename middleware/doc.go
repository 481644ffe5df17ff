// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Request Logging

WithLogging wraps a handler and logs method, path, status, remote address,
and duration via slog:

	mux.HandleFunc("POST /polls", middleware.WithLogging(h.Create))

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse bodies are models.ErrorResponse; the message is surfaced
verbatim by clients.

# Client IP

GetClientIP resolves the caller's address for the ballot audit trail:
X-Forwarded-For (first hop), then X-Real-IP, then RemoteAddr without the
port.

# CORS

CORS reflects the Origin header and handles preflight, so the frontend can
be served from a different origin in development.
*/
package middleware
