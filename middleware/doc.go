// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/polls", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms), and records the request count and latency in the metrics
package under the matched route pattern.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type and Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)

Errors always carry a detail string and a kind:

	middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidation, "Invalid JSON")
	middleware.WriteError(w, err, "Failed to create poll")

WriteError maps tagged errors to a status code (NotFound 404,
ValidationError 400, AlreadyVoted and DuplicateKey 409). Untagged errors
are logged and reported as a 500 carrying only the fallback message.

Parse JSON request bodies:

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.KindValidation, "Invalid JSON")
		return
	}
*/
package middleware
