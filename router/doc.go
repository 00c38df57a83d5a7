// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter returns the server handler with all endpoints behind CORS and
gzip compression:

	handler := router.NewRouter(db, cfg)

NewMux returns the bare http.ServeMux when the middleware chain is not
wanted.

# Endpoints

Service:

	GET /api/        - Welcome message
	GET /api/health  - Health check (status, service, version)
	GET /metrics     - Prometheus metrics

Polls:

	GET    /api/polls              - List active polls
	POST   /api/polls              - Create poll
	GET    /api/polls/{id}         - Poll with options and vote counts
	DELETE /api/polls/{id}         - Delete poll and its votes
	GET    /api/polls/{id}/results - Aggregated results

Voting:

	POST /api/votes - Cast a vote

# Handler Initialization

The router creates handler instances with dependency injection:

	pollHandler := handlers.NewPollHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
