// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

Each handler is a struct holding the stores it needs and the config:

  - PollHandler: Poll listing, lookup, creation and deletion
  - VotingHandler: Vote casting
  - ResultsHandler: Aggregated results

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Polls

	GET    /api/polls      → ListPolls (active polls, newest first)
	POST   /api/polls      → CreatePoll (returns the stored poll)
	GET    /api/polls/{id} → GetPoll
	DELETE /api/polls/{id} → DeletePoll (removes options and votes too)

# Voting

	POST /api/votes → CastVote

The voter is identified by network address (see auth.VoterIdentity). A
second vote from the same address on the same poll is rejected with 409
and kind "already_voted".

# Results

	GET /api/polls/{id}/results → GetResults

Results are computed on every request from the stored vote rows; see the
results package for percentages and the leading option.

# Errors

Every failure is written by middleware.WriteError as
{"detail": "...", "kind": "..."}.
*/
package handlers
