// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain, and error types shared by
the server, the API client, and the views.

# Request Types

  - CreatePollRequest: title, description, options[{title, description}]
  - CastVoteRequest: poll_id, option_id

# Response Types

  - CastVoteResponse: message, vote_id
  - DeletePollResponse: message
  - HealthResponse: status, service, version
  - Results: poll_id, title, description, total_votes, options, leading_option_id
  - ErrorResponse: detail, kind

# Domain Types

  - Poll: poll metadata, ordered options, active flag
  - Option: selectable choice with a derived vote count
  - Vote: one (poll, option) choice attributed to a voter address

# Errors

Every failure is a *Error tagged with an ErrorKind:

	KindNotFound     = "not_found"
	KindAlreadyVoted = "already_voted"
	KindValidation   = "validation_error"
	KindDuplicateKey = "duplicate_key"
	KindUnknown      = "unknown"

Match with the sentinels:

	if errors.Is(err, models.ErrAlreadyVoted) {
		// ...
	}

# Validation

ValidateCreatePoll trims input, drops blank options, and enforces the
limits (title 200, description 500, option title 100, option description
200, between 2 and 10 options).
*/
package models
