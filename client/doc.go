// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is a thin wrapper over the Quickly Vote REST API.

	c := client.New("http://localhost:8001")
	polls, err := c.ListPolls(ctx)

Requests use a pooled go-cleanhttp client with a 10 second timeout.
Pass WithHTTPClient to supply another one.

Every error returned by the client is a *models.Error. The detail is the
server's message when it sent one, otherwise a per-operation fallback such
as "Failed to fetch polls". The kind comes from the response body, then
from the status code (400/422 validation, 404 not found, 409 already
voted), and is unknown for everything else, including transport failures:

	if errors.Is(err, models.ErrAlreadyVoted) {
		...
	}
*/
package client
