// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views holds the page-level views of the terminal front end.

Each view owns its state in an exported struct, talks to the server
through the API interface (satisfied by *client.Client) and renders that
state to an io.Writer with go-pretty tables:

  - ListView: active polls, platform statistics and deletion
  - CreateView: the poll form, validated with the server's limits
  - VoteView: pick one option and vote once
  - ResultsView: live results, refreshed by Watch every 10 seconds

Failed calls and confirmations are surfaced as a Notification that
disappears after five seconds or when dismissed.
*/
package views
