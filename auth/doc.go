// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides record identifiers and voter identity.

# ID Generation

Random UUIDs for polls, options, and votes:

	id := auth.GenerateID()

# Voter Identity

There are no accounts. A vote is attributed to the requester's network
address:

	voterID := auth.VoterIdentity(r, cfg.TrustProxy)

With trustProxy enabled the first X-Forwarded-For address (then X-Real-IP)
is used, which is only correct behind a proxy that overwrites those headers.

This is a known weakness rather than a security boundary: clients sharing
a NAT share one vote, and clients that control their source address can
vote more than once.
*/
package auth
