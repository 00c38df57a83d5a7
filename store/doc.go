// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists polls and votes.

# Poll Store

	polls := store.NewPollStore(conn)
	poll, err := polls.Create(ctx, &models.Poll{...}) // ErrDuplicateKey on id collision
	poll, err = polls.Get(ctx, id)                     // ErrNotFound
	list, err := polls.List(ctx)                       // active polls, newest first
	err = polls.Delete(ctx, id)                        // removes votes too; ErrNotFound

Option vote counts on returned polls are derived from vote rows at read time.

# Vote Store

	votes := store.NewVoteStore(conn)
	vote, err := votes.Cast(ctx, pollID, optionID, voterID)
	counts, err := votes.CountsByOption(ctx, pollID)

Cast is one INSERT ... SELECT statement guarded by the unique
(poll_id, voter_ip) index, never a read followed by a write. Errors:

  - models.ErrAlreadyVoted: the voter already has a vote on this poll
  - models.ErrNotFound: poll missing or inactive, or option not in poll

CountsByOption lists every option of the poll, with zero for options
without votes.
*/
package store
