// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package results aggregates vote counts into poll results.

Everything here is pure; the handlers and views feed it data.

	counts, _ := votes.CountsByOption(ctx, pollID)
	res := results.Compute(poll, counts)

Compute sums the counts into total_votes and gives each option a
percentage rounded to two decimals (0 for every option while total_votes
is 0).

Leading picks the first option with the most votes in the poll's option
order. SortedForDisplay returns a copy sorted by votes descending for
rendering; the results themselves keep option order.
*/
package results
