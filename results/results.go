// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"math"
	"sort"

	"github.com/danielhkuo/quickly-vote/models"
)

// Compute joins vote counts onto the poll's options. Options missing from
// counts have zero votes. Percentages are rounded to two decimals and are
// all zero when nobody has voted.
func Compute(poll *models.Poll, counts map[string]int) models.Results {
	res := models.Results{
		PollID:      poll.ID,
		Title:       poll.Title,
		Description: poll.Description,
		Options:     make([]models.OptionResult, len(poll.Options)),
	}

	for i, opt := range poll.Options {
		n := counts[opt.ID]
		res.TotalVotes += n
		res.Options[i] = models.OptionResult{
			ID:          opt.ID,
			Title:       opt.Title,
			Description: opt.Description,
			Votes:       n,
		}
	}

	if res.TotalVotes > 0 {
		for i := range res.Options {
			res.Options[i].Percentage = Percentage(res.Options[i].Votes, res.TotalVotes)
		}
		if lead, ok := Leading(res); ok {
			res.LeadingOptionID = lead.ID
		}
	}

	return res
}

// Percentage returns count as a share of total, rounded to two decimals
func Percentage(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(count)*100*100/float64(total)) / 100
}

// Leading returns the first option with the highest vote count in the
// poll's option order. There is no leader before the first vote.
func Leading(res models.Results) (models.OptionResult, bool) {
	if res.TotalVotes == 0 || len(res.Options) == 0 {
		return models.OptionResult{}, false
	}

	best := 0
	for i, opt := range res.Options {
		if opt.Votes > res.Options[best].Votes {
			best = i
		}
	}
	return res.Options[best], true
}

// SortedForDisplay returns a copy of the options ordered by votes,
// highest first. Ties keep option order; res is not modified.
func SortedForDisplay(res models.Results) []models.OptionResult {
	sorted := make([]models.OptionResult, len(res.Options))
	copy(sorted, res.Options)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Votes > sorted[j].Votes
	})
	return sorted
}
