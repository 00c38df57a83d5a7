// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
)

func testPoll(ids ...string) *models.Poll {
	p := &models.Poll{ID: "p1", Title: "Poll", Description: "desc"}
	for _, id := range ids {
		p.Options = append(p.Options, models.Option{ID: id, Title: "Option " + id})
	}
	return p
}

func TestCompute_Example(t *testing.T) {
	res := Compute(testPoll("A", "B"), map[string]int{"A": 3, "B": 1})

	if res.TotalVotes != 4 {
		t.Errorf("TotalVotes = %d, want 4", res.TotalVotes)
	}
	if res.Options[0].Percentage != 75 {
		t.Errorf("A percentage = %v, want 75", res.Options[0].Percentage)
	}
	if res.Options[1].Percentage != 25 {
		t.Errorf("B percentage = %v, want 25", res.Options[1].Percentage)
	}
	if res.LeadingOptionID != "A" {
		t.Errorf("LeadingOptionID = %q, want A", res.LeadingOptionID)
	}
	if res.PollID != "p1" || res.Title != "Poll" || res.Description != "desc" {
		t.Errorf("Poll metadata not copied: %+v", res)
	}
}

func TestCompute_NoVotes(t *testing.T) {
	res := Compute(testPoll("A", "B", "C"), map[string]int{})

	if res.TotalVotes != 0 {
		t.Errorf("TotalVotes = %d, want 0", res.TotalVotes)
	}
	for _, opt := range res.Options {
		if opt.Percentage != 0 {
			t.Errorf("Option %s percentage = %v, want 0", opt.ID, opt.Percentage)
		}
	}
	if res.LeadingOptionID != "" {
		t.Errorf("Expected no leader, got %q", res.LeadingOptionID)
	}
	if _, ok := Leading(res); ok {
		t.Error("Leading() should report no leader without votes")
	}
}

func TestCompute_SumMatchesTotal(t *testing.T) {
	cases := []map[string]int{
		{"A": 1},
		{"A": 1, "B": 1, "C": 1},
		{"A": 7, "B": 0, "C": 13},
		{"A": 100, "B": 250, "C": 3},
	}

	for _, counts := range cases {
		res := Compute(testPoll("A", "B", "C"), counts)
		sum := 0
		for _, opt := range res.Options {
			sum += opt.Votes
		}
		if sum != res.TotalVotes {
			t.Errorf("sum of votes %d != total %d for %v", sum, res.TotalVotes, counts)
		}
	}
}

func TestCompute_IgnoresUnknownOptions(t *testing.T) {
	res := Compute(testPoll("A", "B"), map[string]int{"A": 1, "ghost": 5})
	if res.TotalVotes != 1 {
		t.Errorf("TotalVotes = %d, want 1", res.TotalVotes)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		count, total int
		want         float64
	}{
		{0, 0, 0},
		{1, 3, 33.33},
		{2, 3, 66.67},
		{1, 8, 12.5},
		{5, 5, 100},
	}

	for _, tt := range tests {
		if got := Percentage(tt.count, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %v, want %v", tt.count, tt.total, got, tt.want)
		}
	}
}

func TestLeading_TieBreaksOnOptionOrder(t *testing.T) {
	res := Compute(testPoll("A", "B", "C"), map[string]int{"A": 1, "B": 4, "C": 4})

	lead, ok := Leading(res)
	if !ok {
		t.Fatal("Expected a leader")
	}
	if lead.ID != "B" {
		t.Errorf("Leading() = %s, want B (first of the tied options)", lead.ID)
	}
}

func TestSortedForDisplay(t *testing.T) {
	res := Compute(testPoll("A", "B", "C", "D"), map[string]int{"A": 1, "B": 3, "C": 1, "D": 5})

	sorted := SortedForDisplay(res)
	want := []string{"D", "B", "A", "C"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].ID, id)
		}
	}

	// Underlying order untouched
	for i, id := range []string{"A", "B", "C", "D"} {
		if res.Options[i].ID != id {
			t.Errorf("res.Options[%d] = %s, want %s", i, res.Options[i].ID, id)
		}
	}
}
