// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func getResults(t *testing.T, handler *ResultsHandler, pollID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/polls/"+pollID+"/results", nil)
	req.SetPathValue("id", pollID)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)
	return w
}

func TestGetResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	handler := NewResultsHandler(db, cfg)

	poll := testutil.CreateTestPoll(t, db, "Scores", "A", "B", "C")
	testutil.CastTestVotes(t, db, poll.ID, poll.Options[0].ID, "a", 3)
	testutil.CastTestVotes(t, db, poll.ID, poll.Options[1].ID, "b", 1)

	w := getResults(t, handler, poll.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var res models.Results
	testutil.AssertJSON(t, w, &res)

	if res.PollID != poll.ID || res.Title != "Scores" {
		t.Errorf("Unexpected header fields: %+v", res)
	}
	if res.TotalVotes != 4 {
		t.Errorf("Expected total_votes 4, got %d", res.TotalVotes)
	}
	if res.LeadingOptionID != poll.Options[0].ID {
		t.Errorf("Expected leading option %s, got %s", poll.Options[0].ID, res.LeadingOptionID)
	}

	expected := []struct {
		votes      int
		percentage float64
	}{
		{3, 75},
		{1, 25},
		{0, 0},
	}
	if len(res.Options) != len(expected) {
		t.Fatalf("Expected %d options, got %d", len(expected), len(res.Options))
	}
	sum := 0
	for i, want := range expected {
		got := res.Options[i]
		if got.ID != poll.Options[i].ID {
			t.Errorf("Option %d out of order: %s", i, got.ID)
		}
		if got.Votes != want.votes || got.Percentage != want.percentage {
			t.Errorf("Option %d: expected %d votes / %.2f%%, got %d / %.2f%%",
				i, want.votes, want.percentage, got.Votes, got.Percentage)
		}
		sum += got.Votes
	}
	if sum != res.TotalVotes {
		t.Errorf("Option votes sum to %d, total_votes is %d", sum, res.TotalVotes)
	}
}

func TestGetResults_NoVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	handler := NewResultsHandler(db, cfg)

	poll := testutil.CreateTestPoll(t, db, "Quiet", "A", "B")

	w := getResults(t, handler, poll.ID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var res models.Results
	testutil.AssertJSON(t, w, &res)

	if res.TotalVotes != 0 {
		t.Errorf("Expected 0 total votes, got %d", res.TotalVotes)
	}
	if res.LeadingOptionID != "" {
		t.Errorf("Expected no leading option, got %s", res.LeadingOptionID)
	}
	for _, opt := range res.Options {
		if opt.Percentage != 0 {
			t.Errorf("Expected 0%% for %s, got %.2f", opt.ID, opt.Percentage)
		}
	}
}

func TestGetResults_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig(t)
	handler := NewResultsHandler(db, cfg)

	w := getResults(t, handler, "missing")
	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertErrorKind(t, w, models.KindNotFound)
}
