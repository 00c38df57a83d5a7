// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/store"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func TestPollStore_CreateAndGet(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	polls := store.NewPollStore(conn)
	ctx := context.Background()

	created, err := polls.Create(ctx, &models.Poll{
		Title:       "Lunch",
		Description: "Where do we eat?",
		Options: []models.Option{
			{Title: "Pizza", Description: "Slices"},
			{Title: "Sushi"},
			{Title: "Tacos"},
		},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if created.ID == "" {
		t.Error("Expected generated poll ID")
	}
	if !created.Active {
		t.Error("Expected new poll to be active")
	}
	if created.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
	for _, opt := range created.Options {
		if opt.ID == "" {
			t.Errorf("Expected generated option ID for %q", opt.Title)
		}
	}

	got, err := polls.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "Lunch" || got.Description != "Where do we eat?" {
		t.Errorf("Unexpected poll %+v", got)
	}

	// Options keep creation order
	wantTitles := []string{"Pizza", "Sushi", "Tacos"}
	if len(got.Options) != len(wantTitles) {
		t.Fatalf("Expected %d options, got %d", len(wantTitles), len(got.Options))
	}
	for i, want := range wantTitles {
		if got.Options[i].Title != want {
			t.Errorf("Option %d = %q, want %q", i, got.Options[i].Title, want)
		}
		if got.Options[i].ID != created.Options[i].ID {
			t.Errorf("Option %d ID = %q, want %q", i, got.Options[i].ID, created.Options[i].ID)
		}
	}
	if got.Options[0].Description != "Slices" {
		t.Errorf("Expected option description to round-trip, got %q", got.Options[0].Description)
	}
}

func TestPollStore_CreateDuplicateKey(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	polls := store.NewPollStore(conn)
	ctx := context.Background()

	poll := &models.Poll{
		ID:          "fixed-id",
		Title:       "First",
		Description: "d",
		Options:     []models.Option{{Title: "A"}, {Title: "B"}},
	}
	if _, err := polls.Create(ctx, poll); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err := polls.Create(ctx, poll)
	if !errors.Is(err, models.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}

	// Duplicate option IDs inside one poll are rejected and nothing is written
	_, err = polls.Create(ctx, &models.Poll{
		ID:          "other-id",
		Title:       "Second",
		Description: "d",
		Options:     []models.Option{{ID: "x", Title: "A"}, {ID: "x", Title: "B"}},
	})
	if !errors.Is(err, models.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey for repeated option id, got %v", err)
	}
	if _, err := polls.Get(ctx, "other-id"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected rolled back poll to be absent, got %v", err)
	}
}

func TestPollStore_GetNotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	_, err := store.NewPollStore(conn).Get(context.Background(), "missing")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestPollStore_ListIncludesVoteCounts(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	polls := store.NewPollStore(conn)

	p1 := testutil.CreateTestPoll(t, conn, "One", "A", "B")
	p2 := testutil.CreateTestPoll(t, conn, "Two", "C", "D")
	testutil.CastTestVotes(t, conn, p1.ID, p1.Options[1].ID, "voter", 2)

	list, err := polls.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 polls, got %d", len(list))
	}

	byID := map[string]models.Poll{}
	for _, p := range list {
		byID[p.ID] = p
	}
	if byID[p1.ID].Options[1].Votes != 2 || byID[p1.ID].Options[0].Votes != 0 {
		t.Errorf("Unexpected vote counts %+v", byID[p1.ID].Options)
	}
	if len(byID[p2.ID].Options) != 2 {
		t.Errorf("Expected options on second poll, got %+v", byID[p2.ID].Options)
	}
}

func TestPollStore_ListSkipsInactive(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	p := testutil.CreateTestPoll(t, conn, "Hidden", "A", "B")

	if _, err := conn.Exec("UPDATE poll SET active = $1 WHERE id = $2", false, p.ID); err != nil {
		t.Fatalf("Failed to deactivate poll: %v", err)
	}

	list, err := store.NewPollStore(conn).List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected inactive poll to be hidden, got %d polls", len(list))
	}
}

func TestPollStore_DeleteCascadesVotes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	polls := store.NewPollStore(conn)
	ctx := context.Background()

	p := testutil.CreateTestPoll(t, conn, "Doomed", "A", "B")
	keep := testutil.CreateTestPoll(t, conn, "Kept", "A", "B")
	testutil.CastTestVotes(t, conn, p.ID, p.Options[0].ID, "voter", 3)
	testutil.CastTestVotes(t, conn, keep.ID, keep.Options[0].ID, "voter", 1)

	if err := polls.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := polls.Get(ctx, p.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
	if n := testutil.CountVotes(t, conn, p.ID); n != 0 {
		t.Errorf("Expected votes to be deleted, got %d", n)
	}
	if n := testutil.CountVotes(t, conn, keep.ID); n != 1 {
		t.Errorf("Expected other poll's votes untouched, got %d", n)
	}

	// Second delete reports NotFound
	if err := polls.Delete(ctx, p.ID); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on repeat delete, got %v", err)
	}
}

func TestVoteStore_Cast(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	votes := store.NewVoteStore(conn)
	ctx := context.Background()

	p := testutil.CreateTestPoll(t, conn, "Cast", "A", "B")
	other := testutil.CreateTestPoll(t, conn, "Other", "C", "D")

	tests := []struct {
		name     string
		pollID   string
		optionID string
		voter    string
		wantErr  error
	}{
		{"first vote", p.ID, p.Options[0].ID, "1.1.1.1", nil},
		{"same voter again", p.ID, p.Options[1].ID, "1.1.1.1", models.ErrAlreadyVoted},
		{"other voter", p.ID, p.Options[1].ID, "2.2.2.2", nil},
		{"same voter other poll", other.ID, other.Options[0].ID, "1.1.1.1", nil},
		{"unknown poll", "missing", p.Options[0].ID, "3.3.3.3", models.ErrNotFound},
		{"option of another poll", p.ID, other.Options[0].ID, "3.3.3.3", models.ErrNotFound},
		{"unknown option", p.ID, "nope", "3.3.3.3", models.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vote, err := votes.Cast(ctx, tt.pollID, tt.optionID, tt.voter)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Cast() error = %v", err)
			}
			if vote.ID == "" || vote.PollID != tt.pollID || vote.OptionID != tt.optionID {
				t.Errorf("Unexpected vote %+v", vote)
			}
		})
	}

	counts, err := votes.CountsByOption(ctx, p.ID)
	if err != nil {
		t.Fatalf("CountsByOption() error = %v", err)
	}
	if counts[p.Options[0].ID] != 1 || counts[p.Options[1].ID] != 1 {
		t.Errorf("Failed casts must not change counts, got %v", counts)
	}
}

func TestVoteStore_CastInactivePoll(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	p := testutil.CreateTestPoll(t, conn, "Closed", "A", "B")
	if _, err := conn.Exec("UPDATE poll SET active = $1 WHERE id = $2", false, p.ID); err != nil {
		t.Fatalf("Failed to deactivate poll: %v", err)
	}

	_, err := store.NewVoteStore(conn).Cast(context.Background(), p.ID, p.Options[0].ID, "1.1.1.1")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	var tagged *models.Error
	if errors.As(err, &tagged) && tagged.Detail != "Poll not found or inactive" {
		t.Errorf("Unexpected detail %q", tagged.Detail)
	}
}

func TestVoteStore_CountsByOption(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	votes := store.NewVoteStore(conn)
	ctx := context.Background()

	p := testutil.CreateTestPoll(t, conn, "Counts", "A", "B", "C")
	testutil.CastTestVotes(t, conn, p.ID, p.Options[0].ID, "a", 3)
	testutil.CastTestVotes(t, conn, p.ID, p.Options[1].ID, "b", 1)

	counts, err := votes.CountsByOption(ctx, p.ID)
	if err != nil {
		t.Fatalf("CountsByOption() error = %v", err)
	}

	want := map[string]int{
		p.Options[0].ID: 3,
		p.Options[1].ID: 1,
		p.Options[2].ID: 0,
	}
	if len(counts) != len(want) {
		t.Fatalf("Expected every option present, got %v", counts)
	}
	for id, n := range want {
		if counts[id] != n {
			t.Errorf("counts[%s] = %d, want %d", id, counts[id], n)
		}
	}

	if _, err := votes.CountsByOption(ctx, "missing"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown poll, got %v", err)
	}
}

// TestVoteStore_ConcurrentSameVoter verifies the unique index lets exactly
// one of many simultaneous casts from one voter through
func TestVoteStore_ConcurrentSameVoter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	votes := store.NewVoteStore(conn)
	p := testutil.CreateTestPoll(t, conn, "Race", "A", "B")

	const attempts = 10
	var successCount, alreadyVoted atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := votes.Cast(context.Background(), p.ID, p.Options[i%2].ID, "10.0.0.1")
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, models.ErrAlreadyVoted):
				alreadyVoted.Add(1)
			default:
				t.Errorf("Unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful vote, got %d", successCount.Load())
	}
	if alreadyVoted.Load() != attempts-1 {
		t.Errorf("Expected %d AlreadyVoted errors, got %d", attempts-1, alreadyVoted.Load())
	}
	if n := testutil.CountVotes(t, conn, p.ID); n != 1 {
		t.Errorf("Expected 1 vote row, got %d", n)
	}
}

func TestSeed(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	polls := store.NewPollStore(conn)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := db.Seed(ctx, polls); err != nil {
			t.Fatalf("Seed() run %d error = %v", i+1, err)
		}
	}

	p, err := polls.Get(ctx, db.SamplePollID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(p.Options) != 4 {
		t.Fatalf("Expected 4 sample options, got %d", len(p.Options))
	}
	for i, opt := range p.Options {
		if want := fmt.Sprintf("option-%03d", i+1); opt.ID != want {
			t.Errorf("Option %d ID = %q, want %q", i, opt.ID, want)
		}
	}
}
