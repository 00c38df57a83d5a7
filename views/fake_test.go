// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/results"
)

// fakeAPI is an in-memory API with per-call error injection
type fakeAPI struct {
	mu      sync.Mutex
	polls   []models.Poll
	voters  map[string]bool
	calls   map[string]int
	errs    map[string]error
	results []*models.Results // returned in order by GetResults when set
}

func newFakeAPI(polls ...models.Poll) *fakeAPI {
	return &fakeAPI{
		polls:  polls,
		voters: make(map[string]bool),
		calls:  make(map[string]int),
		errs:   make(map[string]error),
	}
}

func (f *fakeAPI) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.errs[name]
}

func (f *fakeAPI) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeAPI) find(id string) (int, bool) {
	for i, p := range f.polls {
		if p.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (f *fakeAPI) ListPolls(ctx context.Context) ([]models.Poll, error) {
	if err := f.record("ListPolls"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Poll, len(f.polls))
	copy(out, f.polls)
	return out, nil
}

func (f *fakeAPI) GetPoll(ctx context.Context, id string) (*models.Poll, error) {
	if err := f.record("GetPoll"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.find(id)
	if !ok {
		return nil, models.NewError(models.KindNotFound, "Poll not found")
	}
	p := f.polls[i]
	return &p, nil
}

func (f *fakeAPI) CreatePoll(ctx context.Context, req models.CreatePollRequest) (*models.Poll, error) {
	if err := f.record("CreatePoll"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p := models.Poll{
		ID:          "created-poll",
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
		Active:      true,
	}
	for i, o := range req.Options {
		p.Options = append(p.Options, models.Option{ID: string(rune('a' + i)), Title: o.Title, Description: o.Description})
	}
	f.polls = append(f.polls, p)
	return &p, nil
}

func (f *fakeAPI) CastVote(ctx context.Context, pollID, optionID string) (*models.CastVoteResponse, error) {
	if err := f.record("CastVote"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.voters[pollID] {
		return nil, models.NewError(models.KindAlreadyVoted, "You have already voted for this poll")
	}
	i, ok := f.find(pollID)
	if !ok || !f.polls[i].HasOption(optionID) {
		return nil, models.NewError(models.KindNotFound, "Invalid option selected")
	}
	for j := range f.polls[i].Options {
		if f.polls[i].Options[j].ID == optionID {
			f.polls[i].Options[j].Votes++
		}
	}
	f.voters[pollID] = true
	return &models.CastVoteResponse{Message: "Vote cast successfully", VoteID: "vote-1"}, nil
}

func (f *fakeAPI) GetResults(ctx context.Context, pollID string) (*models.Results, error) {
	if err := f.record("GetResults"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.results) > 0 {
		res := f.results[0]
		if len(f.results) > 1 {
			f.results = f.results[1:]
		}
		return res, nil
	}
	i, ok := f.find(pollID)
	if !ok {
		return nil, models.NewError(models.KindNotFound, "Poll not found")
	}
	counts := make(map[string]int)
	for _, o := range f.polls[i].Options {
		counts[o.ID] = o.Votes
	}
	res := results.Compute(&f.polls[i], counts)
	return &res, nil
}

func (f *fakeAPI) DeletePoll(ctx context.Context, id string) error {
	if err := f.record("DeletePoll"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.find(id)
	if !ok {
		return models.NewError(models.KindNotFound, "Poll not found")
	}
	f.polls = append(f.polls[:i], f.polls[i+1:]...)
	return nil
}

// samplePoll returns a poll with the given option titles and vote counts
func samplePoll(id string, votes map[string]int, titles ...string) models.Poll {
	p := models.Poll{
		ID:          id,
		Title:       "Poll " + id,
		Description: "About " + id,
		CreatedAt:   time.Now().Add(-2 * time.Hour),
		Active:      true,
	}
	for i, t := range titles {
		oid := id + "-" + string(rune('a'+i))
		p.Options = append(p.Options, models.Option{ID: oid, Title: t, Votes: votes[t]})
	}
	return p
}
