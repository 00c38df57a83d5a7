// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/table"

	"github.com/danielhkuo/quickly-vote/models"
)

// VoteView casts a single vote on one poll. After a successful vote the
// view refuses further submissions.
type VoteView struct {
	api      API
	PollID   string
	Poll     *models.Poll
	Selected string
	Voted    bool
	VoteID   string
	Notice   *Notification
}

func NewVoteView(api API, pollID string) *VoteView {
	return &VoteView{api: api, PollID: pollID}
}

// Load fetches the poll
func (v *VoteView) Load(ctx context.Context) error {
	poll, err := v.api.GetPoll(ctx, v.PollID)
	if err != nil {
		v.Notice = NewNotification(LevelError, errorMessage(err))
		return err
	}
	v.Poll = poll
	return nil
}

// Select marks optionID as the choice. The option must belong to the
// loaded poll.
func (v *VoteView) Select(optionID string) error {
	if v.Poll == nil || !v.Poll.HasOption(optionID) {
		return models.NewError(models.KindValidation, "Invalid option selected")
	}
	v.Selected = optionID
	return nil
}

// Submit casts the selected vote
func (v *VoteView) Submit(ctx context.Context) error {
	if v.Voted {
		err := models.NewError(models.KindAlreadyVoted, "You have already voted for this poll")
		v.Notice = NewNotification(LevelWarning, err.Detail)
		return err
	}
	if v.Selected == "" {
		err := models.NewError(models.KindValidation, "Please select an option to vote")
		v.Notice = NewNotification(LevelWarning, err.Detail)
		return err
	}

	resp, err := v.api.CastVote(ctx, v.PollID, v.Selected)
	if err != nil {
		v.Notice = NewNotification(LevelError, errorMessage(err))
		return err
	}

	v.Voted = true
	v.VoteID = resp.VoteID
	v.Notice = NewNotification(LevelSuccess, "Vote cast successfully!")
	return nil
}

func (v *VoteView) Render(w io.Writer) {
	v.Notice.Render(w)

	if v.Poll == nil {
		fmt.Fprintln(w, "Poll not available")
		return
	}

	fmt.Fprintln(w, v.Poll.Title)
	fmt.Fprintln(w, v.Poll.Description)
	fmt.Fprintln(w)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "ID", "Option", "Description"})
	for _, o := range v.Poll.Options {
		mark := "( )"
		if o.ID == v.Selected {
			mark = "(•)"
		}
		t.AppendRow(table.Row{mark, o.ID, o.Title, o.Description})
	}
	t.Render()

	if v.Voted {
		fmt.Fprintf(w, "Thanks for voting! Results: pollctl results %s\n", v.PollID)
	}
}
