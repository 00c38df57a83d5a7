// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"

	"github.com/danielhkuo/quickly-vote/models"
)

// previewOptions is how many option titles a list row shows
const previewOptions = 3

// DeletePrompt is passed to the confirm callback of ListView.Delete
const DeletePrompt = "Are you sure you want to delete this poll?"

// Stats summarizes the loaded polls
type Stats struct {
	Polls        int
	TotalVotes   int
	TotalOptions int
}

// ListView shows every active poll
type ListView struct {
	api    API
	Polls  []models.Poll
	Loaded bool
	Notice *Notification
}

func NewListView(api API) *ListView {
	return &ListView{api: api}
}

// Load fetches the poll list
func (v *ListView) Load(ctx context.Context) error {
	polls, err := v.api.ListPolls(ctx)
	if err != nil {
		v.Notice = NewNotification(LevelError, errorMessage(err))
		return err
	}
	v.Polls = polls
	v.Loaded = true
	return nil
}

// Stats counts polls, votes and options across the loaded list
func (v *ListView) Stats() Stats {
	s := Stats{Polls: len(v.Polls)}
	for _, p := range v.Polls {
		s.TotalOptions += len(p.Options)
		for _, o := range p.Options {
			s.TotalVotes += o.Votes
		}
	}
	return s
}

// Delete removes a poll after confirm approves it, then reloads the list.
// A declined confirmation sends nothing and reports false.
func (v *ListView) Delete(ctx context.Context, pollID string, confirm func(prompt string) bool) (bool, error) {
	if confirm != nil && !confirm(DeletePrompt) {
		return false, nil
	}

	if err := v.api.DeletePoll(ctx, pollID); err != nil {
		v.Notice = NewNotification(LevelError, errorMessage(err))
		return false, err
	}

	if err := v.Load(ctx); err != nil {
		return true, err
	}
	v.Notice = NewNotification(LevelSuccess, "Poll deleted successfully!")
	return true, nil
}

// optionPreview lists the first few option titles and how many are hidden
func optionPreview(options []models.Option) string {
	titles := make([]string, 0, previewOptions)
	for i, o := range options {
		if i == previewOptions {
			break
		}
		titles = append(titles, o.Title)
	}
	preview := strings.Join(titles, ", ")
	if extra := len(options) - previewOptions; extra > 0 {
		preview += fmt.Sprintf(" +%d more", extra)
	}
	return preview
}

func (v *ListView) Render(w io.Writer) {
	v.Notice.Render(w)

	if len(v.Polls) == 0 {
		fmt.Fprintln(w, "No polls available")
		fmt.Fprintln(w, "Be the first to create a poll and start collecting votes!")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = true
	t.SetTitle("Active Polls")
	t.AppendHeader(table.Row{"ID", "Poll", "Options", "Created"})
	for _, p := range v.Polls {
		t.AppendRow(table.Row{
			p.ID,
			p.Title + "\n" + p.Description,
			fmt.Sprintf("%d options\n%s", len(p.Options), optionPreview(p.Options)),
			humanize.Time(p.CreatedAt),
		})
	}
	t.Render()

	fmt.Fprintln(w, "Vote: pollctl vote <id>    Results: pollctl results <id>")
	fmt.Fprintln(w)

	s := v.Stats()
	st := table.NewWriter()
	st.SetOutputMirror(w)
	st.SetStyle(table.StyleLight)
	st.SetTitle("Platform Statistics")
	st.AppendHeader(table.Row{"Active Polls", "Total Votes", "Poll Options"})
	st.AppendRow(table.Row{
		humanize.Comma(int64(s.Polls)),
		humanize.Comma(int64(s.TotalVotes)),
		humanize.Comma(int64(s.TotalOptions)),
	})
	st.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	st.Render()
}
