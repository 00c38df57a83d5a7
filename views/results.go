// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/results"
)

// DefaultRefreshInterval is how often Watch refetches results
const DefaultRefreshInterval = 10 * time.Second

const barWidth = 20

// ResultsView shows the live results of one poll. It is safe to Load
// from a watcher goroutine while rendering.
type ResultsView struct {
	api    API
	PollID string

	mu        sync.Mutex
	results   *models.Results
	updatedAt time.Time
	notice    *Notification
}

func NewResultsView(api API, pollID string) *ResultsView {
	return &ResultsView{api: api, PollID: pollID}
}

// Results returns the last fetched results, or nil
func (v *ResultsView) Results() *models.Results {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.results
}

func (v *ResultsView) Notice() *Notification {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notice
}

// Load fetches the results. The last response to arrive wins.
func (v *ResultsView) Load(ctx context.Context) error {
	res, err := v.api.GetResults(ctx, v.PollID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.notice = NewNotification(LevelError, errorMessage(err))
		return err
	}
	v.results = res
	v.updatedAt = now()
	return nil
}

// Watch loads the results immediately and then every interval until ctx
// is canceled. onUpdate, when set, runs after every fetch, failed or not.
// Fetch errors are kept in the notice and do not stop the watch.
func (v *ResultsView) Watch(ctx context.Context, interval time.Duration, onUpdate func(*ResultsView)) error {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	refresh := func() {
		if err := v.Load(ctx); err != nil && ctx.Err() != nil {
			return
		}
		if onUpdate != nil {
			onUpdate(v)
		}
	}

	refresh()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			refresh()
		}
	}
}

// formatPercentage prints 75 as "75%" and 33.33 as "33.33%"
func formatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

func bar(percentage float64) string {
	filled := int(math.Round(percentage / 100 * barWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func (v *ResultsView) Render(w io.Writer) {
	v.mu.Lock()
	res := v.results
	updatedAt := v.updatedAt
	notice := v.notice
	v.mu.Unlock()

	notice.Render(w)

	if res == nil {
		fmt.Fprintln(w, "Results not available")
		return
	}

	fmt.Fprintln(w, res.Title)
	fmt.Fprintln(w, res.Description)
	fmt.Fprintln(w)

	leading, hasLeader := results.Leading(*res)
	leadingPct := "0%"
	if hasLeader {
		leadingPct = formatPercentage(leading.Percentage)
	}

	summary := table.NewWriter()
	summary.SetOutputMirror(w)
	summary.SetStyle(table.StyleLight)
	summary.AppendHeader(table.Row{"Total Votes", "Options", "Leading Option"})
	summary.AppendRow(table.Row{humanize.Comma(int64(res.TotalVotes)), len(res.Options), leadingPct})
	summary.Render()

	if res.TotalVotes == 0 {
		fmt.Fprintln(w, "No votes yet")
		fmt.Fprintf(w, "Be the first to vote: pollctl vote %s\n", res.PollID)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Results")
	t.AppendHeader(table.Row{"#", "Option", "Votes", "Share", ""})
	for i, o := range results.SortedForDisplay(*res) {
		title := o.Title
		if hasLeader && o.ID == leading.ID {
			title += " ★ leading"
		}
		t.AppendRow(table.Row{i + 1, title, humanize.Comma(int64(o.Votes)), formatPercentage(o.Percentage), bar(o.Percentage)})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()

	if !updatedAt.IsZero() {
		fmt.Fprintf(w, "Updated %s\n", humanize.Time(updatedAt))
	}
}
