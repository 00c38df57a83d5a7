// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/cli"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/views"
)

// Commands returns the factories for every subcommand
func Commands(meta Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"list": func() (cli.Command, error) {
			return &ListCommand{Meta: meta}, nil
		},
		"create": func() (cli.Command, error) {
			return &CreateCommand{Meta: meta}, nil
		},
		"vote": func() (cli.Command, error) {
			return &VoteCommand{Meta: meta}, nil
		},
		"results": func() (cli.Command, error) {
			return &ResultsCommand{Meta: meta}, nil
		},
		"delete": func() (cli.Command, error) {
			return &DeleteCommand{Meta: meta}, nil
		},
		"health": func() (cli.Command, error) {
			return &HealthCommand{Meta: meta}, nil
		},
	}
}

type ListCommand struct {
	Meta
}

func (c *ListCommand) Run(args []string) int {
	fs := c.FlagSet("list")
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	view := views.NewListView(c.API())
	if err := view.Load(ctx); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.output(view.Render)
	return 0
}

func (c *ListCommand) Synopsis() string {
	return "List active polls"
}

func (c *ListCommand) Help() string {
	return strings.TrimSpace(`
Usage: pollctl list [options]

  Lists every active poll with its options and platform statistics.

Options:
` + addrHelp)
}

// optionFlag collects repeated -option values of the form
// "title" or "title|description"
type optionFlag []views.OptionField

func (o *optionFlag) String() string {
	titles := make([]string, len(*o))
	for i, f := range *o {
		titles[i] = f.Title
	}
	return strings.Join(titles, ",")
}

func (o *optionFlag) Set(v string) error {
	title, desc, _ := strings.Cut(v, "|")
	*o = append(*o, views.OptionField{Title: title, Description: desc})
	return nil
}

type CreateCommand struct {
	Meta
}

func (c *CreateCommand) Run(args []string) int {
	var title, description string
	var options optionFlag

	fs := c.FlagSet("create")
	fs.StringVar(&title, "title", "", "poll title")
	fs.StringVar(&description, "description", "", "poll description")
	fs.Var(&options, "option", "option, repeatable")
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	view := views.NewCreateView(c.API())
	view.Title = title
	view.Description = description
	for i, o := range options {
		if err := view.SetOption(i, o.Title, o.Description); err != nil {
			c.Ui.Error(err.Error())
			return 1
		}
	}

	if _, err := view.Submit(ctx); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.output(view.Render)
	return 0
}

func (c *CreateCommand) Synopsis() string {
	return "Create a poll"
}

func (c *CreateCommand) Help() string {
	return strings.TrimSpace(fmt.Sprintf(`
Usage: pollctl create -title=<title> -description=<text> -option=<title> ...

  Creates a poll with %d to %d options. Blank options are ignored.

Options:

  -title=<title>         Poll title (required, at most %d characters).
  -description=<text>    Poll description (required).
  -option=<title|desc>   An option, with an optional description after "|".
                         Repeat for every option.
`, models.MinOptions, models.MaxOptions, models.MaxTitleLen) + addrHelp)
}

type VoteCommand struct {
	Meta
}

func (c *VoteCommand) Run(args []string) int {
	var optionID string

	fs := c.FlagSet("vote")
	fs.StringVar(&optionID, "option", "", "option ID")
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	if fs.NArg() != 1 {
		c.Ui.Error("vote expects exactly one poll ID")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	view := views.NewVoteView(c.API(), fs.Arg(0))
	if err := view.Load(ctx); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	if optionID == "" {
		c.output(view.Render)
		answer, err := c.Ui.Ask("Option ID: ")
		if err != nil {
			c.Ui.Error(err.Error())
			return 1
		}
		optionID = strings.TrimSpace(answer)
	}

	if optionID != "" {
		if err := view.Select(optionID); err != nil {
			c.Ui.Error(err.Error())
			return 1
		}
	}

	if err := view.Submit(ctx); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.output(view.Render)
	return 0
}

func (c *VoteCommand) Synopsis() string {
	return "Cast a vote on a poll"
}

func (c *VoteCommand) Help() string {
	return strings.TrimSpace(`
Usage: pollctl vote [options] <poll-id>

  Casts one vote. Without -option the poll is shown and the option ID is
  read from the terminal.

Options:

  -option=<id>  Option to vote for.
` + addrHelp)
}

type ResultsCommand struct {
	Meta
}

func (c *ResultsCommand) Run(args []string) int {
	var watch bool
	var interval time.Duration
	var count int

	fs := c.FlagSet("results")
	fs.BoolVar(&watch, "watch", false, "keep refreshing")
	fs.DurationVar(&interval, "interval", views.DefaultRefreshInterval, "refresh interval")
	fs.IntVar(&count, "count", 0, "stop after this many refreshes")
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	if fs.NArg() != 1 {
		c.Ui.Error("results expects exactly one poll ID")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	view := views.NewResultsView(c.API(), fs.Arg(0))

	if !watch {
		if err := view.Load(ctx); err != nil {
			c.Ui.Error(err.Error())
			return 1
		}
		c.output(view.Render)
		return 0
	}

	updates := 0
	view.Watch(ctx, interval, func(v *views.ResultsView) {
		c.output(v.Render)
		updates++
		if count > 0 && updates >= count {
			cancel()
		}
	})
	return 0
}

func (c *ResultsCommand) Synopsis() string {
	return "Show poll results"
}

func (c *ResultsCommand) Help() string {
	return strings.TrimSpace(`
Usage: pollctl results [options] <poll-id>

  Shows vote counts and percentages, most votes first.

Options:

  -watch          Refresh until interrupted.
  -interval=<d>   Refresh interval with -watch. Defaults to 10s.
  -count=<n>      Stop after n refreshes with -watch.
` + addrHelp)
}

type DeleteCommand struct {
	Meta
}

func (c *DeleteCommand) Run(args []string) int {
	var yes bool

	fs := c.FlagSet("delete")
	fs.BoolVar(&yes, "yes", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	if fs.NArg() != 1 {
		c.Ui.Error("delete expects exactly one poll ID")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	confirm := func(prompt string) bool {
		if yes {
			return true
		}
		answer, err := c.Ui.Ask(prompt + " [y/N]: ")
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}

	view := views.NewListView(c.API())
	deleted, err := view.Delete(ctx, fs.Arg(0), confirm)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	if !deleted {
		c.Ui.Info("Delete cancelled")
		return 0
	}
	c.output(view.Render)
	return 0
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a poll and its votes"
}

func (c *DeleteCommand) Help() string {
	return strings.TrimSpace(`
Usage: pollctl delete [options] <poll-id>

  Deletes a poll, its options and all of its votes after confirmation.

Options:

  -yes  Do not ask for confirmation.
` + addrHelp)
}

type HealthCommand struct {
	Meta
}

func (c *HealthCommand) Run(args []string) int {
	fs := c.FlagSet("health")
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	health, err := c.API().Health(ctx)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.Ui.Output(fmt.Sprintf("%s %s %s", health.Service, health.Version, health.Status))
	return 0
}

func (c *HealthCommand) Synopsis() string {
	return "Check that the API is up"
}

func (c *HealthCommand) Help() string {
	return strings.TrimSpace(`
Usage: pollctl health [options]

  Calls the health endpoint and prints the service, version and status.

Options:
` + addrHelp)
}
