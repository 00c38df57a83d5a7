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

// OptionField is one editable option row of the create form
type OptionField struct {
	Title       string
	Description string
}

// CreateView is the poll creation form. It always holds between
// models.MinOptions and models.MaxOptions option rows.
type CreateView struct {
	api         API
	Title       string
	Description string
	Options     []OptionField
	Created     *models.Poll
	Notice      *Notification
}

func NewCreateView(api API) *CreateView {
	return &CreateView{
		api:     api,
		Options: make([]OptionField, models.MinOptions),
	}
}

// AddOption appends a blank option row; false when the form is full
func (v *CreateView) AddOption() bool {
	if len(v.Options) >= models.MaxOptions {
		return false
	}
	v.Options = append(v.Options, OptionField{})
	return true
}

// RemoveOption drops row i; false when i is out of range or only the
// minimum number of rows is left
func (v *CreateView) RemoveOption(i int) bool {
	if len(v.Options) <= models.MinOptions || i < 0 || i >= len(v.Options) {
		return false
	}
	v.Options = append(v.Options[:i], v.Options[i+1:]...)
	return true
}

// SetOption fills row i, adding rows as needed up to the maximum
func (v *CreateView) SetOption(i int, title, description string) error {
	if i < 0 {
		return models.NewError(models.KindValidation, "Invalid option row %d", i)
	}
	for i >= len(v.Options) {
		if !v.AddOption() {
			return models.NewError(models.KindValidation, "At most %d options are allowed", models.MaxOptions)
		}
	}
	v.Options[i] = OptionField{Title: title, Description: description}
	return nil
}

// Request returns the trimmed request, without blank option rows
func (v *CreateView) Request() models.CreatePollRequest {
	req := models.CreatePollRequest{
		Title:       v.Title,
		Description: v.Description,
		Options:     make([]models.OptionInput, 0, len(v.Options)),
	}
	for _, o := range v.Options {
		req.Options = append(req.Options, models.OptionInput{Title: o.Title, Description: o.Description})
	}
	return models.NormalizeCreatePoll(req)
}

// Validate applies the same limits the server enforces
func (v *CreateView) Validate() error {
	_, err := models.ValidateCreatePoll(v.Request())
	return err
}

// Submit validates the form and creates the poll. Invalid forms are
// reported without calling the API.
func (v *CreateView) Submit(ctx context.Context) (*models.Poll, error) {
	req, err := models.ValidateCreatePoll(v.Request())
	if err != nil {
		v.Notice = NewNotification(LevelError, errorMessage(err))
		return nil, err
	}

	poll, err := v.api.CreatePoll(ctx, req)
	if err != nil {
		v.Notice = NewNotification(LevelError, errorMessage(err))
		return nil, err
	}

	v.Created = poll
	v.Notice = NewNotification(LevelSuccess, "Poll created successfully!")
	return poll, nil
}

func (v *CreateView) Render(w io.Writer) {
	v.Notice.Render(w)

	if v.Created != nil {
		fmt.Fprintf(w, "Created %q (%s)\n", v.Created.Title, v.Created.ID)
		fmt.Fprintf(w, "Vote: pollctl vote %s\n", v.Created.ID)
		return
	}

	fmt.Fprintf(w, "Title:       %s\n", v.Title)
	fmt.Fprintf(w, "Description: %s\n", v.Description)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Options (%d/%d)", len(v.Options), models.MaxOptions)
	t.AppendHeader(table.Row{"#", "Title", "Description"})
	for i, o := range v.Options {
		t.AppendRow(table.Row{i + 1, o.Title, o.Description})
	}
	t.Render()
}
