// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/danielhkuo/quickly-vote/models"
)

// API is the part of the REST client the views call
type API interface {
	ListPolls(ctx context.Context) ([]models.Poll, error)
	GetPoll(ctx context.Context, id string) (*models.Poll, error)
	CreatePoll(ctx context.Context, req models.CreatePollRequest) (*models.Poll, error)
	CastVote(ctx context.Context, pollID, optionID string) (*models.CastVoteResponse, error)
	GetResults(ctx context.Context, pollID string) (*models.Results, error)
	DeletePoll(ctx context.Context, id string) error
}

// now is replaced in tests
var now = time.Now

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// DefaultNotificationTTL is how long a notification stays visible
const DefaultNotificationTTL = 5 * time.Second

// Notification is a transient message shown above a view
type Notification struct {
	Message   string
	Level     Level
	CreatedAt time.Time
	TTL       time.Duration
	dismissed bool
}

func NewNotification(level Level, message string) *Notification {
	return &Notification{
		Message:   message,
		Level:     level,
		CreatedAt: now(),
		TTL:       DefaultNotificationTTL,
	}
}

func (n *Notification) Dismiss() {
	n.dismissed = true
}

// Visible reports whether the notification should still be shown at t
func (n *Notification) Visible(t time.Time) bool {
	if n == nil || n.dismissed {
		return false
	}
	return t.Sub(n.CreatedAt) < n.TTL
}

var levelIcons = map[Level]string{
	LevelSuccess: "✓",
	LevelError:   "✗",
	LevelInfo:    "i",
	LevelWarning: "!",
}

// Render writes the notification as one line, or nothing once it is gone
func (n *Notification) Render(w io.Writer) {
	if !n.Visible(now()) {
		return
	}
	fmt.Fprintf(w, "[%s] %s\n\n", levelIcons[n.Level], n.Message)
}

// errorMessage returns the text shown for a failed API call
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
