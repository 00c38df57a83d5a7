// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quickly-vote/models"
)

// SamplePollID identifies the poll inserted by Seed
const SamplePollID = "sample-poll-001"

// PollCreator is the part of the poll store Seed needs
type PollCreator interface {
	Create(ctx context.Context, poll *models.Poll) (*models.Poll, error)
}

// SamplePoll returns the poll inserted by Seed
func SamplePoll() *models.Poll {
	return &models.Poll{
		ID:          SamplePollID,
		Title:       "What's your favorite programming language?",
		Description: "Vote for your preferred programming language for backend development",
		Options: []models.Option{
			{ID: "option-001", Title: "Python", Description: "Great for data science and web development"},
			{ID: "option-002", Title: "JavaScript", Description: "Full-stack development with Node.js"},
			{ID: "option-003", Title: "Java", Description: "Enterprise-grade applications"},
			{ID: "option-004", Title: "Go", Description: "Fast and efficient for microservices"},
		},
		Active: true,
	}
}

// Seed inserts the sample poll. Safe to call multiple times: an existing
// sample poll is left untouched.
func Seed(ctx context.Context, polls PollCreator) error {
	_, err := polls.Create(ctx, SamplePoll())
	if errors.Is(err, models.ErrDuplicateKey) {
		slog.Info("sample poll already present", "poll_id", SamplePollID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to seed sample poll: %w", err)
	}

	slog.Info("sample poll inserted", "poll_id", SamplePollID)
	return nil
}
