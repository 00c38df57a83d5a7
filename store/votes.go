// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
)

type VoteStore struct {
	db *sql.DB
}

func NewVoteStore(db *sql.DB) *VoteStore {
	return &VoteStore{db: db}
}

// Cast records a vote with a single atomic insert. The row is only written
// when the poll is active and owns the option; the (poll_id, voter_ip)
// unique index rejects a second vote from the same voter, so concurrent
// casts for one voter cannot both succeed.
func (s *VoteStore) Cast(ctx context.Context, pollID, optionID, voterID string) (*models.Vote, error) {
	vote := &models.Vote{
		ID:        auth.GenerateID(),
		PollID:    pollID,
		OptionID:  optionID,
		VoterIP:   voterID,
		Timestamp: time.Now().UTC(),
	}

	// voted_at takes the column default; untyped parameters in a SELECT
	// list need explicit casts on PostgreSQL
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO vote (id, poll_id, option_id, voter_ip)
		SELECT CAST($1 AS TEXT), o.poll_id, o.id, CAST($4 AS TEXT)
		FROM option o
		JOIN poll p ON p.id = o.poll_id
		WHERE o.poll_id = $2 AND o.id = $3 AND p.active = $5
	`, vote.ID, pollID, optionID, voterID, true)
	if db.IsUniqueViolation(err) {
		return nil, models.NewError(models.KindAlreadyVoted, "You have already voted for this poll")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return nil, s.castNotFound(ctx, pollID)
	}

	return vote, nil
}

// castNotFound tells a missing poll apart from a missing option
func (s *VoteStore) castNotFound(ctx context.Context, pollID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM poll WHERE id = $1 AND active = $2
	`, pollID, true).Scan(&exists)
	if err == sql.ErrNoRows {
		return models.NewError(models.KindNotFound, "Poll not found or inactive")
	}
	if err != nil {
		return fmt.Errorf("failed to query poll: %w", err)
	}
	return models.NewError(models.KindNotFound, "Invalid option selected")
}

// CountsByOption returns the vote count of every option in the poll,
// including options nobody voted for
func (s *VoteStore) CountsByOption(ctx context.Context, pollID string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT o.id, COUNT(v.id)
		FROM option o
		LEFT JOIN vote v ON v.poll_id = o.poll_id AND v.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var optionID string
		var count int
		if err := rows.Scan(&optionID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[optionID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vote counts: %w", err)
	}
	rows.Close()

	if len(counts) == 0 {
		var exists int
		err := s.db.QueryRowContext(ctx, `SELECT 1 FROM poll WHERE id = $1`, pollID).Scan(&exists)
		if err == sql.ErrNoRows {
			return nil, models.NewError(models.KindNotFound, "Poll not found")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query poll: %w", err)
		}
	}

	return counts, nil
}
