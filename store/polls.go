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

type PollStore struct {
	db *sql.DB
}

func NewPollStore(db *sql.DB) *PollStore {
	return &PollStore{db: db}
}

// Create stores poll and its options in one transaction. Empty poll and
// option IDs are generated; CreatedAt is set and the poll is active.
func (s *PollStore) Create(ctx context.Context, poll *models.Poll) (*models.Poll, error) {
	p := *poll
	if p.ID == "" {
		p.ID = auth.GenerateID()
	}
	p.CreatedAt = time.Now().UTC()
	p.Active = true
	p.Options = make([]models.Option, len(poll.Options))
	for i, opt := range poll.Options {
		if opt.ID == "" {
			opt.ID = auth.GenerateID()
		}
		opt.Votes = 0
		p.Options[i] = opt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll (id, title, description, created_at, active)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.Title, p.Description, p.CreatedAt, p.Active)
	if db.IsUniqueViolation(err) {
		return nil, models.NewError(models.KindDuplicateKey, "Poll %s already exists", p.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert poll: %w", err)
	}

	for i, opt := range p.Options {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO option (poll_id, id, sort_order, title, description)
			VALUES ($1, $2, $3, $4, $5)
		`, p.ID, opt.ID, i, opt.Title, opt.Description)
		if db.IsUniqueViolation(err) {
			return nil, models.NewError(models.KindDuplicateKey, "Option %s appears twice in poll", opt.ID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit poll: %w", err)
	}

	return &p, nil
}

// Get returns the poll with its options in creation order and their
// current vote counts
func (s *PollStore) Get(ctx context.Context, id string) (*models.Poll, error) {
	var poll models.Poll
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, created_at, active
		FROM poll
		WHERE id = $1
	`, id).Scan(&poll.ID, &poll.Title, &poll.Description, &poll.CreatedAt, &poll.Active)
	if err == sql.ErrNoRows {
		return nil, models.NewError(models.KindNotFound, "Poll not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query poll: %w", err)
	}

	options, err := s.options(ctx, []string{poll.ID})
	if err != nil {
		return nil, err
	}
	poll.Options = options[poll.ID]
	if poll.Options == nil {
		poll.Options = []models.Option{}
	}

	return &poll, nil
}

// List returns every active poll, newest first
func (s *PollStore) List(ctx context.Context) ([]models.Poll, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, created_at, active
		FROM poll
		WHERE active = $1
		ORDER BY created_at DESC, id
	`, true)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	var ids []string
	for rows.Next() {
		var p models.Poll
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CreatedAt, &p.Active); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polls: %w", err)
	}
	rows.Close()

	options, err := s.options(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range polls {
		polls[i].Options = options[polls[i].ID]
		if polls[i].Options == nil {
			polls[i].Options = []models.Option{}
		}
	}

	return polls, nil
}

// options loads the options of the given polls with derived vote counts
func (s *PollStore) options(ctx context.Context, pollIDs []string) (map[string][]models.Option, error) {
	result := make(map[string][]models.Option, len(pollIDs))
	for _, pollID := range pollIDs {
		rows, err := s.db.QueryContext(ctx, `
			SELECT o.id, o.title, o.description, COUNT(v.id)
			FROM option o
			LEFT JOIN vote v ON v.poll_id = o.poll_id AND v.option_id = o.id
			WHERE o.poll_id = $1
			GROUP BY o.id, o.title, o.description, o.sort_order
			ORDER BY o.sort_order
		`, pollID)
		if err != nil {
			return nil, fmt.Errorf("failed to query options: %w", err)
		}

		for rows.Next() {
			var opt models.Option
			if err := rows.Scan(&opt.ID, &opt.Title, &opt.Description, &opt.Votes); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan option: %w", err)
			}
			result[pollID] = append(result[pollID], opt)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate options: %w", err)
		}
	}
	return result, nil
}

// Delete removes the poll, its options, and its votes in one transaction.
// Deleting a missing poll reports NotFound and changes nothing.
func (s *PollStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM vote WHERE poll_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM option WHERE poll_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete options: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM poll WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.NewError(models.KindNotFound, "Poll not found")
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", err)
	}
	return nil
}
