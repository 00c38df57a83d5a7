// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation, and seed data.

# Connections

Open picks the driver from the config: modernc.org/sqlite (default, pure Go)
or github.com/lib/pq for PostgreSQL:

	conn, err := db.Open(cfg)

SQLite connections enable foreign keys and a busy timeout and are limited to
one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same statements run on both databases.

# Tables

  - poll: id, title, description, created_at, active
  - option: options per poll, ordered by sort_order
  - vote: one row per (poll_id, voter_ip)

# Relationships

	poll 1──* option
	poll 1──* vote
	option 1──* vote

# Indexes

  - poll.active, poll.created_at
  - option.poll_id
  - vote.(poll_id, voter_ip) (unique)
  - vote.poll_id, vote.voted_at

# Unique Violations

IsUniqueViolation recognizes duplicate-key errors from both drivers so the
store can translate them into models.ErrAlreadyVoted or
models.ErrDuplicateKey.

# Seed Data

Seed inserts the sample poll "sample-poll-001" through the poll store.
Running it again is a no-op.
*/
package db
