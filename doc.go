// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote is a basic polling service: anyone can create a poll with two
to ten options, every network address gets one vote per poll, and results
are computed live from the stored votes.

# Starting the Server

With no configuration the server listens on port 8001 and keeps its data in
a local SQLite file:

	go run .

Use PostgreSQL instead:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..." -seed

A .env file in the working directory is loaded first; variables already set
in the environment take precedence.

# Configuration

  - PORT (-p): Server port (default: 8001)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string; required for postgres
  - SEED_DATA (-seed): Insert the sample poll on startup
  - TRUST_PROXY (-trust-proxy): Identify voters by X-Forwarded-For / X-Real-IP
  - LOG_LEVEL (-log-level): debug, info, warn or error
  - LOG_FILE (-log-file): Also write logs to a rotating file

# Architecture

  - handlers: HTTP request handlers (polls, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON and error helpers
  - models: Request/response types, tagged errors, validation
  - store: Poll and vote persistence
  - results: Vote aggregation and percentages
  - metrics: Prometheus collectors
  - auth: ID generation and voter identity
  - db: Connection, schema and seed data
  - cliparse: Configuration parsing
  - client, views, cmd/pollctl: Terminal front end over the REST API

See package documentation for each component.
*/
package main
