// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8001)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: quickly-vote.db)
  - Seed: insert the sample poll on startup
  - TrustProxy: read voter address from proxy headers
  - LogLevel: slog level (default: info)
  - LogFile: optional rotated log file

# CLI Flags

	-p            Server port
	-t            Database type
	-d            Database URL
	-seed         Insert sample poll
	-trust-proxy  Trust X-Forwarded-For / X-Real-IP
	-log-level    debug, info, warn, error
	-log-file     Path of a rotated log file

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	SEED_DATA     → -seed
	TRUST_PROXY   → -trust-proxy
	LOG_LEVEL     → -log-level
	LOG_FILE      → -log-file

CLI flags take precedence over environment variables. main.go loads a .env
file into the environment before parsing; variables already set win.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is missing for postgres
  - PORT or LOG_LEVEL cannot be parsed
*/
package cliparse
