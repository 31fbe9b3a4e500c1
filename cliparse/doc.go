// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: Connection string or sqlite path (default: feedback.db)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - SessionSecret: Secret for session cookie signing (required)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	--session-secret Session signing secret

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SESSION_SECRET → --session-secret

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - SESSION_SECRET must be provided
  - DATABASE_URL must be provided when DATABASE_TYPE is postgres
*/
package cliparse
