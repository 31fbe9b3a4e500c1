// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Drivers

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types:

  - "sqlite": modernc.org/sqlite (cgo-free), URL is a file path
  - "postgres": github.com/lib/pq, URL is a connection string

# Schema Creation

CreateSchema initializes all required tables for the chosen dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

	users 1──* feedback

The users table is keyed by username and holds the bcrypt password hash and
profile fields. The feedback table has a store-assigned integer id and an
owning username. Account deletion removes the dependent feedback rows and
the user row inside one explicit transaction; the foreign key deliberately
carries no ON DELETE CASCADE so the transaction is the only delete path.

# Placeholders

All queries use $1-style placeholders, which both drivers accept, so handler
SQL is shared between dialects. Only the DDL differs (SERIAL vs INTEGER
PRIMARY KEY AUTOINCREMENT, NOW() vs CURRENT_TIMESTAMP).

# Uniqueness Conflicts

IsUniqueViolation classifies insert errors from either driver:

	if db.IsUniqueViolation(err) {
		// duplicate username
	}

This is how duplicate registrations surface as form errors while concurrent
duplicates stay serialized by the primary-key constraint.
*/
package db
