// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"testing"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}
	return conn
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := openSQLite(t)

	// Second run must not fail - IF NOT EXISTS everywhere
	if err := CreateSchema(conn, "sqlite"); err != nil {
		t.Errorf("Expected idempotent schema creation: %v", err)
	}
}

func TestSchema_FeedbackIDAutoAssigned(t *testing.T) {
	conn := openSQLite(t)

	_, err := conn.Exec(`
		INSERT INTO users (username, password_hash, email, first_name, last_name)
		VALUES ('alice', 'hash', 'alice@example.com', 'Alice', 'Smith')
	`)
	if err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}

	var id1, id2 int64
	err = conn.QueryRow(`
		INSERT INTO feedback (title, content, username) VALUES ('Hi', 'Hello', 'alice') RETURNING id
	`).Scan(&id1)
	if err != nil {
		t.Fatalf("Failed to insert feedback: %v", err)
	}
	err = conn.QueryRow(`
		INSERT INTO feedback (title, content, username) VALUES ('Hi2', 'Hello2', 'alice') RETURNING id
	`).Scan(&id2)
	if err != nil {
		t.Fatalf("Failed to insert feedback: %v", err)
	}

	if id2 <= id1 {
		t.Errorf("Expected increasing surrogate ids, got %d then %d", id1, id2)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	conn := openSQLite(t)

	insert := `
		INSERT INTO users (username, password_hash, email, first_name, last_name)
		VALUES ('alice', 'hash', 'alice@example.com', 'Alice', 'Smith')
	`
	if _, err := conn.Exec(insert); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	_, err := conn.Exec(insert)
	if err == nil {
		t.Fatal("Expected duplicate insert to fail")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("Expected unique violation, got: %v", err)
	}

	// Non-constraint errors are not unique violations
	if IsUniqueViolation(nil) {
		t.Error("nil is not a unique violation")
	}
	if IsUniqueViolation(errors.New("connection refused")) {
		t.Error("Unrelated errors are not unique violations")
	}
}
