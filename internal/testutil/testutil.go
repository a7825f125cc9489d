// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

// Package testutil provides shared helpers for package tests.
package testutil

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/antechsolutions/website/internal/store"
)

// TestDB creates a temporary migrated SQLite database for a test. The
// database file lives in t.TempDir and is closed and removed on cleanup.
func TestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := store.NewDB(dbPath)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	return db
}

// TestLogger returns a logger that discards all output.
func TestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
