// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package store

import "database/sql"

// Queries provides typed access to the application tables.
type Queries struct {
	db *sql.DB
}

// New creates a Queries instance bound to the given database.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}
