// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrUniqueViolation reports an insert or update that broke a UNIQUE
// constraint. Callers match it with errors.Is.
var ErrUniqueViolation = errors.New("unique constraint violation")

// wrapUnique translates a SQLite constraint failure into ErrUniqueViolation,
// preserving the driver error in the chain. Other errors pass through.
func wrapUnique(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
		}
	}

	return err
}
