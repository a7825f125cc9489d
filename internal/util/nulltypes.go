// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

// Package util provides small shared helpers.
package util

import "database/sql"

// NullStringFromValue returns a sql.NullString that is valid only when the
// trimmed input is non-empty.
func NullStringFromValue(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
