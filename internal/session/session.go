// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

// Package session configures the server-side session manager backed by the
// sessions table.
package session

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

// New creates a session manager storing session data in SQLite. Cookies are
// HttpOnly and SameSite=Lax; the Secure flag is dropped only in development so
// plain-HTTP local testing works.
func New(db *sql.DB, isDevelopment bool) *scs.SessionManager {
	sm := scs.New()
	sm.Store = sqlite3store.New(db)
	sm.Lifetime = 24 * time.Hour
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = !isDevelopment
	return sm
}
