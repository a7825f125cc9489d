// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

// Package middleware provides HTTP middleware for authentication,
// CSRF protection, rate limiting, and security headers.
package middleware

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"github.com/antechsolutions/website/internal/model"
	"github.com/antechsolutions/website/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyAccount holds the authenticated account for the guarded kind.
const ContextKeyAccount ContextKey = "account"

// RequireAccount creates middleware that requires a session claim of the
// given kind. Requests without one are redirected to that kind's login page
// and the protected handler never runs. A claim of the other kind does not
// satisfy the guard.
func RequireAccount(sm *scs.SessionManager, kind model.Kind) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID := sm.GetInt64(r.Context(), kind.SessionKey())
			if accountID == 0 {
				http.Redirect(w, r, kind.LoginPath(), http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LoadAccount creates middleware that loads the claimed account of the given
// kind into the request context. If the row vanished since login, the stale
// claim is cleared and the request redirected to login. Use after
// RequireAccount.
func LoadAccount(sm *scs.SessionManager, db *sql.DB, kind model.Kind) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID := sm.GetInt64(r.Context(), kind.SessionKey())
			if accountID == 0 {
				next.ServeHTTP(w, r)
				return
			}

			account, err := queries.GetAccountByID(r.Context(), kind, accountID)
			if err != nil {
				sm.Remove(r.Context(), kind.SessionKey())
				http.Redirect(w, r, kind.LoginPath(), http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAccount, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAccount retrieves the loaded account from the request context.
// Returns nil if none was loaded.
func GetAccount(r *http.Request) *store.Account {
	account, ok := r.Context().Value(ContextKeyAccount).(store.Account)
	if !ok {
		return nil
	}
	return &account
}

// GetAccountID returns the loaded account's ID, or 0 if none was loaded.
// Safe to use in logging where a zero value is acceptable.
func GetAccountID(r *http.Request) int64 {
	if account := GetAccount(r); account != nil {
		return account.ID
	}
	return 0
}
