// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/antechsolutions/website/internal/auth"
	"github.com/antechsolutions/website/internal/model"
	"github.com/antechsolutions/website/internal/store"
)

// Identity manages account registration and session login state for both
// principal kinds. The kinds are disjoint: every operation takes the kind it
// acts on, and login state for one kind never affects the other.
type Identity struct {
	queries        *store.Queries
	sessionManager *scs.SessionManager
	logger         *slog.Logger
}

// NewIdentity creates an Identity service.
func NewIdentity(queries *store.Queries, sessionManager *scs.SessionManager, logger *slog.Logger) *Identity {
	return &Identity{
		queries:        queries,
		sessionManager: sessionManager,
		logger:         logger,
	}
}

// Register creates a new account of the given kind. It does not log the
// account in; callers redirect to the login page on success.
func (s *Identity) Register(ctx context.Context, kind model.Kind, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return &ValidationError{Field: "username", Message: "Username and password required."}
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	_, err = s.queries.CreateAccount(ctx, kind, store.CreateAccountParams{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrUniqueViolation) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("creating %s account: %w", kind, err)
	}

	s.logger.Info("account registered", "kind", kind, "username", username)
	return nil
}

// Login verifies credentials and establishes the session claim for the kind.
// An unknown username and a wrong password are indistinguishable to the
// caller. The session token is renewed before the claim is written so a
// pre-login session id cannot be replayed.
func (s *Identity) Login(ctx context.Context, kind model.Kind, username, password string) (store.Account, error) {
	username = strings.TrimSpace(username)

	account, err := s.queries.GetAccountByUsername(ctx, kind, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.Account{}, ErrInvalidCredentials
		}
		return store.Account{}, fmt.Errorf("looking up %s account: %w", kind, err)
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		s.logger.Warn("failed login attempt", "kind", kind, "username", username)
		return store.Account{}, ErrInvalidCredentials
	}

	if auth.NeedsRehash(account.PasswordHash) {
		if hash, err := auth.HashPassword(password); err == nil {
			if err := s.queries.UpdateAccountPassword(ctx, kind, account.ID, hash); err != nil {
				s.logger.Warn("password rehash failed", "kind", kind, "id", account.ID, "error", err)
			}
		}
	}

	if err := s.sessionManager.RenewToken(ctx); err != nil {
		return store.Account{}, fmt.Errorf("renewing session token: %w", err)
	}
	s.sessionManager.Put(ctx, kind.SessionKey(), account.ID)

	s.logger.Info("login", "kind", kind, "username", username)
	return account, nil
}

// Logout removes the session claim for the kind. Only that kind's claim is
// touched, so a browser logged in as both customer and admin keeps the other
// login. Logging out while not logged in is a no-op.
func (s *Identity) Logout(ctx context.Context, kind model.Kind) {
	s.sessionManager.Remove(ctx, kind.SessionKey())
}

// AccountID returns the session claim for the kind, or false when the
// request carries none.
func (s *Identity) AccountID(ctx context.Context, kind model.Kind) (int64, bool) {
	if !s.sessionManager.Exists(ctx, kind.SessionKey()) {
		return 0, false
	}
	id, ok := s.sessionManager.Get(ctx, kind.SessionKey()).(int64)
	return id, ok
}
