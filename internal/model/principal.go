// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

// Package model defines domain types shared across the application:
// principal kinds and event log levels.
package model

// Kind identifies which principal space an account belongs to. Customer
// accounts and administrators are disjoint identity spaces backed by separate
// tables: the same username may legally exist in both.
type Kind string

// Principal kinds.
const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

// SessionKey returns the session key under which the authenticated account id
// of this kind is stored. The keys are distinct so one browser session can
// hold a customer login and an admin login at the same time.
func (k Kind) SessionKey() string {
	return string(k) + "_id"
}

// LoginPath returns the login entry point for this kind. The authorization
// guard redirects here when a protected request carries no claim.
func (k Kind) LoginPath() string {
	if k == KindAdmin {
		return "/admin/login"
	}
	return "/login"
}
