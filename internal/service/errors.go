// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

// Package service implements the application use cases on top of the store:
// account registration and login per principal kind, and the admin-facing
// customer directory. Recoverable failures are typed so handlers can turn
// them into user-facing messages; raw storage errors never escape.
package service

import "errors"

// Recoverable service errors.
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Login never reveals which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken reports a registration against an existing username
	// within the same principal kind.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailInUse reports a customer create or update that would duplicate
	// another customer's email.
	ErrEmailInUse = errors.New("email already exists")

	// ErrCustomerNotFound reports an operation against a customer id that
	// does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
)

// ValidationError reports user input rejected before touching storage.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsRecoverable reports whether err is a user-facing failure the handler
// should flash rather than treat as an internal error.
func IsRecoverable(err error) bool {
	var ve *ValidationError
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrEmailInUse) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.As(err, &ve)
}
