// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/antechsolutions/website/internal/store"
	"github.com/antechsolutions/website/internal/util"
)

// Directory manages the customer records administrators maintain. Access
// control happens at the route level; the service assumes an authorized
// caller.
type Directory struct {
	queries *store.Queries
	logger  *slog.Logger
}

// NewDirectory creates a Directory service.
func NewDirectory(queries *store.Queries, logger *slog.Logger) *Directory {
	return &Directory{queries: queries, logger: logger}
}

// CustomerInput is the user-supplied portion of a customer record.
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// validate trims the input and checks the required fields. The phone stays
// optional.
func (in *CustomerInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" || in.Email == "" {
		return &ValidationError{Field: "name", Message: "Name and Email required."}
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return &ValidationError{Field: "email", Message: "Invalid email address."}
	}
	return nil
}

// List returns all customers, newest first.
func (s *Directory) List(ctx context.Context) ([]store.Customer, error) {
	customers, err := s.queries.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return customers, nil
}

// Get fetches a single customer.
func (s *Directory) Get(ctx context.Context, id int64) (store.Customer, error) {
	customer, err := s.queries.GetCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return store.Customer{}, ErrCustomerNotFound
		}
		return store.Customer{}, fmt.Errorf("getting customer %d: %w", id, err)
	}
	return customer, nil
}

// Create validates the input and inserts a new customer.
func (s *Directory) Create(ctx context.Context, in CustomerInput) (int64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	id, err := s.queries.CreateCustomer(ctx, store.CreateCustomerParams{
		Name:  in.Name,
		Email: in.Email,
		Phone: util.NullStringFromValue(in.Phone),
	})
	if err != nil {
		if errors.Is(err, store.ErrUniqueViolation) {
			return 0, ErrEmailInUse
		}
		return 0, fmt.Errorf("creating customer: %w", err)
	}

	s.logger.Info("customer created", "id", id, "email", in.Email)
	return id, nil
}

// Update validates the input and rewrites an existing customer.
func (s *Directory) Update(ctx context.Context, id int64, in CustomerInput) error {
	if err := in.validate(); err != nil {
		return err
	}

	err := s.queries.UpdateCustomer(ctx, store.UpdateCustomerParams{
		ID:    id,
		Name:  in.Name,
		Email: in.Email,
		Phone: util.NullStringFromValue(in.Phone),
	})
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrCustomerNotFound
		case errors.Is(err, store.ErrUniqueViolation):
			return ErrEmailInUse
		}
		return fmt.Errorf("updating customer %d: %w", id, err)
	}

	s.logger.Info("customer updated", "id", id)
	return nil
}

// Delete removes a customer. Deleting an id that never existed, or was
// already deleted, succeeds without complaint.
func (s *Directory) Delete(ctx context.Context, id int64) error {
	if err := s.queries.DeleteCustomer(ctx, id); err != nil {
		return fmt.Errorf("deleting customer %d: %w", id, err)
	}

	s.logger.Info("customer deleted", "id", id)
	return nil
}
