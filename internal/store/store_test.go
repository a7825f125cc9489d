// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package store_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/antechsolutions/website/internal/model"
	"github.com/antechsolutions/website/internal/store"
	"github.com/antechsolutions/website/internal/testutil"
)

func TestCreateAccountDisjointKinds(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	params := store.CreateAccountParams{Username: "alice", PasswordHash: "hash"}

	if _, err := q.CreateAccount(ctx, model.KindUser, params); err != nil {
		t.Fatalf("CreateAccount user: %v", err)
	}

	// Same username in the other kind is legal.
	if _, err := q.CreateAccount(ctx, model.KindAdmin, params); err != nil {
		t.Fatalf("CreateAccount admin with same username: %v", err)
	}

	// Duplicate within a kind is not.
	_, err := q.CreateAccount(ctx, model.KindUser, params)
	if !errors.Is(err, store.ErrUniqueViolation) {
		t.Errorf("duplicate username error = %v, want ErrUniqueViolation", err)
	}
}

func TestGetAccount(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	id, err := q.CreateAccount(ctx, model.KindAdmin, store.CreateAccountParams{
		Username:     "root",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	byName, err := q.GetAccountByUsername(ctx, model.KindAdmin, "root")
	if err != nil {
		t.Fatalf("GetAccountByUsername: %v", err)
	}
	if byName.ID != id || byName.PasswordHash != "hash" {
		t.Errorf("unexpected account: %+v", byName)
	}

	byID, err := q.GetAccountByID(ctx, model.KindAdmin, id)
	if err != nil {
		t.Fatalf("GetAccountByID: %v", err)
	}
	if byID.Username != "root" {
		t.Errorf("Username = %q", byID.Username)
	}

	// The user table must not see the admin row.
	if _, err := q.GetAccountByUsername(ctx, model.KindUser, "root"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("cross-kind lookup error = %v, want sql.ErrNoRows", err)
	}
}

func TestUpdateAccountPassword(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	id, err := q.CreateAccount(ctx, model.KindUser, store.CreateAccountParams{
		Username:     "bob",
		PasswordHash: "old",
	})
	if err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	if err := q.UpdateAccountPassword(ctx, model.KindUser, id, "new"); err != nil {
		t.Fatalf("UpdateAccountPassword: %v", err)
	}

	a, err := q.GetAccountByID(ctx, model.KindUser, id)
	if err != nil {
		t.Fatalf("GetAccountByID: %v", err)
	}
	if a.PasswordHash != "new" {
		t.Errorf("PasswordHash = %q, want new", a.PasswordHash)
	}
}

func TestCustomerCRUD(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	id, err := q.CreateCustomer(ctx, store.CreateCustomerParams{
		Name:  "Acme Corp",
		Email: "ops@acme.test",
	})
	if err != nil {
		t.Fatalf("CreateCustomer: %v", err)
	}

	// Duplicate email rejected.
	_, err = q.CreateCustomer(ctx, store.CreateCustomerParams{
		Name:  "Other",
		Email: "ops@acme.test",
	})
	if !errors.Is(err, store.ErrUniqueViolation) {
		t.Errorf("duplicate email error = %v, want ErrUniqueViolation", err)
	}

	if err := q.UpdateCustomer(ctx, store.UpdateCustomerParams{
		ID:    id,
		Name:  "Acme Corp",
		Email: "sales@acme.test",
	}); err != nil {
		t.Fatalf("UpdateCustomer: %v", err)
	}

	c, err := q.GetCustomerByID(ctx, id)
	if err != nil {
		t.Fatalf("GetCustomerByID: %v", err)
	}
	if c.Email != "sales@acme.test" {
		t.Errorf("Email = %q", c.Email)
	}

	// Update of a missing id reports absence.
	err = q.UpdateCustomer(ctx, store.UpdateCustomerParams{ID: 9999, Name: "x", Email: "x@x.test"})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("update missing id error = %v, want sql.ErrNoRows", err)
	}

	if err := q.DeleteCustomer(ctx, id); err != nil {
		t.Fatalf("DeleteCustomer: %v", err)
	}

	// Deleting again is a no-op.
	if err := q.DeleteCustomer(ctx, id); err != nil {
		t.Errorf("DeleteCustomer missing id: %v", err)
	}

	count, err := q.CountCustomers(ctx)
	if err != nil {
		t.Fatalf("CountCustomers: %v", err)
	}
	if count != 0 {
		t.Errorf("CountCustomers = %d, want 0", count)
	}
}

func TestListCustomersOrder(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	for _, email := range []string{"a@x.test", "b@x.test", "c@x.test"} {
		if _, err := q.CreateCustomer(ctx, store.CreateCustomerParams{Name: "n", Email: email}); err != nil {
			t.Fatalf("CreateCustomer: %v", err)
		}
	}

	customers, err := q.ListCustomers(ctx)
	if err != nil {
		t.Fatalf("ListCustomers: %v", err)
	}
	if len(customers) != 3 {
		t.Fatalf("len = %d, want 3", len(customers))
	}
	if customers[0].Email != "c@x.test" || customers[2].Email != "a@x.test" {
		t.Errorf("customers not in id DESC order: %v", customers)
	}
}

func TestCreateContact(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	ref, err := q.CreateContact(ctx, store.CreateContactParams{
		Name:    "Visitor",
		Email:   "v@example.test",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if ref == "" {
		t.Fatal("empty reference")
	}

	contacts, err := q.ListContacts(ctx)
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("len = %d, want 1", len(contacts))
	}
	if contacts[0].Reference != ref {
		t.Errorf("Reference = %q, want %q", contacts[0].Reference, ref)
	}
	if contacts[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not assigned")
	}
}

func TestSeedProjects(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	if err := q.SeedProjects(ctx); err != nil {
		t.Fatalf("SeedProjects: %v", err)
	}

	// Second call must not duplicate.
	if err := q.SeedProjects(ctx); err != nil {
		t.Fatalf("SeedProjects (second): %v", err)
	}

	projects, err := q.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("len = %d, want 3", len(projects))
	}

	// Most recent year first.
	if projects[0].Year != 2024 || projects[1].Year != 2023 || projects[2].Year != 2022 {
		t.Errorf("projects not in year DESC order: %v", projects)
	}
	if projects[0].Title != "E-commerce Platform" {
		t.Errorf("first project = %q", projects[0].Title)
	}
}

func TestSeedProjectsNotASync(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	// One pre-existing row disables seeding entirely.
	if _, err := q.CreateProject(ctx, store.CreateProjectParams{
		Title:       "Custom",
		Description: "d",
		Year:        2020,
	}); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if err := q.SeedProjects(ctx); err != nil {
		t.Fatalf("SeedProjects: %v", err)
	}

	count, err := q.CountProjects(ctx)
	if err != nil {
		t.Fatalf("CountProjects: %v", err)
	}
	if count != 1 {
		t.Errorf("CountProjects = %d, want 1", count)
	}
}

func TestEvents(t *testing.T) {
	db := testutil.TestDB(t)
	q := store.New(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := q.CreateEvent(ctx, store.CreateEventParams{
			Level:   model.EventLevelWarning,
			Message: "slow query",
		}); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	events, err := q.ListRecentEvents(ctx, 3)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("len = %d, want 3", len(events))
	}
	if events[0].Metadata != "{}" {
		t.Errorf("Metadata = %q, want {}", events[0].Metadata)
	}
}
