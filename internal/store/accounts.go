// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/antechsolutions/website/internal/model"
)

// Account is a login-capable principal row. Customer accounts and
// administrators share the shape but live in separate tables.
type Account struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// accountTable maps a principal kind to its backing table. The two tables are
// disjoint identity spaces: the same username may exist in both.
func accountTable(kind model.Kind) string {
	if kind == model.KindAdmin {
		return "admins"
	}
	return "users"
}

// CreateAccountParams holds the fields for creating an account.
type CreateAccountParams struct {
	Username     string
	PasswordHash string
}

// CreateAccount inserts a new account of the given kind. A duplicate username
// within the kind returns ErrUniqueViolation.
func (q *Queries) CreateAccount(ctx context.Context, kind model.Kind, arg CreateAccountParams) (int64, error) {
	query := fmt.Sprintf(
		`INSERT INTO %s (username, password_hash) VALUES (?, ?)`,
		accountTable(kind))

	res, err := q.db.ExecContext(ctx, query, arg.Username, arg.PasswordHash)
	if err != nil {
		return 0, wrapUnique(err)
	}

	return res.LastInsertId()
}

// GetAccountByUsername fetches an account by username. Absence is reported as
// sql.ErrNoRows.
func (q *Queries) GetAccountByUsername(ctx context.Context, kind model.Kind, username string) (Account, error) {
	query := fmt.Sprintf(
		`SELECT id, username, password_hash, created_at FROM %s WHERE username = ?`,
		accountTable(kind))

	var a Account
	err := q.db.QueryRowContext(ctx, query, username).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

// GetAccountByID fetches an account by id. Absence is reported as
// sql.ErrNoRows.
func (q *Queries) GetAccountByID(ctx context.Context, kind model.Kind, id int64) (Account, error) {
	query := fmt.Sprintf(
		`SELECT id, username, password_hash, created_at FROM %s WHERE id = ?`,
		accountTable(kind))

	var a Account
	err := q.db.QueryRowContext(ctx, query, id).
		Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

// CountAccounts returns the number of accounts of the given kind.
func (q *Queries) CountAccounts(ctx context.Context, kind model.Kind) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, accountTable(kind))

	var count int64
	err := q.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

// UpdateAccountPassword replaces the stored password hash for an account.
func (q *Queries) UpdateAccountPassword(ctx context.Context, kind model.Kind, id int64, passwordHash string) error {
	query := fmt.Sprintf(
		`UPDATE %s SET password_hash = ? WHERE id = ?`,
		accountTable(kind))

	_, err := q.db.ExecContext(ctx, query, passwordHash, id)
	return err
}
