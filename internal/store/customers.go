// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"time"
)

// Customer is a directory entry managed by administrators.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateCustomerParams holds the fields for creating a customer.
type CreateCustomerParams struct {
	Name  string
	Email string
	Phone sql.NullString
}

// CreateCustomer inserts a customer. A duplicate email returns
// ErrUniqueViolation.
func (q *Queries) CreateCustomer(ctx context.Context, arg CreateCustomerParams) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO customers (name, email, phone) VALUES (?, ?, ?)`,
		arg.Name, arg.Email, arg.Phone)
	if err != nil {
		return 0, wrapUnique(err)
	}

	return res.LastInsertId()
}

// GetCustomerByID fetches a customer by id. Absence is reported as
// sql.ErrNoRows.
func (q *Queries) GetCustomerByID(ctx context.Context, id int64) (Customer, error) {
	var c Customer
	err := q.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, created_at, updated_at FROM customers WHERE id = ?`,
		id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// UpdateCustomerParams holds the fields for updating a customer.
type UpdateCustomerParams struct {
	ID    int64
	Name  string
	Email string
	Phone sql.NullString
}

// UpdateCustomer rewrites a customer row. A missing id returns sql.ErrNoRows;
// a duplicate email returns ErrUniqueViolation.
func (q *Queries) UpdateCustomer(ctx context.Context, arg UpdateCustomerParams) error {
	res, err := q.db.ExecContext(ctx,
		`UPDATE customers SET name = ?, email = ?, phone = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		arg.Name, arg.Email, arg.Phone, arg.ID)
	if err != nil {
		return wrapUnique(err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// DeleteCustomer removes a customer. Deleting a missing id is a no-op.
func (q *Queries) DeleteCustomer(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	return err
}

// ListCustomers returns all customers, newest first.
func (q *Queries) ListCustomers(ctx context.Context) ([]Customer, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, email, phone, created_at, updated_at FROM customers ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

// CountCustomers returns the number of customers in the directory.
func (q *Queries) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	return count, err
}
