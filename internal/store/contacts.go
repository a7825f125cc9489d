// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Contact is an inquiry submitted through the public contact form. Rows are
// append-only; the reference token is handed back to the submitter.
type Contact struct {
	ID        int64
	Reference string
	Name      string
	Email     string
	Phone     sql.NullString
	Message   string
	CreatedAt time.Time
}

// CreateContactParams holds the fields for recording an inquiry.
type CreateContactParams struct {
	Name    string
	Email   string
	Phone   sql.NullString
	Message string
}

// CreateContact records an inquiry and returns its reference token. The
// timestamp is store-assigned.
func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (string, error) {
	reference := uuid.NewString()

	_, err := q.db.ExecContext(ctx,
		`INSERT INTO contacts (reference, name, email, phone, message, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		reference, arg.Name, arg.Email, arg.Phone, arg.Message, time.Now().UTC())
	if err != nil {
		return "", err
	}

	return reference, nil
}

// ListContacts returns all inquiries, newest first.
func (q *Queries) ListContacts(ctx context.Context) ([]Contact, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, reference, name, email, phone, message, created_at FROM contacts ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.Reference, &c.Name, &c.Email, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

// CountContacts returns the number of recorded inquiries.
func (q *Queries) CountContacts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count)
	return count, err
}
