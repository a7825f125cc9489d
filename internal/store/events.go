// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"time"
)

// Event is an operational log entry.
type Event struct {
	ID        int64
	Level     string
	Message   string
	Metadata  string
	CreatedAt time.Time
}

// CreateEventParams holds the fields for recording an event.
type CreateEventParams struct {
	Level    string
	Message  string
	Metadata string
}

// CreateEvent appends an operational event.
func (q *Queries) CreateEvent(ctx context.Context, arg CreateEventParams) error {
	metadata := arg.Metadata
	if metadata == "" {
		metadata = "{}"
	}

	_, err := q.db.ExecContext(ctx,
		`INSERT INTO events (level, message, metadata) VALUES (?, ?, ?)`,
		arg.Level, arg.Message, metadata)
	return err
}

// ListRecentEvents returns up to limit events, newest first.
func (q *Queries) ListRecentEvents(ctx context.Context, limit int64) ([]Event, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, level, message, metadata, created_at FROM events ORDER BY id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Message, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
