// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package store

import "context"

// Project is a portfolio entry shown on the services page.
type Project struct {
	ID          int64
	Title       string
	Description string
	Year        int
}

// CreateProjectParams holds the fields for creating a project.
type CreateProjectParams struct {
	Title       string
	Description string
	Year        int
}

// CreateProject inserts a portfolio project.
func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO projects (title, description, year) VALUES (?, ?, ?)`,
		arg.Title, arg.Description, arg.Year)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

// ListProjects returns all projects, most recent year first.
func (q *Queries) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, title, description, year FROM projects ORDER BY year DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Year); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// CountProjects returns the number of portfolio projects.
func (q *Queries) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}
