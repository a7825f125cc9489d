// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"fmt"
)

// seedProjects is the fixed portfolio inserted into an empty store.
var seedProjects = []CreateProjectParams{
	{
		Title:       "Inventory Management System",
		Description: "A scalable web app for real-time stock tracking.",
		Year:        2023,
	},
	{
		Title:       "E-commerce Platform",
		Description: "Full-stack marketplace with payments & analytics.",
		Year:        2024,
	},
	{
		Title:       "HR Portal",
		Description: "Employee onboarding, leave & performance workflows.",
		Year:        2022,
	},
}

// SeedProjects inserts the fixed portfolio when the projects table is empty.
// Once any row exists, seeded or not, it does nothing; the seed is not kept in
// sync with later edits.
func (q *Queries) SeedProjects(ctx context.Context) error {
	count, err := q.CountProjects(ctx)
	if err != nil {
		return fmt.Errorf("counting projects: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range seedProjects {
		if _, err := q.CreateProject(ctx, p); err != nil {
			return fmt.Errorf("seeding project %q: %w", p.Title, err)
		}
	}

	return nil
}
