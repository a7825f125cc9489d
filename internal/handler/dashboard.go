// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package handler

import (
	"log/slog"
	"net/http"

	"github.com/antechsolutions/website/internal/middleware"
	"github.com/antechsolutions/website/internal/render"
	"github.com/antechsolutions/website/internal/store"
)

// Dashboard serves the customer account area.
type Dashboard struct {
	queries  *store.Queries
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewDashboard creates a Dashboard handler.
func NewDashboard(queries *store.Queries, renderer *render.Renderer, logger *slog.Logger) *Dashboard {
	return &Dashboard{queries: queries, renderer: renderer, logger: logger}
}

// Show handles GET /dashboard. The route is guarded; the account is loaded
// into the context by the middleware.
func (h *Dashboard) Show(w http.ResponseWriter, r *http.Request) {
	account := middleware.GetAccount(r)
	if account == nil {
		http.Redirect(w, r, routeLogin, http.StatusSeeOther)
		return
	}

	projects, err := h.queries.ListProjects(r.Context())
	if err != nil {
		serverError(w, h.logger, "listing projects", err)
		return
	}

	renderPage(w, r, h.renderer, h.logger, "site/dashboard", render.TemplateData{
		Title: "Dashboard",
		Data: map[string]any{
			"Username": account.Username,
			"Services": serviceCatalog,
			"Projects": projects,
		},
	})
}

// AdminLanding handles GET /admin, the unauthenticated entry page.
func (h *Dashboard) AdminLanding(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, h.logger, "admin/landing", render.TemplateData{Title: "Admin"})
}
