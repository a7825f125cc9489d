// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package handler

import (
	"log/slog"
	"net/http"

	"github.com/antechsolutions/website/internal/render"
	"github.com/antechsolutions/website/internal/store"
)

// Inquiries serves the admin view over contact form submissions.
type Inquiries struct {
	queries  *store.Queries
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewInquiries creates an Inquiries handler.
func NewInquiries(queries *store.Queries, renderer *render.Renderer, logger *slog.Logger) *Inquiries {
	return &Inquiries{queries: queries, renderer: renderer, logger: logger}
}

// List handles GET /admin/inquiries, newest first.
func (h *Inquiries) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.queries.ListContacts(r.Context())
	if err != nil {
		serverError(w, h.logger, "listing contacts", err)
		return
	}

	renderPage(w, r, h.renderer, h.logger, "admin/inquiries", render.TemplateData{
		Title: "Inquiries",
		Data:  map[string]any{"Contacts": contacts},
	})
}
