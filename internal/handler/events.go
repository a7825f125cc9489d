// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package handler

import (
	"log/slog"
	"net/http"

	"github.com/antechsolutions/website/internal/render"
	"github.com/antechsolutions/website/internal/store"
)

// eventPageSize caps the admin events view.
const eventPageSize = 100

// Events serves the admin view over the operational event log.
type Events struct {
	queries  *store.Queries
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewEvents creates an Events handler.
func NewEvents(queries *store.Queries, renderer *render.Renderer, logger *slog.Logger) *Events {
	return &Events{queries: queries, renderer: renderer, logger: logger}
}

// List handles GET /admin/events, newest first.
func (h *Events) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.queries.ListRecentEvents(r.Context(), eventPageSize)
	if err != nil {
		serverError(w, h.logger, "listing events", err)
		return
	}

	renderPage(w, r, h.renderer, h.logger, "admin/events", render.TemplateData{
		Title: "Events",
		Data:  map[string]any{"Events": events},
	})
}
