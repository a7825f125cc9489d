// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/antechsolutions/website/internal/render"
)

// flashAndRedirect stores a one-shot message and sends a 303 so the browser
// re-requests the target with GET.
func flashAndRedirect(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, message, flashType, target string) {
	renderer.SetFlash(r, message, flashType)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// serverError logs an unexpected failure and replies 500. Recoverable
// failures never come through here; they are flashed instead.
func serverError(w http.ResponseWriter, logger *slog.Logger, message string, err error) {
	logger.Error(message, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// renderPage renders a view and degrades to a 500 on template failure.
func renderPage(w http.ResponseWriter, r *http.Request, renderer *render.Renderer, logger *slog.Logger, view string, data render.TemplateData) {
	if err := renderer.Render(w, r, view, data); err != nil {
		serverError(w, logger, "rendering "+view, err)
	}
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
