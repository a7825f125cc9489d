// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

// Package handler contains the HTTP handlers: public site pages, account
// authentication for both principal kinds, and the admin back-office.
package handler

import (
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/antechsolutions/website/internal/render"
	"github.com/antechsolutions/website/internal/store"
	"github.com/antechsolutions/website/internal/util"
)

// Service is a fixed catalog entry shown on the services page.
type Service struct {
	Name        string
	Description string
}

// serviceCatalog is the static list of offerings. Projects come from the
// database; services do not.
var serviceCatalog = []Service{
	{Name: "Web Development", Description: "Custom web applications built for your workflows."},
	{Name: "Cloud Solutions", Description: "Migration, hosting and scaling on modern cloud platforms."},
	{Name: "IT Consulting", Description: "Architecture reviews and technology roadmaps."},
	{Name: "Support & Maintenance", Description: "Monitoring, upgrades and long-term care for your systems."},
}

// Frontend serves the public site pages.
type Frontend struct {
	queries  *store.Queries
	renderer *render.Renderer
	logger   *slog.Logger
}

// NewFrontend creates a Frontend handler.
func NewFrontend(queries *store.Queries, renderer *render.Renderer, logger *slog.Logger) *Frontend {
	return &Frontend{queries: queries, renderer: renderer, logger: logger}
}

// Home handles GET /.
func (h *Frontend) Home(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, h.logger, "site/home", render.TemplateData{})
}

// About handles GET /about.
func (h *Frontend) About(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, h.logger, "site/about", render.TemplateData{Title: "About"})
}

// Services handles GET /services.
func (h *Frontend) Services(w http.ResponseWriter, r *http.Request) {
	projects, err := h.queries.ListProjects(r.Context())
	if err != nil {
		serverError(w, h.logger, "listing projects", err)
		return
	}

	renderPage(w, r, h.renderer, h.logger, "site/services", render.TemplateData{
		Title: "Services",
		Data: map[string]any{
			"Services": serviceCatalog,
			"Projects": projects,
		},
	})
}

// contactForm carries the submitted values back into the form on error.
type contactForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactForm handles GET /contact.
func (h *Frontend) ContactForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, h.logger, "site/contact", render.TemplateData{
		Title: "Contact",
		Data:  contactForm{},
	})
}

// ContactSubmit handles POST /contact. The insert is open to anonymous
// visitors; on success the inquiry reference is flashed back so the visitor
// can quote it later.
func (h *Frontend) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashAndRedirect(w, r, h.renderer, "Invalid form submission.", flashError, routeContact)
		return
	}

	form := contactForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Phone:   strings.TrimSpace(r.PostFormValue("phone")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}

	if form.Name == "" || form.Email == "" || form.Message == "" {
		h.renderer.SetFlash(r, "Name, Email and Message required.", flashError)
		renderPage(w, r, h.renderer, h.logger, "site/contact", render.TemplateData{
			Title: "Contact",
			Data:  form,
		})
		return
	}
	if _, err := mail.ParseAddress(form.Email); err != nil {
		h.renderer.SetFlash(r, "Invalid email address.", flashError)
		renderPage(w, r, h.renderer, h.logger, "site/contact", render.TemplateData{
			Title: "Contact",
			Data:  form,
		})
		return
	}

	reference, err := h.queries.CreateContact(r.Context(), store.CreateContactParams{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   util.NullStringFromValue(form.Phone),
		Message: form.Message,
	})
	if err != nil {
		serverError(w, h.logger, "creating contact", err)
		return
	}

	h.logger.Info("contact inquiry received", "reference", reference)
	flashAndRedirect(w, r, h.renderer,
		"Thanks for reaching out! Your reference is "+reference+".", flashSuccess, routeContact)
}
