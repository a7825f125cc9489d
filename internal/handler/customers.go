// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/antechsolutions/website/internal/render"
	"github.com/antechsolutions/website/internal/service"
)

// Customers serves the admin customer directory. Every route is behind the
// admin guard.
type Customers struct {
	directory *service.Directory
	renderer  *render.Renderer
	logger    *slog.Logger
}

// NewCustomers creates a Customers handler.
func NewCustomers(directory *service.Directory, renderer *render.Renderer, logger *slog.Logger) *Customers {
	return &Customers{directory: directory, renderer: renderer, logger: logger}
}

// customerForm carries the form values, and for edits the record id.
type customerForm struct {
	ID     int64
	Name   string
	Email  string
	Phone  string
	Action string
}

// List handles GET /admin/dashboard: the directory, newest first.
func (h *Customers) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.directory.List(r.Context())
	if err != nil {
		serverError(w, h.logger, "listing customers", err)
		return
	}

	renderPage(w, r, h.renderer, h.logger, "admin/dashboard", render.TemplateData{
		Title: "Admin Dashboard",
		Data:  map[string]any{"Customers": customers},
	})
}

// NewForm handles GET /admin/customers/new.
func (h *Customers) NewForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, h.logger, "admin/customer_form", render.TemplateData{
		Title: "Add Customer",
		Data:  customerForm{Action: routeAdminCustomers},
	})
}

// Create handles POST /admin/customers.
func (h *Customers) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashAndRedirect(w, r, h.renderer, "Invalid form submission.", flashError, routeAdminDashboard)
		return
	}

	input := service.CustomerInput{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
		Phone: r.PostFormValue("phone"),
	}

	if _, err := h.directory.Create(r.Context(), input); err != nil {
		h.rerenderForm(w, r, err, customerForm{
			Name:   input.Name,
			Email:  input.Email,
			Phone:  input.Phone,
			Action: routeAdminCustomers,
		}, "Add Customer")
		return
	}

	flashAndRedirect(w, r, h.renderer, "Customer added.", flashSuccess, routeAdminDashboard)
}

// EditForm handles GET /admin/customers/{id}.
func (h *Customers) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	customer, err := h.directory.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			flashAndRedirect(w, r, h.renderer, "Customer not found.", flashError, routeAdminDashboard)
			return
		}
		serverError(w, h.logger, "getting customer", err)
		return
	}

	renderPage(w, r, h.renderer, h.logger, "admin/customer_form", render.TemplateData{
		Title: "Edit Customer",
		Data: customerForm{
			ID:     customer.ID,
			Name:   customer.Name,
			Email:  customer.Email,
			Phone:  customer.Phone.String,
			Action: fmt.Sprintf("%s/%d", routeAdminCustomers, customer.ID),
		},
	})
}

// Update handles POST /admin/customers/{id}.
func (h *Customers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		flashAndRedirect(w, r, h.renderer, "Invalid form submission.", flashError, routeAdminDashboard)
		return
	}

	input := service.CustomerInput{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
		Phone: r.PostFormValue("phone"),
	}

	if err := h.directory.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			flashAndRedirect(w, r, h.renderer, "Customer not found.", flashError, routeAdminDashboard)
			return
		}
		h.rerenderForm(w, r, err, customerForm{
			ID:     id,
			Name:   input.Name,
			Email:  input.Email,
			Phone:  input.Phone,
			Action: fmt.Sprintf("%s/%d", routeAdminCustomers, id),
		}, "Edit Customer")
		return
	}

	flashAndRedirect(w, r, h.renderer, "Customer updated.", flashSuccess, routeAdminDashboard)
}

// Delete handles POST /admin/customers/{id}/delete. Deleting an id that is
// already gone still reports success.
func (h *Customers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.directory.Delete(r.Context(), id); err != nil {
		serverError(w, h.logger, "deleting customer", err)
		return
	}

	flashAndRedirect(w, r, h.renderer, "Customer deleted.", flashSuccess, routeAdminDashboard)
}

// rerenderForm flashes a recoverable error and redraws the form with the
// submitted values; anything else is a 500.
func (h *Customers) rerenderForm(w http.ResponseWriter, r *http.Request, err error, form customerForm, title string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		h.renderer.SetFlash(r, ve.Message, flashError)
	case errors.Is(err, service.ErrEmailInUse):
		h.renderer.SetFlash(r, "Email already exists.", flashError)
	default:
		serverError(w, h.logger, "saving customer", err)
		return
	}

	renderPage(w, r, h.renderer, h.logger, "admin/customer_form", render.TemplateData{
		Title: title,
		Data:  form,
	})
}
