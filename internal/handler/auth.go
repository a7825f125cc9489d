// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/antechsolutions/website/internal/model"
	"github.com/antechsolutions/website/internal/render"
	"github.com/antechsolutions/website/internal/service"
)

// authRoutes holds the view names and redirect targets that differ between
// the customer and admin auth flows.
type authRoutes struct {
	registerView  string
	loginView     string
	registerPath  string
	loginPath     string
	afterRegister string
	afterLogin    string
	afterLogout   string
}

// Auth serves registration, login and logout for one principal kind. The two
// kinds get separate instances over the same service.
type Auth struct {
	identity *service.Identity
	renderer *render.Renderer
	logger   *slog.Logger
	kind     model.Kind
	routes   authRoutes
}

// NewUserAuth creates the auth handler for customer accounts.
func NewUserAuth(identity *service.Identity, renderer *render.Renderer, logger *slog.Logger) *Auth {
	return &Auth{
		identity: identity,
		renderer: renderer,
		logger:   logger,
		kind:     model.KindUser,
		routes: authRoutes{
			registerView:  "site/register",
			loginView:     "site/login",
			registerPath:  "/register",
			loginPath:     routeLogin,
			afterRegister: routeLogin,
			afterLogin:    routeDashboard,
			afterLogout:   routeLogin,
		},
	}
}

// NewAdminAuth creates the auth handler for administrators.
func NewAdminAuth(identity *service.Identity, renderer *render.Renderer, logger *slog.Logger) *Auth {
	return &Auth{
		identity: identity,
		renderer: renderer,
		logger:   logger,
		kind:     model.KindAdmin,
		routes: authRoutes{
			registerView:  "admin/register",
			loginView:     "admin/login",
			registerPath:  "/admin/register",
			loginPath:     routeAdminLogin,
			afterRegister: routeAdminLogin,
			afterLogin:    routeAdminDashboard,
			afterLogout:   routeAdminLogin,
		},
	}
}

// credentialsForm carries the username back into the form on error.
type credentialsForm struct {
	Username string
}

// RegisterForm handles GET on the registration path.
func (h *Auth) RegisterForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, h.logger, h.routes.registerView, render.TemplateData{
		Title: "Register",
		Data:  credentialsForm{},
	})
}

// Register handles POST on the registration path. A new account is created
// but not logged in; the browser is sent to the login page.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashAndRedirect(w, r, h.renderer, "Invalid form submission.", flashError, h.routes.registerPath)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	err := h.identity.Register(r.Context(), h.kind, username, password)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			h.renderer.SetFlash(r, ve.Message, flashError)
		case errors.Is(err, service.ErrUsernameTaken):
			h.renderer.SetFlash(r, "Username already exists.", flashError)
		default:
			serverError(w, h.logger, "registering account", err)
			return
		}

		renderPage(w, r, h.renderer, h.logger, h.routes.registerView, render.TemplateData{
			Title: "Register",
			Data:  credentialsForm{Username: username},
		})
		return
	}

	flashAndRedirect(w, r, h.renderer, "Registration successful. Please log in.", flashSuccess, h.routes.afterRegister)
}

// LoginForm handles GET on the login path.
func (h *Auth) LoginForm(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.renderer, h.logger, h.routes.loginView, render.TemplateData{
		Title: "Login",
		Data:  credentialsForm{},
	})
}

// Login handles POST on the login path. An unknown username and a wrong
// password produce the same message.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flashAndRedirect(w, r, h.renderer, "Invalid form submission.", flashError, h.routes.loginPath)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.identity.Login(r.Context(), h.kind, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.renderer.SetFlash(r, "Invalid credentials.", flashError)
			renderPage(w, r, h.renderer, h.logger, h.routes.loginView, render.TemplateData{
				Title: "Login",
				Data:  credentialsForm{Username: username},
			})
			return
		}
		serverError(w, h.logger, "logging in", err)
		return
	}

	http.Redirect(w, r, h.routes.afterLogin, http.StatusSeeOther)
}

// Logout handles the logout path for this kind. Only this kind's session
// claim is dropped; repeated logouts are harmless.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.identity.Logout(r.Context(), h.kind)
	flashAndRedirect(w, r, h.renderer, "Logged out.", flashInfo, h.routes.afterLogout)
}
