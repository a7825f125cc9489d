// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package handler_test

import (
	"database/sql"
	"io"
	"io/fs"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/antechsolutions/website/internal/handler"
	"github.com/antechsolutions/website/internal/middleware"
	"github.com/antechsolutions/website/internal/model"
	"github.com/antechsolutions/website/internal/render"
	"github.com/antechsolutions/website/internal/service"
	"github.com/antechsolutions/website/internal/session"
	"github.com/antechsolutions/website/internal/store"
	"github.com/antechsolutions/website/internal/testutil"
	"github.com/antechsolutions/website/web"
)

// testApp wires the full route surface over a fresh database, minus the CSRF
// and rate limiting layers which would reject plain test POSTs.
type testApp struct {
	db      *sql.DB
	queries *store.Queries
	server  *httptest.Server
	client  *http.Client
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.TestDB(t)
	queries := store.New(db)
	sm := session.New(db, true)
	logger := testutil.TestLogger()

	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sm,
		CompanyName:    "AN Tech Solutions",
	})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	identity := service.NewIdentity(queries, sm, logger)
	directory := service.NewDirectory(queries, logger)

	frontend := handler.NewFrontend(queries, renderer, logger)
	userAuth := handler.NewUserAuth(identity, renderer, logger)
	adminAuth := handler.NewAdminAuth(identity, renderer, logger)
	dashboard := handler.NewDashboard(queries, renderer, logger)
	customers := handler.NewCustomers(directory, renderer, logger)
	inquiries := handler.NewInquiries(queries, renderer, logger)
	events := handler.NewEvents(queries, renderer, logger)
	health := handler.NewHealth(db)

	r := chi.NewRouter()
	r.Use(sm.LoadAndSave)

	r.Get("/", frontend.Home)
	r.Get("/about", frontend.About)
	r.Get("/services", frontend.Services)
	r.Get("/contact", frontend.ContactForm)
	r.Post("/contact", frontend.ContactSubmit)
	r.Get("/health", health.Check)

	r.Get("/register", userAuth.RegisterForm)
	r.Post("/register", userAuth.Register)
	r.Get("/login", userAuth.LoginForm)
	r.Post("/login", userAuth.Login)
	r.Get("/logout", userAuth.Logout)
	r.Post("/logout", userAuth.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAccount(sm, model.KindUser))
		r.Use(middleware.LoadAccount(sm, db, model.KindUser))
		r.Get("/dashboard", dashboard.Show)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/", dashboard.AdminLanding)
		r.Get("/register", adminAuth.RegisterForm)
		r.Post("/register", adminAuth.Register)
		r.Get("/login", adminAuth.LoginForm)
		r.Post("/login", adminAuth.Login)
		r.Get("/logout", adminAuth.Logout)
		r.Post("/logout", adminAuth.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAccount(sm, model.KindAdmin))
			r.Use(middleware.LoadAccount(sm, db, model.KindAdmin))
			r.Get("/dashboard", customers.List)
			r.Get("/customers/new", customers.NewForm)
			r.Post("/customers", customers.Create)
			r.Get("/customers/{id}", customers.EditForm)
			r.Post("/customers/{id}", customers.Update)
			r.Post("/customers/{id}/delete", customers.Delete)
			r.Get("/inquiries", inquiries.List)
			r.Get("/events", events.List)
		})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}

	return &testApp{
		db:      db,
		queries: queries,
		server:  server,
		client:  &http.Client{Jar: jar},
	}
}

// get fetches a path following redirects and returns the final body.
func (a *testApp) get(t *testing.T, path string) (int, string) {
	t.Helper()

	resp, err := a.client.Get(a.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, string(body)
}

// postForm submits a form following redirects and returns the final body.
func (a *testApp) postForm(t *testing.T, path string, form url.Values) (int, string) {
	t.Helper()

	resp, err := a.client.PostForm(a.server.URL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, string(body)
}

// getNoRedirect fetches a path without following redirects.
func (a *testApp) getNoRedirect(t *testing.T, path string) *http.Response {
	t.Helper()

	client := &http.Client{
		Jar: a.client.Jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(a.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	_ = resp.Body.Close()
	return resp
}

func assertContains(t *testing.T, body, want string) {
	t.Helper()
	if !strings.Contains(body, want) {
		t.Errorf("body does not contain %q", want)
	}
}
