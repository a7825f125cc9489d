// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/antechsolutions/website/internal/version"
)

// Health reports service liveness and a database ping.
type Health struct {
	db *sql.DB
}

// NewHealth creates a Health handler.
func NewHealth(db *sql.DB) *Health {
	return &Health{db: db}
}

// Check handles GET /health.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK

	if err := h.db.PingContext(r.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  status,
		"version": version.Get().Version,
	})
}
