// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package handler

// Flash message types, matched by the flash partial's CSS classes.
const (
	flashSuccess = "success"
	flashError   = "error"
	flashInfo    = "info"
)

// Redirect targets.
const (
	routeHome           = "/"
	routeLogin          = "/login"
	routeDashboard      = "/dashboard"
	routeContact        = "/contact"
	routeAdminLogin     = "/admin/login"
	routeAdminDashboard = "/admin/dashboard"
	routeAdminCustomers = "/admin/customers"
)
