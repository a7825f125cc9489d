// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package model

// Event log levels.
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)
