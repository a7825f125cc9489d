// Copyright (c) 2026 AN Tech Solutions
// SPDX-License-Identifier: MIT

package util

import "testing"

func TestNullStringFromValue(t *testing.T) {
	if got := NullStringFromValue(""); got.Valid {
		t.Error("empty string produced a valid NullString")
	}

	got := NullStringFromValue("+1 555 0100")
	if !got.Valid || got.String != "+1 555 0100" {
		t.Errorf("NullStringFromValue = %+v", got)
	}
}
