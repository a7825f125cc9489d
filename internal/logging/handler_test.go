package logging_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/antechsolutions/website/internal/logging"
	"github.com/antechsolutions/website/internal/model"
	"github.com/antechsolutions/website/internal/store"
	"github.com/antechsolutions/website/internal/testutil"
)

func TestEventLogHandler(t *testing.T) {
	db := testutil.TestDB(t)
	queries := store.New(db)

	inner := slog.NewTextHandler(io.Discard, nil)
	logger := slog.New(logging.NewEventLogHandler(inner, db))

	logger.Info("just info")
	logger.Warn("something odd", "path", "/login")
	logger.Error("something broke")

	events, err := queries.ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}

	// INFO must not reach the event log.
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}

	// Newest first.
	if events[0].Level != model.EventLevelError || events[0].Message != "something broke" {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[1].Level != model.EventLevelWarning {
		t.Errorf("events[1] = %+v", events[1])
	}
	if !strings.Contains(events[1].Metadata, `"path":"/login"`) {
		t.Errorf("metadata = %q", events[1].Metadata)
	}
}

func TestEventLogHandlerEscapesMetadata(t *testing.T) {
	db := testutil.TestDB(t)
	queries := store.New(db)

	inner := slog.NewTextHandler(io.Discard, nil)
	logger := slog.New(logging.NewEventLogHandler(inner, db))

	logger.Warn("quoted", "value", `say "hi"`)

	events, err := queries.ListRecentEvents(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatal("event not recorded")
	}
	if !strings.Contains(events[0].Metadata, `\"hi\"`) {
		t.Errorf("metadata = %q", events[0].Metadata)
	}
}
