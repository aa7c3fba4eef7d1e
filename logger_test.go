package pathcreator

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	var h slog.Handler = nopHandler{}
	if h.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop handler should not be enabled")
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("Handle returned %v", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.Int("k", 1)}).(nopHandler); !ok {
		t.Error("WithAttrs should return a nop handler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup should return a nop handler")
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	if Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("default logger should be silent")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	nodes := []PathNode{point(1, 1), point(-1, 1), point(2, 2)}
	for range Links(nodes) {
		t.Fatal("no link should connect across an invalid node")
	}
	out := buf.String()
	if n := strings.Count(out, `msg="skipping link across invalid node"`); n != 2 {
		t.Errorf("got %d skip records, want 2:\n%s", n, out)
	}
	if !strings.Contains(out, "from=0 to=1") || !strings.Contains(out, "from=1 to=2") {
		t.Errorf("missing link indices in:\n%s", out)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
