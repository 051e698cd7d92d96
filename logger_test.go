package canvas

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/canvas/text"
)

// captureLogs installs a text logger at level and restores the previous
// logger when the test ends.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestLoggerDefaultSilent(t *testing.T) {
	for name, l := range map[string]*slog.Logger{"canvas": Logger(), "text": text.Logger()} {
		if l == nil {
			t.Fatalf("%s logger is nil", name)
		}
		if l.Enabled(context.Background(), slog.LevelError) {
			t.Errorf("%s logger enabled by default", name)
		}
	}
}

func TestSetLoggerReachesText(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	if text.Logger() != Logger() {
		t.Fatal("text.Logger() is not the logger passed to SetLogger")
	}
	text.Logger().Debug("text: forwarded record")
	if !strings.Contains(buf.String(), "text: forwarded record") {
		t.Errorf("text record not written: %s", buf.String())
	}

	SetLogger(nil)
	for name, l := range map[string]*slog.Logger{"canvas": Logger(), "text": text.Logger()} {
		if l == nil || l.Enabled(context.Background(), slog.LevelError) {
			t.Errorf("SetLogger(nil) left the %s logger enabled", name)
		}
	}
}

func TestSurfaceCreationLogsDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	if _, err := New(FromSize(8, 6)); err != nil {
		t.Fatalf("New failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"canvas: surface created", "source=size", "width=8", "height=6"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestIgnoredPropertyLogsWarning(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	s := newTestSurface(t, 4, 4)
	s.SetFillColor("not-a-colour")
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "property=fillStyle") {
		t.Errorf("expected a fillStyle warning, got: %s", out)
	}
	if s.FillStyle() != Black {
		t.Errorf("FillStyle() = %v after invalid colour, want unchanged black", s.FillStyle())
	}
}

func TestExportFallbackLogsWarning(t *testing.T) {
	buf := captureLogs(t, slog.LevelWarn)

	s := newTestSurface(t, 2, 2)
	if _, err := s.ToDataURL("image/webp", 0); err != nil {
		t.Fatalf("ToDataURL failed: %v", err)
	}
	if !strings.Contains(buf.String(), "mime=image/webp") {
		t.Errorf("expected a fallback warning, got: %s", buf.String())
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent read")
			text.Logger().Debug("concurrent read")
		}()
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}
	wg.Wait()
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debug("message", "key", "value")
	}
}
