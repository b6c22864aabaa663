package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestDefaultSilent(t *testing.T) {
	l := L()
	if l == nil {
		t.Fatal("L() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger enabled for %v", level)
		}
	}
}

func TestSet(t *testing.T) {
	orig := L()
	t.Cleanup(func() { Set(orig) })

	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	L().Debug("frame skipped", "widget", 7)

	if !strings.Contains(buf.String(), "frame skipped") {
		t.Errorf("log output = %q, want message", buf.String())
	}

	Set(nil)
	if L().Enabled(context.Background(), slog.LevelError) {
		t.Error("Set(nil) should restore the silent logger")
	}
}

func TestConcurrentAccess(t *testing.T) {
	orig := L()
	t.Cleanup(func() { Set(orig) })

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				Set(slog.Default())
			} else {
				Set(nil)
			}
		}()
		go func() {
			defer wg.Done()
			L().Info("tick")
		}()
	}
	wg.Wait()
}
