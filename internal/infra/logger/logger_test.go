package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp, Debug: true, Attrs: []any{"version", "test"}})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	L().Debug("sheet.rendered", "problems", 3)
	wantPath := filepath.Join(tmp, LogDir, LogFile)
	if Path() != wantPath {
		t.Fatalf("expected path %s, got %s", wantPath, Path())
	}
	if InitTime().IsZero() {
		t.Fatalf("expected init time")
	}

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if err := IsReady(); err == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), b)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec["msg"] != "sheet.rendered" || rec["problems"] != float64(3) {
		t.Fatalf("unexpected record %v", rec)
	}
	if rec["version"] != "test" {
		t.Fatalf("expected base attrs on record, got %v", rec)
	}
	if _, ok := rec["source"]; !ok {
		t.Fatalf("expected source in debug mode")
	}
}

func TestSetup_InfoLevelDropsDebug(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	L().Debug("hidden")
	_ = cleanup()

	b, err := os.ReadFile(filepath.Join(tmp, LogDir, LogFile))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(b), "hidden") {
		t.Fatalf("expected debug record dropped:\n%s", b)
	}
}

func TestSetup_FallsBackToDiscard(t *testing.T) {
	tmp := t.TempDir()
	// A file where the log dir should be makes MkdirAll fail.
	if err := os.WriteFile(filepath.Join(tmp, ".mathsheets"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cleanup, err := Setup(Config{Root: tmp})
	if err == nil {
		t.Fatalf("expected error")
	}
	if cleanup != nil {
		t.Fatalf("expected nil cleanup on error")
	}
	if L() == nil {
		t.Fatalf("expected usable logger")
	}
	L().Info("dropped")
}
