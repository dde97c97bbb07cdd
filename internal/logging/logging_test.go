package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		Configure("")
		SetTraceEnabled(false)
		SetVerbose(false)
	})
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}
		t.Fatalf("read log: %v", err)
	}
	return string(data)
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := useTempLog(t)
	Trace("style.size", map[string]interface{}{"size": 12})
	if got := readLog(t, path); got != "" {
		t.Fatalf("expected empty log, got %q", got)
	}
}

func TestTraceWritesJSON(t *testing.T) {
	path := useTempLog(t)
	SetTraceEnabled(true)
	Trace("style.size", map[string]interface{}{"size": 12})
	got := readLog(t, path)
	if !strings.Contains(got, `"msg":"style.size"`) {
		t.Fatalf("expected event name in %q", got)
	}
	if !strings.Contains(got, `"size":12`) {
		t.Fatalf("expected payload in %q", got)
	}
}

func TestErrorAlwaysWrites(t *testing.T) {
	path := useTempLog(t)
	Error(nil)
	if got := readLog(t, path); got != "" {
		t.Fatalf("expected nil error to be ignored, got %q", got)
	}
	Error(errors.New("boom"))
	if got := readLog(t, path); !strings.Contains(got, "boom") {
		t.Fatalf("expected error text in %q", got)
	}
}

func TestDebugfRequiresVerbose(t *testing.T) {
	path := useTempLog(t)
	PrintfLogger{}.Printf("scanning %s", "/usr/share/fonts")
	if got := readLog(t, path); got != "" {
		t.Fatalf("expected nothing without verbose, got %q", got)
	}
	SetVerbose(true)
	PrintfLogger{}.Printf("scanning %s", "/usr/share/fonts")
	if got := readLog(t, path); !strings.Contains(got, "scanning /usr/share/fonts") {
		t.Fatalf("expected debug line in %q", got)
	}
}

func TestConfigureEmptyFallsBack(t *testing.T) {
	useTempLog(t)
	Configure("   ")
	if Path() != defaultLogFile {
		t.Fatalf("expected default log path, got %q", Path())
	}
}
