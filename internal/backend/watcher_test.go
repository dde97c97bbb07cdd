package backend

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"
)

type countingEnum struct {
	mu    sync.Mutex
	calls int
	lists [][]string
	err   error
}

func (c *countingEnum) ListInstalledFontFamilies() ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	idx := c.calls - 1
	if idx >= len(c.lists) {
		idx = len(c.lists) - 1
	}
	return c.lists[idx], nil
}

func (c *countingEnum) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func receive(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt := <-w.Events():
		return evt
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for event")
	}
	return Event{}
}

func TestWatcherEmitsInitialScan(t *testing.T) {
	enum := &countingEnum{lists: [][]string{{"Arial", "Ubuntu"}}}
	w := NewWatcher(enum, 0, nil)
	defer func() { w.Stop(); w.Wait() }()

	evt := receive(t, w)
	if evt.Kind != KindFonts || evt.Err != nil {
		t.Fatalf("unexpected event %#v", evt)
	}
	if got := evt.Data.([]string); !reflect.DeepEqual(got, []string{"Arial", "Ubuntu"}) {
		t.Fatalf("unexpected families %v", got)
	}
}

func TestWatcherSkipsUnchangedLists(t *testing.T) {
	enum := &countingEnum{lists: [][]string{{"Arial"}, {"Arial"}, {"Arial", "Zapfino"}}}
	w := NewWatcher(enum, 0, nil)
	defer func() { w.Stop(); w.Wait() }()

	receive(t, w)
	w.Rescan()
	deadline := time.Now().Add(3 * time.Second)
	for enum.Calls() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	select {
	case evt := <-w.Events():
		t.Fatalf("expected unchanged scan to be dropped, got %#v", evt)
	default:
	}
	w.Rescan()
	evt := receive(t, w)
	if got := evt.Data.([]string); len(got) != 2 {
		t.Fatalf("expected updated list, got %v", got)
	}
}

func TestWatcherReportsErrors(t *testing.T) {
	boom := errors.New("boom")
	w := NewWatcher(&countingEnum{err: boom}, 0, nil)
	defer func() { w.Stop(); w.Wait() }()
	if evt := receive(t, w); !errors.Is(evt.Err, boom) {
		t.Fatalf("expected boom, got %v", evt.Err)
	}
}

func TestWatcherRescansOnDirectoryChange(t *testing.T) {
	dir := t.TempDir()
	enum := &countingEnum{lists: [][]string{{"Arial"}, {"Arial", "New Font"}}}
	w := NewWatcher(enum, 0, []string{dir})
	defer func() { w.Stop(); w.Wait() }()

	receive(t, w)
	if err := os.WriteFile(filepath.Join(dir, "new.ttf"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	evt := receive(t, w)
	if got := evt.Data.([]string); len(got) != 2 {
		t.Fatalf("expected rescanned list, got %v", got)
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	w := NewWatcher(&countingEnum{lists: [][]string{{"Arial"}}}, 10*time.Millisecond, []string{filepath.Join(t.TempDir(), "missing")})
	receive(t, w)
	w.Stop()
	w.Wait()
	for range w.Events() {
	}
}
