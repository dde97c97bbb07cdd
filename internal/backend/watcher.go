package backend

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/atomicstack/text-style-control/internal/fonts"
	"github.com/atomicstack/text-style-control/internal/logging"
	"github.com/atomicstack/text-style-control/internal/logging/events"
	"github.com/fsnotify/fsnotify"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindFonts Kind = iota
)

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Watcher rescans installed fonts on an interval and whenever one of the
// watched directories changes. Only changed family lists are published.
type Watcher struct {
	enum     fonts.Enumerator
	interval time.Duration
	dirs     []string

	ctx    context.Context
	cancel context.CancelFunc

	rescan chan struct{}
	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching. A non-positive interval disables periodic
// polling; the initial scan and directory-triggered rescans still run.
func NewWatcher(enum fonts.Enumerator, interval time.Duration, dirs []string) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		enum:     enum,
		interval: interval,
		dirs:     append([]string(nil), dirs...),
		ctx:      ctx,
		cancel:   cancel,
		rescan:   make(chan struct{}, 1),
		events:   make(chan Event, 16),
	}

	w.startFontPoller()
	w.startDirWatcher()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all goroutines have exited and the events channel is
// closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

// Rescan asks the poller for an immediate scan. Requests coalesce.
func (w *Watcher) Rescan() {
	select {
	case w.rescan <- struct{}{}:
	default:
	}
}

func (w *Watcher) startFontPoller() {
	throttle := newThrottle(250 * time.Millisecond)
	var last []string
	seen := false
	w.wg.Add(1)
	go w.poll(KindFonts, func(ctx context.Context) (interface{}, bool, error) {
		if !throttle.wait(ctx) {
			return nil, false, ctx.Err()
		}
		families, err := w.enum.ListInstalledFontFamilies()
		if err != nil {
			return nil, true, err
		}
		if seen && slices.Equal(last, families) {
			return nil, false, nil
		}
		seen = true
		last = families
		return append([]string(nil), families...), true, nil
	})
}

func (w *Watcher) startDirWatcher() {
	if len(w.dirs) == 0 {
		return
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		events.Font.Watch("", err)
		logging.Error(err)
		return
	}
	watched := 0
	for _, dir := range w.dirs {
		err := fw.Add(dir)
		events.Font.Watch(dir, err)
		if err == nil {
			watched++
		}
	}
	if watched == 0 {
		fw.Close()
		return
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer fw.Close()
		for {
			select {
			case <-w.ctx.Done():
				return
			case evt, ok := <-fw.Events:
				if !ok {
					return
				}
				if evt.Has(fsnotify.Create) || evt.Has(fsnotify.Remove) || evt.Has(fsnotify.Rename) || evt.Has(fsnotify.Write) {
					w.Rescan()
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logging.Error(err)
			}
		}
	}()
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, bool, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, changed, err := fetch(w.ctx)
		if !changed {
			return true
		}
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	var tick <-chan time.Time
	if w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-tick:
			if !emit() {
				return
			}
		case <-w.rescan:
			if !emit() {
				return
			}
		}
	}
}
