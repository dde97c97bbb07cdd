package dispatcher

import (
	"errors"
	"testing"

	"github.com/atomicstack/text-style-control/internal/backend"
	"github.com/atomicstack/text-style-control/internal/state"
)

func TestHandleFonts(t *testing.T) {
	store := state.NewFontStore()
	d := New(store)
	res := d.Handle(backend.Event{Kind: backend.KindFonts, Data: []string{"Arial", "Ubuntu"}})
	if !res.FontsUpdated || res.Err != nil {
		t.Fatalf("unexpected result %#v", res)
	}
	if len(store.Groups()) != 1 || !store.Groups()[0].Flat() {
		t.Fatalf("expected a single flat group, got %#v", store.Groups())
	}
}

func TestHandleErrorKeepsStore(t *testing.T) {
	store := state.NewFontStore()
	store.SetFamilies([]string{"Arial"})
	d := New(store)
	boom := errors.New("boom")
	res := d.Handle(backend.Event{Kind: backend.KindFonts, Err: boom})
	if res.FontsUpdated || !errors.Is(res.Err, boom) {
		t.Fatalf("unexpected result %#v", res)
	}
	if len(store.Families()) != 1 || !errors.Is(store.Err(), boom) {
		t.Fatalf("expected families kept and error recorded")
	}
}

func TestHandleIgnoresUnexpectedPayload(t *testing.T) {
	d := New(state.NewFontStore())
	if res := d.Handle(backend.Event{Kind: backend.KindFonts, Data: 42}); res.FontsUpdated {
		t.Fatalf("expected bad payload ignored")
	}
}
