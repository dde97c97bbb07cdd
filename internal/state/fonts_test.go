package state

import (
	"errors"
	"fmt"
	"testing"
)

func TestFontStoreGroupsOnSet(t *testing.T) {
	s := NewFontStore()
	if s.Loaded() || len(s.Groups()) != 0 {
		t.Fatalf("expected empty store")
	}
	names := make([]string, 30)
	for i := range names {
		names[i] = fmt.Sprintf("%c Font", 'A'+rune(i%26))
	}
	names = append(names, "a font")
	s.SetFamilies(names)
	if !s.Loaded() {
		t.Fatalf("expected store loaded")
	}
	if got := len(s.Families()); got != 26 {
		t.Fatalf("expected duplicates dropped to 26 names, got %d", got)
	}
	total := 0
	for _, g := range s.Groups() {
		total += len(g.Members)
	}
	if total != 26 {
		t.Fatalf("expected grouped members to match families, got %d", total)
	}
}

func TestFontStoreReturnsCopies(t *testing.T) {
	s := NewFontStore()
	s.SetFamilies([]string{"Arial", "Ubuntu"})
	s.Families()[0] = "mutated"
	s.Groups()[0].Members[0] = "mutated"
	if s.Families()[0] != "Arial" || s.Groups()[0].Members[0] != "Arial" {
		t.Fatalf("expected store contents isolated from callers")
	}
}

func TestFontStoreKeepsFamiliesOnError(t *testing.T) {
	s := NewFontStore()
	s.SetFamilies([]string{"Arial"})
	s.SetErr(errors.New("scan failed"))
	if s.Err() == nil || len(s.Families()) != 1 {
		t.Fatalf("expected error recorded and families kept")
	}
	s.SetFamilies([]string{"Arial", "Ubuntu"})
	if s.Err() != nil {
		t.Fatalf("expected successful scan to clear error")
	}
}
