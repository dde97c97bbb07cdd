package state

import (
	"github.com/atomicstack/text-style-control/internal/fontgroup"
	"github.com/atomicstack/text-style-control/internal/fonts"
)

// FontStore holds the latest installed family list and its grouping.
type FontStore interface {
	Families() []string
	SetFamilies([]string)
	Groups() []fontgroup.Group
	Loaded() bool
	Err() error
	SetErr(error)
}

type fontStore struct {
	families []string
	groups   []fontgroup.Group
	loaded   bool
	err      error
}

func NewFontStore() FontStore {
	return &fontStore{}
}

func (s *fontStore) Families() []string {
	return cloneNames(s.families)
}

// SetFamilies stores a deduplicated copy of families and regroups them.
func (s *fontStore) SetFamilies(families []string) {
	s.families = fonts.Unique(families)
	s.groups = fontgroup.Partition(s.families)
	s.loaded = true
	s.err = nil
}

func (s *fontStore) Groups() []fontgroup.Group {
	if len(s.groups) == 0 {
		return nil
	}
	dup := make([]fontgroup.Group, len(s.groups))
	for i, g := range s.groups {
		dup[i] = g
		dup[i].Members = cloneNames(g.Members)
	}
	return dup
}

func (s *fontStore) Loaded() bool { return s.loaded }

func (s *fontStore) Err() error { return s.err }

// SetErr records a failed scan. Previously loaded families are kept.
func (s *fontStore) SetErr(err error) { s.err = err }

func cloneNames(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	dup := make([]string, len(names))
	copy(dup, names)
	return dup
}
