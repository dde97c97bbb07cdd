// Package fontgroup splits a long list of font family names into a bounded
// number of alphabetic groups for menu display.
//
// Partition is a pure function in two phases: a stable sort by folded
// initial, then a walk over the initials that closes a group once it is full
// and enough names are left to make a useful next group.
package fontgroup

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

const (
	// FlatThreshold is the largest list shown without grouping.
	FlatThreshold = 20
	// GroupCap is the member count at which a group may be closed.
	GroupCap = 12
	// MinRemainder is the trailing count that is merged into the previous
	// group instead of opening a new one.
	MinRemainder = 4

	// FlatLabel labels the single group returned for short lists.
	FlatLabel = "All Fonts"
	// SymbolInitial collects names that do not start with a letter.
	SymbolInitial = '#'
)

// Group is a labeled bucket of font names.
type Group struct {
	Label   string
	Members []string
	first   rune
	last    rune
}

// First returns the initial of the first member (0 for flat groups).
func (g Group) First() rune { return g.first }

// Last returns the initial of the last member (0 for flat groups).
func (g Group) Last() rune { return g.last }

// Flat reports whether g is the ungrouped list returned for short inputs.
func (g Group) Flat() bool { return g.first == 0 && g.last == 0 }

// Default is one of the curated generic families listed before any group.
type Default struct {
	Family string
	Label  string
}

// Defaults returns the curated generic families in display order.
func Defaults() []Default {
	return []Default{
		{Family: "Serif", Label: "Serif Default"},
		{Family: "SansSerif", Label: "SansSerif Default"},
		{Family: "Monospace", Label: "Monospace Default"},
	}
}

type entry struct {
	name    string
	initial rune
}

var folder = cases.Fold()

// Initial returns the grouping key for name: its first letter upper-cased
// after case folding, or SymbolInitial for anything else.
func Initial(name string) rune {
	trimmed := strings.TrimSpace(name)
	r, _ := utf8.DecodeRuneInString(trimmed)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return SymbolInitial
	}
	folded, _ := utf8.DecodeRuneInString(folder.String(string(r)))
	return unicode.ToUpper(folded)
}

// Partition groups names. Empty input yields no groups, up to FlatThreshold
// names yield one flat group in source order, longer lists are split by
// initial. Names sharing an initial always land in the same group, so a
// single very common initial can exceed GroupCap.
func Partition(names []string) []Group {
	if len(names) == 0 {
		return nil
	}
	if len(names) <= FlatThreshold {
		return []Group{{Label: FlatLabel, Members: append([]string(nil), names...)}}
	}
	return partition(sortByInitial(names))
}

func sortByInitial(names []string) []entry {
	entries := make([]entry, len(names))
	for i, name := range names {
		entries[i] = entry{name: name, initial: Initial(name)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].initial < entries[j].initial
	})
	return entries
}

func partition(entries []entry) []Group {
	groups := make([]Group, 0, len(entries)/GroupCap+1)
	var current Group
	assigned := 0
	for assigned < len(entries) {
		initial := entries[assigned].initial
		if len(current.Members) == 0 {
			current.first = initial
		}
		for assigned < len(entries) && entries[assigned].initial == initial {
			current.Members = append(current.Members, entries[assigned].name)
			assigned++
		}
		current.last = initial
		remaining := len(entries) - assigned
		if remaining == 0 || (len(current.Members) >= GroupCap && remaining > MinRemainder) {
			current.Label = rangeLabel(current.first, current.last)
			groups = append(groups, current)
			current = Group{}
		}
	}
	return groups
}

func rangeLabel(first, last rune) string {
	if first == last {
		return string(first)
	}
	return string(first) + " to " + string(last)
}

// Count returns the total number of members across groups.
func Count(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += len(g.Members)
	}
	return total
}
