package state

import (
	"strings"

	"github.com/atomicstack/text-style-control/internal/menu"
)

// Level holds one open menu screen.
type Level struct {
	ID    string
	Title string
	Node  *menu.Node

	// Full is everything the loader produced; Items is what the filter lets
	// through.
	Full  []menu.Item
	Items []menu.Item

	Filter       string
	FilterCursor int

	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewLevel constructs a Level with the cursor on the first item.
func NewLevel(id, title string, items []menu.Item, node *menu.Node) *Level {
	l := &Level{ID: id, Title: title, Node: node, LastCursor: -1}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index of the visible item with the given ID, or -1.
// Registry IDs such as "font:group-a-c" also match by their last segment, so
// a parent level can find the entry a child level was opened from.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	key := id
	if idx := strings.LastIndex(id, ":"); idx >= 0 {
		key = id[idx+1:]
	}
	fallback := -1
	for i, item := range l.Items {
		switch item.ID {
		case id:
			return i
		case key:
			if fallback < 0 {
				fallback = i
			}
		}
	}
	return fallback
}

// Current returns the item under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems swaps in freshly loaded items and reapplies the filter. Labels
// change whenever an indicator flips, so the cursor follows the ID it was on
// rather than its old index.
func (l *Level) UpdateItems(items []menu.Item) {
	selected, hadSelection := l.Current()
	offset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.refilter()
	if hadSelection {
		if idx := l.IndexOf(selected.ID); idx >= 0 {
			l.Cursor = idx
		}
	}
	if offset >= 0 && offset < len(l.Items) {
		l.ViewportOffset = offset
	} else {
		l.ViewportOffset = 0
	}
}

func (l *Level) refilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	l.clampCursor()
}

func (l *Level) clampCursor() {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if l.ViewportOffset > n-1 {
		l.ViewportOffset = 0
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
