package state

import (
	"sort"
	"strings"
	"unicode"

	"github.com/atomicstack/text-style-control/internal/menu"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterEdit is one editing step on a level's filter query.
type FilterEdit int

const (
	FilterClear FilterEdit = iota
	FilterDeleteRune
	FilterDeleteWord
	FilterCaretStart
	FilterCaretEnd
	FilterCaretLeft
	FilterCaretRight
	FilterCaretWordLeft
	FilterCaretWordRight
)

var filterEditNames = [...]string{
	"clear", "delete-rune", "delete-word",
	"caret-start", "caret-end", "caret-left", "caret-right", "caret-word-left", "caret-word-right",
}

func (e FilterEdit) String() string {
	if e < 0 || int(e) >= len(filterEditNames) {
		return "unknown"
	}
	return filterEditNames[e]
}

// Rewrites reports whether e changes the query rather than only the caret.
func (e FilterEdit) Rewrites() bool {
	return e <= FilterDeleteWord
}

// SetFilter replaces the query, places the caret and refilters. Starting a
// query remembers the cursor and jumps to the best match; clearing it puts
// the cursor back where it was.
func (l *Level) SetFilter(query string, caret int) {
	was := strings.TrimSpace(l.Filter) != ""
	now := strings.TrimSpace(query) != ""
	if now && !was {
		l.LastCursor = l.Cursor
	}
	l.Filter = query
	l.FilterCursor = clamp(caret, 0, len([]rune(query)))
	l.Items = FilterItems(l.Full, query)
	switch {
	case now:
		l.Cursor = BestMatchIndex(l.Items, query)
	case was:
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else {
			l.Cursor = 0
		}
		l.LastCursor = -1
	}
	l.clampCursor()
}

// FilterCursorPos returns the caret as a rune offset into the query.
func (l *Level) FilterCursorPos() int {
	return clamp(l.FilterCursor, 0, len([]rune(l.Filter)))
}

// InsertFilter types text at the caret.
func (l *Level) InsertFilter(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	query := []rune(l.Filter)
	pos := l.FilterCursorPos()
	updated := make([]rune, 0, len(query)+len(insert))
	updated = append(append(append(updated, query[:pos]...), insert...), query[pos:]...)
	l.SetFilter(string(updated), pos+len(insert))
	return true
}

// EditFilter applies e and reports whether the query or the caret changed.
// Word motions treat runs of spaces as separators, so "Times New Roman" is
// three words.
func (l *Level) EditFilter(e FilterEdit) bool {
	query := []rune(l.Filter)
	pos := l.FilterCursorPos()
	switch e {
	case FilterClear:
		if len(query) == 0 {
			return false
		}
		l.SetFilter("", 0)
		return true
	case FilterDeleteRune:
		return l.cut(query, max(pos-1, 0), pos)
	case FilterDeleteWord:
		return l.cut(query, wordStart(query, pos), pos)
	}
	target := pos
	switch e {
	case FilterCaretStart:
		target = 0
	case FilterCaretEnd:
		target = len(query)
	case FilterCaretLeft:
		target = max(pos-1, 0)
	case FilterCaretRight:
		target = min(pos+1, len(query))
	case FilterCaretWordLeft:
		target = wordStart(query, pos)
	case FilterCaretWordRight:
		target = wordEnd(query, pos)
	}
	if target == pos {
		return false
	}
	l.FilterCursor = target
	return true
}

// cut removes query[from:to] and leaves the caret at from.
func (l *Level) cut(query []rune, from, to int) bool {
	if from >= to {
		return false
	}
	rest := append(append([]rune{}, query[:from]...), query[to:]...)
	l.SetFilter(string(rest), from)
	return true
}

func wordStart(query []rune, pos int) int {
	for pos > 0 && unicode.IsSpace(query[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(query[pos-1]) {
		pos--
	}
	return pos
}

func wordEnd(query []rune, pos int) int {
	for pos < len(query) && !unicode.IsSpace(query[pos]) {
		pos++
	}
	for pos < len(query) && unicode.IsSpace(query[pos]) {
		pos++
	}
	return pos
}

// Match ranks, best first.
const (
	rankExact = iota
	rankPrefix
	rankMember
	rankMemberPrefix
	rankContains
	rankMemberContains
	rankNone
)

// matchRank scores how well query names an item. label is the item's search
// text; keywords are the families inside a font group, so a family typed on
// the font menu lands on the group that holds it.
func matchRank(label string, item menu.Item, query string) int {
	q := FoldName(query)
	if q == "" {
		return rankNone
	}
	name, id := FoldName(label), FoldName(item.ID)
	best := rankNone
	switch {
	case name == q || id == q:
		return rankExact
	case strings.HasPrefix(name, q):
		best = rankPrefix
	case strings.Contains(name, q) || strings.Contains(id, q):
		best = rankContains
	}
	for _, keyword := range item.Keywords {
		k := FoldName(keyword)
		rank := rankNone
		switch {
		case k == q:
			rank = rankMember
		case strings.HasPrefix(k, q):
			rank = rankMemberPrefix
		case strings.Contains(k, q):
			rank = rankMemberContains
		}
		best = min(best, rank)
		if best == rankMember {
			break
		}
	}
	return best
}

func searchLabels(items []menu.Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = SearchText(item.Label)
	}
	return labels
}

// FilterItems keeps, in menu order, the items whose label fuzzily matches
// query plus any whose ID or member families contain it.
func FilterItems(items []menu.Item, query string) []menu.Item {
	q := strings.TrimSpace(query)
	if q == "" {
		return CloneItems(items)
	}
	labels := searchLabels(items)
	fuzzyHits := make(map[int]bool)
	for _, r := range fuzzy.RankFindNormalizedFold(q, labels) {
		fuzzyHits[r.OriginalIndex] = true
	}
	kept := make([]menu.Item, 0, len(items))
	for i, item := range items {
		if fuzzyHits[i] || matchRank(labels[i], item, q) < rankNone {
			kept = append(kept, item)
		}
	}
	return kept
}

// BestMatchIndex picks the item the cursor should land on for query: the
// best ranked name match, earliest first, else the closest fuzzy match, else
// the first item. It returns -1 only for an empty list.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	q := strings.TrimSpace(query)
	if q == "" {
		return 0
	}
	labels := searchLabels(items)
	best, bestRank := 0, rankNone
	for i, item := range items {
		if rank := matchRank(labels[i], item, q); rank < bestRank {
			best, bestRank = i, rank
		}
	}
	if bestRank < rankNone {
		return best
	}
	ranks := fuzzy.RankFindNormalizedFold(q, labels)
	if len(ranks) == 0 {
		return 0
	}
	sort.Stable(ranks)
	return ranks[0].OriginalIndex
}
