package state

import (
	"strings"
	"unicode"

	"github.com/atomicstack/text-style-control/internal/menu"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []menu.Item) []menu.Item {
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}

var indicatorMarks = []string{"[x] ", "[ ] ", "(•) ", "( ) ", "• "}

// SearchText is the part of a label matched by the filter. Checkbox and radio
// marks are dropped so typing "x" does not match every checked item.
func SearchText(label string) string {
	trimmed := strings.TrimLeft(label, " ")
	for _, mark := range indicatorMarks {
		if strings.HasPrefix(trimmed, mark) {
			return strings.TrimPrefix(trimmed, mark)
		}
	}
	return trimmed
}

// FoldName reduces a font or menu name to the form the filter compares:
// accents stripped, case folded, and spaces, hyphens and underscores removed.
// "Noto Sans-Mono" and "notosansmono" fold to the same key.
func FoldName(name string) string {
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(strip, name)
	if err != nil {
		plain = name
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			return -1
		}
		return r
	}, cases.Fold().String(plain))
}
