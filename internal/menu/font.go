package menu

import (
	"fmt"
	"strings"

	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/fontgroup"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultPrefix = "default:"
	groupPrefix   = "group-"
)

// GroupKey returns the stable menu key for a font group, e.g. "group-a-c" for
// the "A to C" group and "group-symbols" for "#".
func GroupKey(g fontgroup.Group) string {
	return groupPrefix + initialKey(g.First()) + rangeSuffix(g)
}

func rangeSuffix(g fontgroup.Group) string {
	if g.First() == g.Last() {
		return ""
	}
	return "-" + initialKey(g.Last())
}

func initialKey(r rune) string {
	if r == fontgroup.SymbolInitial {
		return "symbols"
	}
	return strings.ToLower(string(r))
}

// GroupNodeID is the registry identifier of the submenu for g.
func GroupNodeID(g fontgroup.Group) string {
	return IDFont + ":" + GroupKey(g)
}

func loadFontMenu(ctx Context) ([]Item, error) {
	return FontItems(ctx), nil
}

// FontItems lists the curated defaults followed by either every installed
// family (short lists) or one entry per alphabetic group.
func FontItems(ctx Context) []Item {
	current := ctx.Indicators.FontFamily
	defaults := fontgroup.Defaults()
	items := make([]Item, 0, len(defaults)+fontgroup.Count(ctx.FontGroups))
	for _, d := range defaults {
		items = append(items, Item{
			ID:    defaultPrefix + d.Family,
			Label: fmt.Sprintf("%s %s", radio(current == d.Family), d.Label),
		})
	}
	for _, g := range ctx.FontGroups {
		if g.Flat() {
			items = append(items, familyItems(g.Members, current)...)
			continue
		}
		mark := " "
		if containsFamily(g.Members, current) {
			mark = "•"
		}
		items = append(items, Item{
			ID:       GroupKey(g),
			Label:    fmt.Sprintf("%s %s (%d)", mark, g.Label, len(g.Members)),
			Keywords: append([]string(nil), g.Members...),
		})
	}
	return items
}

// GroupLoader lists the members of one font group.
func GroupLoader(g fontgroup.Group) Loader {
	members := append([]string(nil), g.Members...)
	return func(ctx Context) ([]Item, error) {
		return familyItems(members, ctx.Indicators.FontFamily), nil
	}
}

func familyItems(families []string, current string) []Item {
	items := make([]Item, 0, len(families))
	for _, family := range families {
		items = append(items, Item{
			ID:    family,
			Label: fmt.Sprintf("%s %s", radio(family == current), family),
		})
	}
	return items
}

func containsFamily(families []string, family string) bool {
	for _, f := range families {
		if f == family {
			return true
		}
	}
	return false
}

// FamilyFromItem resolves the family name an item in a font menu stands for.
// Only the curated default entries carry a prefixed ID; any other ID is taken
// as the installed family name verbatim.
func FamilyFromItem(item Item) string {
	for _, d := range fontgroup.Defaults() {
		if item.ID == defaultPrefix+d.Family {
			return d.Family
		}
	}
	return item.ID
}

// FontAction commits the chosen family. Names are not checked against the
// installed list; the canvas falls back at draw time.
func FontAction(_ Context, item Item) tea.Cmd {
	family := FamilyFromItem(item)
	return func() tea.Msg {
		if strings.TrimSpace(family) == "" {
			return ActionResult{Err: fmt.Errorf("font family required")}
		}
		return ControlIntent{
			Command: control.SetFont,
			Payload: control.Payload{Family: family},
			Label:   family,
		}
	}
}
