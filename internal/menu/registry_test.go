package menu

import (
	"testing"

	"github.com/atomicstack/text-style-control/internal/fontgroup"
)

func TestBuildRegistryStaticNodes(t *testing.T) {
	reg := BuildRegistry(nil)
	for _, item := range RootItems(Context{}) {
		node, ok := reg.Child("root", item.ID)
		if !ok {
			t.Fatalf("expected root child %q", item.ID)
		}
		if node.Action == nil && node.Loader == nil {
			t.Fatalf("node %q has neither loader nor action", item.ID)
		}
	}
	for _, id := range []string{IDFont, IDJustify} {
		node, _ := reg.Find(id)
		if node.Loader == nil || node.Action == nil {
			t.Fatalf("expected %q to load a submenu and act on its items", id)
		}
	}
}

func TestBuildRegistryFontGroups(t *testing.T) {
	groups := fontgroup.Partition(manyFamilies(50))
	reg := BuildRegistry(groups)
	for _, g := range groups {
		node, ok := reg.Child(IDFont, GroupKey(g))
		if !ok {
			t.Fatalf("expected group node for %q", g.Label)
		}
		if node.ID != GroupNodeID(g) {
			t.Fatalf("unexpected node id %q", node.ID)
		}
		items, err := node.Loader(Context{})
		if err != nil {
			t.Fatalf("load %s: %v", node.ID, err)
		}
		if len(items) != len(g.Members) {
			t.Fatalf("expected %d members in %s, got %d", len(g.Members), g.Label, len(items))
		}
		if node.Action == nil {
			t.Fatalf("expected group %s to act on families", g.Label)
		}
	}
}

func TestBuildRegistrySkipsFlatGroup(t *testing.T) {
	reg := BuildRegistry(fontgroup.Partition([]string{"Arial", "Courier"}))
	font, _ := reg.Find(IDFont)
	if len(font.Children) != 0 {
		t.Fatalf("expected no group submenus for a flat list, got %d", len(font.Children))
	}
}

func TestParentKey(t *testing.T) {
	tests := []struct {
		id, parent, key string
	}{
		{"font", "root", "font"},
		{"font:group-a-c", "font", "group-a-c"},
		{"", "root", ""},
	}
	for _, tt := range tests {
		parent, key := parentKey(tt.id)
		if parent != tt.parent || key != tt.key {
			t.Fatalf("parentKey(%q) = %q, %q; want %q, %q", tt.id, parent, key, tt.parent, tt.key)
		}
	}
}
