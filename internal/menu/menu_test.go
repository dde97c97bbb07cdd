package menu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/fontgroup"
	"github.com/atomicstack/text-style-control/internal/style"
)

func labelFor(items []Item, id string) string {
	for _, item := range items {
		if item.ID == id {
			return item.Label
		}
	}
	return ""
}

func manyFamilies(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%c Family %d", 'A'+rune(i%26), i)
	}
	return names
}

func TestRootItemsReflectIndicators(t *testing.T) {
	items := RootItems(Context{Indicators: control.Indicators{Bold: true}})
	if got := labelFor(items, IDBold); got != "[x] Bold" {
		t.Fatalf("expected checked bold, got %q", got)
	}
	if got := labelFor(items, IDItalic); got != "[ ] Italic" {
		t.Fatalf("expected unchecked italic, got %q", got)
	}
	handlers := ActionHandlers()
	for _, item := range items {
		if _, ok := handlers[item.ID]; !ok {
			t.Fatalf("root item %q has no action", item.ID)
		}
	}
}

func TestJustifyItemsMarkExactlyOne(t *testing.T) {
	for _, j := range style.Justifications() {
		items := JustifyItems(control.Indicators{Justification: j})
		marked := 0
		for _, item := range items {
			if strings.HasPrefix(item.Label, "(•)") {
				marked++
				if item.ID != j.String() {
					t.Fatalf("expected %s marked, got %q", j, item.ID)
				}
			}
		}
		if marked != 1 {
			t.Fatalf("expected exactly one marked item for %s, got %d", j, marked)
		}
	}
}

func TestToggleActionLeavesStateToController(t *testing.T) {
	ctx := Context{Indicators: control.Indicators{Italic: true}}
	msg := ToggleAction(control.ToggleItalic)(ctx, Item{ID: IDItalic, Label: "[x] Italic"})()
	intent, ok := msg.(ControlIntent)
	if !ok {
		t.Fatalf("expected ControlIntent, got %T", msg)
	}
	if intent.Command != control.ToggleItalic || intent.Payload != (control.Payload{}) {
		t.Fatalf("expected bare italic toggle intent, got %#v", intent)
	}
}

func TestPromptActionRequestsDialog(t *testing.T) {
	msg := PromptAction(control.SetSize)(Context{}, Item{ID: IDSize, Label: "Text Size…"})()
	req, ok := msg.(PromptRequest)
	if !ok || req.Command != control.SetSize {
		t.Fatalf("expected size prompt request, got %#v", msg)
	}
}

func TestJustifyActionParsesItem(t *testing.T) {
	msg := JustifyAction(Context{}, Item{ID: "center"})()
	intent, ok := msg.(ControlIntent)
	if !ok || intent.Payload.Justification != style.Center {
		t.Fatalf("expected center intent, got %#v", msg)
	}
	msg = JustifyAction(Context{}, Item{ID: "diagonal"})()
	res, ok := msg.(ActionResult)
	if !ok || !errors.Is(res.Err, style.ErrInvalidValue) {
		t.Fatalf("expected invalid value result, got %#v", msg)
	}
}

func TestResetActionEmitsIntent(t *testing.T) {
	msg := ResetAction(Context{}, Item{ID: IDReset})()
	if intent, ok := msg.(ControlIntent); !ok || intent.Command != control.ResetDefaults {
		t.Fatalf("expected reset intent, got %#v", msg)
	}
}

func TestFontItemsFlatList(t *testing.T) {
	families := []string{"Zilla Slab", "Arial", "Fira Code"}
	ctx := Context{
		FontGroups: fontgroup.Partition(families),
		Indicators: control.Indicators{FontFamily: "Arial"},
	}
	items := FontItems(ctx)
	if len(items) != 3+len(families) {
		t.Fatalf("expected defaults plus families, got %d items", len(items))
	}
	for i, d := range fontgroup.Defaults() {
		if !strings.HasSuffix(items[i].Label, d.Label) {
			t.Fatalf("expected default %q at %d, got %q", d.Label, i, items[i].Label)
		}
	}
	if got := labelFor(items, "Arial"); got != "(•) Arial" {
		t.Fatalf("expected current family marked, got %q", got)
	}
	if got := labelFor(items, "Zilla Slab"); got != "( ) Zilla Slab" {
		t.Fatalf("expected other family unmarked, got %q", got)
	}
}

func TestFontItemsGroupedList(t *testing.T) {
	families := manyFamilies(60)
	groups := fontgroup.Partition(families)
	ctx := Context{FontGroups: groups, Indicators: control.Indicators{FontFamily: families[0]}}
	items := FontItems(ctx)
	if len(items) != 3+len(groups) {
		t.Fatalf("expected defaults plus %d groups, got %d items", len(groups), len(items))
	}
	first := items[3]
	if first.ID != GroupKey(groups[0]) {
		t.Fatalf("expected group key %q, got %q", GroupKey(groups[0]), first.ID)
	}
	if !strings.HasPrefix(first.Label, "• ") {
		t.Fatalf("expected group holding current family marked, got %q", first.Label)
	}
	want := fmt.Sprintf("%s (%d)", groups[0].Label, len(groups[0].Members))
	if !strings.HasSuffix(first.Label, want) {
		t.Fatalf("expected label to end with %q, got %q", want, first.Label)
	}
}

func TestGroupKey(t *testing.T) {
	groups := fontgroup.Partition(append(manyFamilies(40), "3270 Nerd Font", ".Hidden"))
	seen := map[string]bool{}
	for _, g := range groups {
		key := GroupKey(g)
		if seen[key] {
			t.Fatalf("duplicate group key %q", key)
		}
		seen[key] = true
		if strings.Contains(key, ":") {
			t.Fatalf("group key %q must not contain ':'", key)
		}
	}
	if key := GroupKey(groups[0]); !strings.HasPrefix(key, "group-symbols") {
		t.Fatalf("expected symbol group first, got %q", key)
	}
}

func TestFontActionStripsDefaultPrefix(t *testing.T) {
	msg := FontAction(Context{}, Item{ID: "default:Monospace"})()
	intent, ok := msg.(ControlIntent)
	if !ok || intent.Payload.Family != "Monospace" || intent.Command != control.SetFont {
		t.Fatalf("expected Monospace font intent, got %#v", msg)
	}
	msg = FontAction(Context{}, Item{ID: "Not Installed Anywhere"})()
	if intent, ok := msg.(ControlIntent); !ok || intent.Payload.Family != "Not Installed Anywhere" {
		t.Fatalf("expected unknown family to pass through, got %#v", msg)
	}
}

func TestFamilyFromItemOnlyResolvesCuratedDefaults(t *testing.T) {
	tests := map[string]string{
		"default:Serif":     "Serif",
		"default:SansSerif": "SansSerif",
		"default:Fancy":     "default:Fancy",
		"Garamond":          "Garamond",
	}
	for id, want := range tests {
		if got := FamilyFromItem(Item{ID: id}); got != want {
			t.Fatalf("FamilyFromItem(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestFontItemsGroupKeywordsListMembers(t *testing.T) {
	families := manyFamilies(60)
	groups := fontgroup.Partition(families)
	items := FontItems(Context{FontGroups: groups})
	for i, g := range groups {
		item := items[3+i]
		if len(item.Keywords) != len(g.Members) {
			t.Fatalf("expected %d keywords on %s, got %d", len(g.Members), item.ID, len(item.Keywords))
		}
		if item.Keywords[0] != g.Members[0] {
			t.Fatalf("expected first keyword %q, got %q", g.Members[0], item.Keywords[0])
		}
	}
}

type stubExporter struct {
	path string
	err  error
}

func (s *stubExporter) SavePNG(path string) error {
	s.path = path
	return s.err
}

func TestExportCommand(t *testing.T) {
	exp := &stubExporter{}
	msg := ExportCommand(exp, "  out.png ")()
	res, ok := msg.(ActionResult)
	if !ok || res.Err != nil {
		t.Fatalf("expected success, got %#v", msg)
	}
	if exp.path != "out.png" {
		t.Fatalf("expected trimmed path, got %q", exp.path)
	}
	boom := errors.New("disk full")
	msg = ExportCommand(&stubExporter{err: boom}, "out.png")()
	if res := msg.(ActionResult); !errors.Is(res.Err, boom) {
		t.Fatalf("expected wrapped export error, got %v", res.Err)
	}
}

func TestExportActionSeedsPath(t *testing.T) {
	msg := ExportAction(Context{ExportPath: "poster.png"}, Item{ID: IDExport})()
	if prompt, ok := msg.(ExportPrompt); !ok || prompt.Initial != "poster.png" {
		t.Fatalf("expected export prompt seeded with path, got %#v", msg)
	}
}
