package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/menu"
	"github.com/atomicstack/text-style-control/internal/style"
	"github.com/charmbracelet/lipgloss"
)

func TestViewDisplaysCanvasPanel(t *testing.T) {
	m := newTestModel(Options{Width: 100, Height: 20})
	if !m.hasSidePanel() {
		t.Fatalf("expected side panel at width 100")
	}
	view := m.View()
	if !strings.Contains(view, "Serif 24pt") {
		t.Fatalf("expected canvas title in view, got:\n%s", view)
	}
	if !strings.Contains(view, style.DefaultText) {
		t.Fatalf("expected canvas text in view, got:\n%s", view)
	}
	if !strings.Contains(view, "#000000") {
		t.Fatalf("expected color meta in view, got:\n%s", view)
	}
	for i, row := range strings.Split(view, "\n") {
		if w := lipgloss.Width(row); w > 100 {
			t.Fatalf("row %d exceeds terminal width: %d", i, w)
		}
	}
}

func TestViewFallsBackToInlineCanvas(t *testing.T) {
	m := newTestModel(Options{Width: 50, Height: 30})
	if m.hasSidePanel() {
		t.Fatalf("expected no side panel at width 50")
	}
	view := m.View()
	if !strings.Contains(view, "Serif 24pt") {
		t.Fatalf("expected inline canvas title, got:\n%s", view)
	}
	if !strings.Contains(view, "Text Size…") {
		t.Fatalf("expected menu items above canvas, got:\n%s", view)
	}
}

func TestViewReflectsStyleChanges(t *testing.T) {
	m := newTestModel(Options{Width: 100, Height: 20})
	m.Update(menu.ControlIntent{Command: control.ToggleBold, Label: "Bold"})
	view := m.View()
	if !strings.Contains(view, "Serif 24pt bold") {
		t.Fatalf("expected bold in canvas title, got:\n%s", view)
	}
	if !strings.Contains(view, "[x] Bold") {
		t.Fatalf("expected checked bold item, got:\n%s", view)
	}
}

func TestViewShowsPromptForm(t *testing.T) {
	m := newTestModel(Options{Width: 100, Height: 20})
	m.Update(menu.PromptRequest{Command: control.SetColor, Label: "Text Color…"})
	view := m.View()
	if !strings.Contains(view, "Text Color") {
		t.Fatalf("expected form title, got:\n%s", view)
	}
	if strings.Contains(view, "Text Size…") {
		t.Fatalf("expected form to replace the menu, got:\n%s", view)
	}
}

func TestViewShowsErrorLine(t *testing.T) {
	m := newTestModel(Options{Width: 100, Height: 20})
	m.Update(menu.PromptAnswer{Command: control.SetLineHeight, Answer: control.Answer{Text: "-1", OK: true}})
	view := m.View()
	if !strings.Contains(view, "Error:") || !strings.Contains(view, "line height") {
		t.Fatalf("expected line height error in view, got:\n%s", view)
	}
}
