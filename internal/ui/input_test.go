package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestHandleTextInputAppendsRunes(t *testing.T) {
	m := newTestModel(Options{})
	current := m.currentLevel()
	current.UpdateItems([]menu.Item{{ID: "one"}})
	handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	if !handled {
		t.Fatalf("expected key press to be handled")
	}
	if current.Filter != "abc" {
		t.Fatalf("expected filter 'abc', got %q", current.Filter)
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor at end, got %d", pos)
	}
}

func TestHandleTextInputCursorMovement(t *testing.T) {
	m := newTestModel(Options{})
	current := m.currentLevel()
	current.UpdateItems([]menu.Item{{ID: "one"}})
	current.SetFilter("abc", 3)

	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyLeft}); !handled {
		t.Fatalf("expected left arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 2 {
		t.Fatalf("expected cursor at 2 after left, got %d", pos)
	}

	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyRight}); !handled {
		t.Fatalf("expected right arrow to be handled")
	}
	if pos := current.FilterCursorPos(); pos != 3 {
		t.Fatalf("expected cursor back at 3, got %d", pos)
	}
}

func TestFilterPromptPlaceholder(t *testing.T) {
	m := newTestModel(Options{})
	current := m.currentLevel()
	current.SetFilter("", 0)
	prompt := m.filterPrompt()
	if !strings.Contains(prompt, "type to search") {
		t.Fatalf("expected placeholder in prompt, got %q", prompt)
	}
}

func TestFontLevelsAskForFamilyName(t *testing.T) {
	for _, id := range []string{menu.IDFont, menu.IDFont + ":group-a-c"} {
		if got := filterPlaceholder(id); got != "(type a font name)" {
			t.Fatalf("%s: expected font placeholder, got %q", id, got)
		}
	}
	if got := filterPlaceholder(menu.IDJustify); got != "(type to search)" {
		t.Fatalf("expected generic placeholder for justify, got %q", got)
	}
}

func TestWordEditKeysOnFilter(t *testing.T) {
	m := newTestModel(Options{})
	current := m.currentLevel()
	current.SetFilter("text size", 9)
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlW}); !handled {
		t.Fatalf("expected ctrl+w to be handled")
	}
	if current.Filter != "text " {
		t.Fatalf("expected last word deleted, got %q", current.Filter)
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}); !handled {
		t.Fatalf("expected ctrl+u to be handled")
	}
	if current.Filter != "" || len(current.Items) != len(current.Full) {
		t.Fatalf("expected filter cleared, got %q with %d items", current.Filter, len(current.Items))
	}
	if handled, _ := m.handleTextInput(tea.KeyMsg{Type: tea.KeyCtrlU}); handled {
		t.Fatalf("expected ctrl+u on an empty filter to fall through")
	}
}

func TestFilterIgnoresCheckboxMarks(t *testing.T) {
	m := newTestModel(Options{})
	m.Update(menu.ControlIntent{Command: control.ToggleBold, Label: "Bold"})
	current := m.currentLevel()
	m.handleTextInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	for _, item := range current.Items {
		if strings.Contains(item.Label, "Bold") || strings.Contains(item.Label, "Italic") {
			t.Fatalf("expected checkbox mark not to match filter, got %q", item.Label)
		}
	}
	if len(current.Items) == 0 {
		t.Fatalf("expected Export PNG to match x")
	}
	if current.IndexOf(menu.IDExport) < 0 {
		t.Fatalf("expected export item in filtered list, got %#v", current.Items)
	}
}
