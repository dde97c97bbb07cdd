package ui

import (
	"errors"
	"testing"

	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func TestWithPromptResetsStateAndReturnsCommand(t *testing.T) {
	m := newTestModel(Options{Verbose: true})
	m.loading = true
	m.pendingID = "test"
	m.pendingLabel = "label"
	m.errMsg = "previous"
	m.setInfo("old info")

	cmd := m.withPrompt(func() promptResult {
		return promptResult{Cmd: tea.Quit, Info: "executed"}
	})

	if m.loading {
		t.Fatalf("expected loading cleared")
	}
	if m.pendingID != "" || m.pendingLabel != "" {
		t.Fatalf("expected pending fields cleared, got %q %q", m.pendingID, m.pendingLabel)
	}
	if m.errMsg != "" {
		t.Fatalf("expected error cleared, got %q", m.errMsg)
	}
	if info := m.currentInfo(); info != "executed" {
		t.Fatalf("expected info message set, got %q", info)
	}
	if cmd == nil {
		t.Fatalf("expected command returned")
	}
	if msg := cmd(); msg == nil {
		t.Fatalf("expected command to emit a message")
	} else if _, ok := msg.(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message, got %T", msg)
	}
}

func TestWithPromptHandlesError(t *testing.T) {
	m := newTestModel(Options{})
	boom := errors.New("boom")

	cmd := m.withPrompt(func() promptResult {
		return promptResult{Err: boom}
	})

	if cmd != nil {
		t.Fatalf("expected no command on error")
	}
	if m.errMsg != boom.Error() {
		t.Fatalf("expected error message %q, got %q", boom.Error(), m.errMsg)
	}
	if info := m.currentInfo(); info != "" {
		t.Fatalf("expected info cleared on error, got %q", info)
	}
}

func TestPromptRequestOpensSeededForm(t *testing.T) {
	m := newTestModel(Options{})
	m.Update(menu.PromptRequest{Command: control.SetSize, Label: "Text Size…"})
	if m.mode != ModePromptForm || m.form == nil {
		t.Fatalf("expected prompt form to open")
	}
	if got := m.form.Command(); got != control.SetSize {
		t.Fatalf("expected set-size form, got %s", got)
	}
	if got := m.form.Value(); got != "24" {
		t.Fatalf("expected form seeded with current size, got %q", got)
	}
}

func TestPromptRequestForNonPromptedCommand(t *testing.T) {
	m := newTestModel(Options{})
	m.Update(menu.PromptRequest{Command: control.ToggleBold, Label: "Bold"})
	if m.form != nil {
		t.Fatalf("expected no form for a toggle")
	}
	if m.errMsg == "" {
		t.Fatalf("expected error for command without a prompt")
	}
}

func TestExportPromptOpensExportForm(t *testing.T) {
	m := newTestModel(Options{ExportPath: "out.png"})
	m.Update(menu.ExportPrompt{Initial: "out.png"})
	if m.form == nil || !m.form.IsExport() {
		t.Fatalf("expected export form")
	}
	if got := m.form.Value(); got != "out.png" {
		t.Fatalf("expected export path seeded, got %q", got)
	}
}

func TestEscapeCancelsPromptWithoutError(t *testing.T) {
	m := newTestModel(Options{})
	m.Update(menu.PromptRequest{Command: control.ChangeText, Label: "Change Text…"})
	before := m.Canvas().Revision()
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.form != nil || m.mode != ModeMenu {
		t.Fatalf("expected form closed after escape")
	}
	if m.errMsg != "" {
		t.Fatalf("expected silent cancel, got %q", m.errMsg)
	}
	if m.Canvas().Revision() != before {
		t.Fatalf("expected no redraw after cancel")
	}
	if len(m.stack) != 1 {
		t.Fatalf("expected menu level kept, got %d levels", len(m.stack))
	}
}
