package ui

import (
	"strings"

	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// handleActiveForm routes input to the open dialog. Messages with their own
// handler, such as font watcher events, still reach it while the form is up.
func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.mode != ModePromptForm || m.form == nil {
		return false, nil
	}
	if _, isKey := msg.(tea.KeyMsg); !isKey && m.handlerFor(msg) != nil {
		return false, nil
	}
	cmd, done, cancel := m.form.Update(msg)
	if cancel {
		form := m.form
		m.closeForm()
		if !form.IsExport() {
			dismissed := menu.PromptAnswer{Command: form.Command()}
			m.applyControlResult(m.controller.Run(dismissed.Command, dismissed.Prompts()), form.Title())
		}
		return true, cmd
	}
	if done {
		form := m.form
		m.closeForm()
		m.loading = true
		m.pendingID = form.ActionID()
		m.pendingLabel = strings.TrimSpace(form.Value())
		return true, cmd
	}
	return true, cmd
}

func (m *Model) startPromptForm(p control.Prompt) {
	m.form = menu.NewPromptForm(p)
	m.mode = ModePromptForm
}

func (m *Model) startExportForm(initial string) {
	m.form = menu.NewExportForm(m.canvas, initial)
	m.mode = ModePromptForm
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = ModeMenu
}

// viewFormWithHeader renders the open form. Help text is wrapped to width so
// it survives the narrow menu column.
func (m *Model) viewFormWithHeader(header string, width int) string {
	lines := []string{}
	if header != "" {
		lines = append(lines, styles.Header.Render(header))
	}
	lines = append(lines, styles.FormTitle.Render(m.form.Title()), "", m.form.InputView())
	if swatch, ok := m.form.Swatch(); ok {
		sample := lipgloss.NewStyle().Background(lipgloss.Color(swatch.Hex())).Render("      ")
		lines = append(lines, "", sample+" "+swatch.Hex())
	}
	if err := m.form.Error(); err != "" {
		lines = append(lines, "", styles.Error.Render(err))
	}
	help := m.form.Help()
	if width > 0 {
		help = wordwrap.String(help, width)
	}
	lines = append(lines, "", styles.FormHelp.Render(help))
	return strings.Join(lines, "\n")
}
