package ui

import (
	"fmt"

	"github.com/atomicstack/text-style-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

// withPrompt centralises the common prompt flow: reset pending state, then
// run action, which may open a form, report an error or return a follow-up
// command.
func (m *Model) withPrompt(action func() promptResult) tea.Cmd {
	m.clearPending()
	m.forceClearInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		return nil
	}
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	}
	return result.Cmd
}

func (m *Model) handlePromptRequestMsg(msg tea.Msg) tea.Cmd {
	req, ok := msg.(menu.PromptRequest)
	if !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		p, ok := m.controller.PromptFor(req.Command)
		if !ok {
			return promptResult{Err: fmt.Errorf("%s takes no input", req.Label)}
		}
		m.startPromptForm(p)
		return promptResult{}
	})
}

func (m *Model) handleExportPromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.ExportPrompt)
	if !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		m.startExportForm(prompt.Initial)
		return promptResult{}
	})
}
