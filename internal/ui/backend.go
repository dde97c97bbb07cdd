package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/text-style-control/internal/backend"
	"github.com/atomicstack/text-style-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent stores a new family list, rebuilds the font registry
// nodes and refreshes any open font menu. A group submenu whose group no
// longer exists is closed.
func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err

	res := m.dispatcher.Handle(evt)
	if res.Err != nil {
		m.backendLastErr = res.Err.Error()
		return nil
	}

	if res.FontsUpdated {
		m.registry = menu.BuildRegistry(m.fonts.Groups())
		m.pruneStaleLevels()
		for _, lvl := range m.stack {
			if node, ok := m.registry.Find(lvl.ID); ok {
				lvl.Node = node
			}
		}
		m.refreshLevels()
	}

	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
	return nil
}

// pruneStaleLevels drops levels, and everything above them, whose registry
// node disappeared in the latest rebuild.
func (m *Model) pruneStaleLevels() {
	for i, lvl := range m.stack {
		if i == 0 {
			continue
		}
		if _, ok := m.registry.Find(lvl.ID); ok {
			continue
		}
		m.stack = m.stack[:i]
		if parent := m.currentLevel(); parent != nil {
			parent.LastCursor = -1
		}
		m.setInfo(fmt.Sprintf("%s is no longer available.", strings.TrimSpace(lvl.Title)))
		return
	}
}

func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}
