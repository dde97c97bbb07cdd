package ui

import (
	"fmt"

	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/logging"
	"github.com/atomicstack/text-style-control/internal/logging/events"
	"github.com/atomicstack/text-style-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.clearPending()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	m.errMsg = ""
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	events.Action.Success(result.Info)
	return nil
}

func (m *Model) handleControlIntentMsg(msg tea.Msg) tea.Cmd {
	intent, ok := msg.(menu.ControlIntent)
	if !ok {
		return nil
	}
	m.clearPending()
	m.applyControlResult(m.dispatchIntent(intent), intent.Label)
	return nil
}

// dispatchIntent applies a menu intent. Toggles read their new state from
// the controller's indicators at apply time, not from the menu snapshot.
func (m *Model) dispatchIntent(intent menu.ControlIntent) control.Result {
	switch intent.Command {
	case control.ToggleBold, control.ToggleItalic:
		return m.controller.Toggle(intent.Command)
	case control.ResetDefaults:
		return m.controller.Reset()
	}
	return m.controller.Apply(intent.Command, intent.Payload)
}

func (m *Model) handlePromptAnswerMsg(msg tea.Msg) tea.Cmd {
	answer, ok := msg.(menu.PromptAnswer)
	if !ok {
		return nil
	}
	m.clearPending()
	res := m.controller.Run(answer.Command, answer.Prompts())
	m.applyControlResult(res, string(answer.Command))
	return nil
}

// applyControlResult reports a controller outcome and refreshes every open
// level, since any command may have flipped an indicator.
func (m *Model) applyControlResult(res control.Result, label string) {
	switch {
	case res.Cancelled:
		m.errMsg = ""
	case res.Err != nil:
		m.errMsg = res.Message
		m.forceClearInfo()
		events.Action.Error(res.Err)
	case res.Committed:
		m.errMsg = ""
		info := describeResult(res, label)
		if m.verbose {
			m.setInfo(info)
		} else {
			m.forceClearInfo()
		}
		events.Action.Success(info)
	}
	m.refreshLevels()
}

func describeResult(res control.Result, label string) string {
	if res.Value == nil {
		return fmt.Sprintf("Applied %s", label)
	}
	return fmt.Sprintf("Applied %s: %v", res.Command, res.Value)
}

func (m *Model) clearPending() {
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
}

// refreshLevels reruns the loader of every level on the stack so labels and
// indicator marks match the model.
func (m *Model) refreshLevels() {
	ctx := m.menuContext()
	for _, lvl := range m.stack {
		node := lvl.Node
		if node == nil {
			node, _ = m.registry.Find(lvl.ID)
		}
		if node == nil || node.Loader == nil {
			continue
		}
		items, err := node.Loader(ctx)
		if err != nil {
			logging.Error(err)
			continue
		}
		lvl.UpdateItems(items)
		m.syncViewport(lvl)
	}
}

// loadMenuCmd runs a submenu loader off the update goroutine. A non-empty
// focus puts the opened level's cursor on its closest match.
func (m *Model) loadMenuCmd(id, title, focus string, loader menu.Loader) tea.Cmd {
	ctx := m.menuContext()
	return func() tea.Msg {
		items, err := loader(ctx)
		if err != nil {
			logging.Error(err)
		}
		return categoryLoadedMsg{id: id, title: title, focus: focus, items: items, err: err}
	}
}

// categoryLoadedMsg mirrors the async loader response.
type categoryLoadedMsg struct {
	id    string
	title string
	focus string
	items []menu.Item
	err   error
}

func (m *Model) menuContext() menu.Context {
	ctx := menu.Context{
		FontGroups:  m.fonts.Groups(),
		FontsLoaded: m.fonts.Loaded(),
		FontErr:     m.fonts.Err(),
		ExportPath:  m.exportPath,
	}
	if m.controller != nil {
		ctx.Style = m.controller.Model().Snapshot()
		ctx.Indicators = m.controller.Indicators()
	}
	return ctx
}
