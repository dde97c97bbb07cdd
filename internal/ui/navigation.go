package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/text-style-control/internal/logging"
	"github.com/atomicstack/text-style-control/internal/logging/events"
	"github.com/atomicstack/text-style-control/internal/ui/command"
	uistate "github.com/atomicstack/text-style-control/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.mode != ModeMenu {
		return nil
	}
	if handled, cmd := m.handleTextInput(keyMsg); handled {
		return cmd
	}
	switch {
	case key.Matches(keyMsg, keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, keys.Back):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, keys.Select):
		return m.handleEnterKey()
	}
	if mv, ok := moveFor(keyMsg); ok {
		m.moveCursor(mv)
	}
	return nil
}

// handleEscapeKey backs out one step: a typed filter is cleared first, then
// the current submenu is closed, and at the top level the program quits.
func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil {
		return tea.Quit
	}
	if current.Filter != "" {
		caret := current.FilterCursorPos()
		current.EditFilter(uistate.FilterClear)
		m.afterFilterChange(caret, true)
		return nil
	}
	if len(m.stack) <= 1 {
		return tea.Quit
	}
	m.popLevel()
	return nil
}

// popLevel closes the current level and puts the parent's cursor back on the
// entry it was opened from.
func (m *Model) popLevel() {
	child := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	parent := m.currentLevel()
	if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
		parent.Cursor = parent.LastCursor
	} else if idx := parent.IndexOf(child.ID); idx >= 0 {
		parent.Cursor = idx
	}
	parent.LastCursor = -1
	m.syncViewport(parent)
	m.errMsg = ""
	m.forceClearInfo()
	events.Menu.Back(child.ID, parent.ID)
}

// handleEnterKey opens the submenu under the cursor or runs its action. When
// the entry was found by typing a family name into the font menu, the group
// submenu opens with that family under the cursor.
func (m *Model) handleEnterKey() tea.Cmd {
	current := m.currentLevel()
	if m.loading || current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	query := strings.TrimSpace(current.Filter)
	events.Menu.Enter(current.ID, item.ID, query)
	if current.Filter != "" {
		current.SetFilter("", 0)
		m.filterCursorDirty = true
		if idx := current.IndexOf(item.ID); idx >= 0 {
			current.Cursor = idx
		}
	}

	node := current.Node
	if node == nil {
		node, _ = m.registry.Find(current.ID)
	}
	if node == nil {
		m.setInfo(fmt.Sprintf("%s has no action", item.Label))
		return nil
	}
	child := node.Children[item.ID]
	if child != nil && child.Loader != nil {
		focus := ""
		if len(item.Keywords) > 0 {
			focus = query
		}
		current.LastCursor = current.Cursor
		m.beginPending(child.ID, item.Label)
		return m.loadMenuCmd(child.ID, uistate.SearchText(item.Label), focus, child.Loader)
	}
	id, action := node.ID, node.Action
	if child != nil && child.Action != nil {
		id, action = child.ID, child.Action
	}
	if action == nil {
		m.setInfo(fmt.Sprintf("%s has no action", item.Label))
		return nil
	}
	m.beginPending(id, item.Label)
	return m.bus.Execute(m.menuContext(), command.Request{ID: id, Label: item.Label, Handler: action, Item: item})
}

func (m *Model) beginPending(id, label string) {
	m.loading = true
	m.pendingID = id
	m.pendingLabel = label
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) moveCursor(mv uistate.Move) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	if current.MoveCursor(mv, m.maxVisibleItems()) {
		events.Menu.Move(current.ID, mv.String(), current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) syncViewport(l *level) {
	if l != nil {
		l.ScrollToCursor(m.maxVisibleItems())
	}
}

func (m *Model) handleCategoryLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(categoryLoadedMsg)
	if !ok || loaded.id != m.pendingID {
		return nil
	}
	m.clearPending()
	if loaded.err != nil {
		m.errMsg = loaded.err.Error()
		return nil
	}
	m.errMsg = ""
	node, _ := m.registry.Find(loaded.id)
	lvl := newLevel(loaded.id, loaded.title, loaded.items, node)
	if loaded.focus != "" {
		if idx := uistate.BestMatchIndex(lvl.Items, loaded.focus); idx >= 0 {
			lvl.Cursor = idx
			events.Menu.Focus(lvl.ID, loaded.focus, idx)
		}
	}
	m.syncViewport(lvl)
	m.stack = append(m.stack, lvl)
	if len(lvl.Items) == 0 {
		m.setInfo("No entries found.")
	} else {
		m.clearInfo()
	}
	return nil
}

// applyRootMenuOverride opens a submenu (font or justify) as the top level.
// Unknown names leave the main menu in place and report an error.
func (m *Model) applyRootMenuOverride(requested string) {
	name := strings.TrimSpace(requested)
	if name == "" || m.registry == nil {
		return
	}
	node, ok := m.registry.Find(strings.ToLower(name))
	if !ok || node.Loader == nil {
		m.errMsg = fmt.Sprintf("Unknown root menu %q", name)
		return
	}
	items, err := node.Loader(m.menuContext())
	if err != nil {
		logging.Error(err)
		m.errMsg = fmt.Sprintf("Failed to load %s menu: %v", node.ID, err)
	}
	root := newLevel(node.ID, strings.TrimSpace(crumbCleaner.Replace(node.ID)), items, node)
	m.syncViewport(root)
	m.stack = []*level{root}
	m.rootMenuID = node.ID
	if segment := levelCrumb(root); segment != "" {
		m.rootTitle = segment
	}
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
