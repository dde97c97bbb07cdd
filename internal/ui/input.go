package ui

import (
	"strings"
	"unicode"

	"github.com/atomicstack/text-style-control/internal/logging/events"
	"github.com/atomicstack/text-style-control/internal/menu"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newFilterCursor() cursor.Model {
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	return c
}

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// handleTextInput feeds a key to the filter of the current level. It reports
// false for keys the filter does not use, which then fall through to menu
// navigation.
func (m *Model) handleTextInput(msg tea.KeyMsg) (bool, tea.Cmd) {
	current := m.currentLevel()
	if m.loading || current == nil {
		return false, nil
	}
	caret := current.FilterCursorPos()
	if edit, ok := filterEdits[msg.String()]; ok {
		if !current.EditFilter(edit) {
			return false, nil
		}
		events.Filter.Edit(current.ID, edit.String(), current.Filter, current.FilterCursor)
		m.afterFilterChange(caret, edit.Rewrites())
		return true, nil
	}
	var text string
	switch msg.Type {
	case tea.KeySpace:
		text = " "
	case tea.KeyRunes:
		if msg.Alt || !printable(msg.Runes) {
			return false, nil
		}
		text = string(msg.Runes)
	default:
		return false, nil
	}
	if !current.InsertFilter(text) {
		return false, nil
	}
	events.Filter.Type(current.ID, current.Filter, len(current.Items))
	m.afterFilterChange(caret, true)
	return true, nil
}

func printable(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// afterFilterChange restarts the caret blink when it moved and, when the
// query changed, drops stale messages and scrolls to the new cursor.
func (m *Model) afterFilterChange(caretBefore int, rewritten bool) {
	current := m.currentLevel()
	if current.FilterCursorPos() != caretBefore {
		m.filterCursorDirty = true
	}
	if !rewritten {
		return
	}
	m.forceClearInfo()
	m.errMsg = ""
	m.syncViewport(current)
}

// filterPlaceholder is shown before anything is typed. Font levels invite a
// family name, since the font menu also matches the families inside each
// group.
func filterPlaceholder(levelID string) string {
	if levelID == menu.IDFont || strings.HasPrefix(levelID, menu.IDFont+":") {
		return "(type a font name)"
	}
	return "(type to search)"
}

// filterPrompt renders the bottom filter row with the blinking caret.
func (m *Model) filterPrompt() string {
	prompt := paint(styles.FilterPrompt, "» ")
	current := m.currentLevel()
	if current == nil {
		return prompt
	}
	if current.Filter == "" {
		hint := []rune(filterPlaceholder(current.ID))
		return prompt + m.renderCaret(string(hint[0]), styles.FilterPlaceholder) + paint(styles.FilterPlaceholder, string(hint[1:]))
	}
	query := []rune(current.Filter)
	pos := current.FilterCursorPos()
	under, after := " ", ""
	if pos < len(query) {
		under, after = string(query[pos]), string(query[pos+1:])
	}
	return prompt + paint(styles.Filter, string(query[:pos])) + m.renderCaret(under, styles.Filter) + paint(styles.Filter, after)
}

// renderCaret draws char under the filter caret. While the blink is off the
// character takes the surrounding text style.
func (m *Model) renderCaret(char string, text *lipgloss.Style) string {
	if text != nil {
		m.filterCursor.TextStyle = *text
	} else {
		m.filterCursor.TextStyle = lipgloss.NewStyle()
	}
	m.filterCursor.SetChar(char)
	return m.filterCursor.View()
}

func paint(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
