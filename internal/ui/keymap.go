package ui

import (
	"strings"

	uistate "github.com/atomicstack/text-style-control/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the menu bindings. Printable keys never appear here: they are
// typed into the filter.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Select   key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑/↓", "move")),
	Down:     key.NewBinding(key.WithKeys("down", "ctrl+n")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
	Home:     key.NewBinding(key.WithKeys("home")),
	End:      key.NewBinding(key.WithKeys("end")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// moves maps each cursor binding to the level movement it triggers.
var moves = []struct {
	binding *key.Binding
	move    uistate.Move
}{
	{&keys.Up, uistate.MoveUp},
	{&keys.Down, uistate.MoveDown},
	{&keys.PageUp, uistate.MovePageUp},
	{&keys.PageDown, uistate.MovePageDown},
	{&keys.Home, uistate.MoveHome},
	{&keys.End, uistate.MoveEnd},
}

func moveFor(msg tea.KeyMsg) (uistate.Move, bool) {
	for _, m := range moves {
		if key.Matches(msg, *m.binding) {
			return m.move, true
		}
	}
	return 0, false
}

// filterEdits maps editing keys to filter operations. Left and right move the
// filter caret, since the menu has no horizontal navigation.
var filterEdits = map[string]uistate.FilterEdit{
	"ctrl+u":    uistate.FilterClear,
	"backspace": uistate.FilterDeleteRune,
	"ctrl+h":    uistate.FilterDeleteRune,
	"ctrl+w":    uistate.FilterDeleteWord,
	"ctrl+a":    uistate.FilterCaretStart,
	"ctrl+e":    uistate.FilterCaretEnd,
	"left":      uistate.FilterCaretLeft,
	"right":     uistate.FilterCaretRight,
	"alt+b":     uistate.FilterCaretWordLeft,
	"alt+f":     uistate.FilterCaretWordRight,
}

// footerHelp is the hint row shown with --footer.
var footerHelp = func() string {
	parts := []string{}
	for _, b := range []key.Binding{keys.Up, keys.Select} {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	parts = append(parts, "type to filter")
	for _, b := range []key.Binding{keys.Back, keys.Quit} {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, "  ")
}()
