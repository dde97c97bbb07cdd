package menu

import (
	"fmt"

	"github.com/atomicstack/text-style-control/internal/control"
	"github.com/atomicstack/text-style-control/internal/style"
	tea "github.com/charmbracelet/bubbletea"
)

// PromptAction opens the dialog for a prompted command.
func PromptAction(cmd control.Command) Action {
	return func(_ Context, item Item) tea.Cmd {
		return func() tea.Msg {
			return PromptRequest{Command: cmd, Label: item.Label}
		}
	}
}

// ToggleAction flips a checkable control. The controller derives the new
// state from its indicator when the intent is applied, so two quick presses
// always cancel out.
func ToggleAction(cmd control.Command) Action {
	return func(_ Context, item Item) tea.Cmd {
		return func() tea.Msg {
			return ControlIntent{Command: cmd, Label: item.Label}
		}
	}
}

// ResetAction restores the default emphasis and alignment.
func ResetAction(_ Context, item Item) tea.Cmd {
	return func() tea.Msg {
		return ControlIntent{Command: control.ResetDefaults, Label: item.Label}
	}
}

func loadJustifyMenu(ctx Context) ([]Item, error) {
	return JustifyItems(ctx.Indicators), nil
}

// JustifyItems renders the alignment radio group.
func JustifyItems(ind control.Indicators) []Item {
	variants := style.Justifications()
	items := make([]Item, 0, len(variants))
	for _, j := range variants {
		items = append(items, Item{
			ID:    j.String(),
			Label: fmt.Sprintf("%s %s", radio(ind.Checked(control.SetJustify, j)), j.Label()),
		})
	}
	return items
}

// JustifyAction commits the chosen alignment.
func JustifyAction(_ Context, item Item) tea.Cmd {
	return func() tea.Msg {
		j, err := style.ParseJustification(item.ID)
		if err != nil {
			return ActionResult{Err: err}
		}
		return ControlIntent{
			Command: control.SetJustify,
			Payload: control.Payload{Justification: j},
			Label:   j.Label(),
		}
	}
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func radio(on bool) string {
	if on {
		return "(•)"
	}
	return "( )"
}
