package command

import (
	"fmt"

	"github.com/atomicstack/text-style-control/internal/logging/events"
	"github.com/atomicstack/text-style-control/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Item    menu.Item
}

// Bus coordinates the execution of menu actions. Actions only describe what
// should change; the returned message is applied by the update loop.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a menu action into a Bubble Tea command while emitting trace
// logs. Actions that produce nothing still yield an empty ActionResult so the
// caller's pending state is cleared.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return menu.ActionResult{Err: fmt.Errorf("%s has no action", req.Label)}
		}
		cmd := req.Handler(ctx, req.Item)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return menu.ActionResult{}
		}
		msg := cmd()
		if msg == nil {
			events.Command.NoOp(req.ID, req.Label)
			return menu.ActionResult{}
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
