package events

import "github.com/atomicstack/text-style-control/internal/logging"

// Menu, filter, action and command tracers. Each method emits one trace
// event and is a no-op while tracing is off.
type (
	MenuTracer    struct{}
	FilterTracer  struct{}
	ActionTracer  struct{}
	CommandTracer struct{}
)

var (
	Menu    = MenuTracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

type fields map[string]interface{}

func (MenuTracer) Enter(levelID, itemID, filter string) {
	logging.Trace("menu.enter", fields{"level": levelID, "item": itemID, "filter": filter})
}

func (MenuTracer) Move(levelID, move string, cursor int) {
	logging.Trace("menu.move", fields{"level": levelID, "move": move, "cursor": cursor})
}

func (MenuTracer) Back(from, to string) {
	logging.Trace("menu.back", fields{"from": from, "to": to})
}

// Focus records a submenu opening with the cursor on a family typed at the
// parent level.
func (MenuTracer) Focus(levelID, query string, cursor int) {
	logging.Trace("menu.focus", fields{"level": levelID, "query": query, "cursor": cursor})
}

func (FilterTracer) Edit(levelID, edit, filter string, caret int) {
	logging.Trace("filter.edit", fields{"level": levelID, "edit": edit, "filter": filter, "caret": caret})
}

func (FilterTracer) Type(levelID, filter string, matches int) {
	logging.Trace("filter.type", fields{"level": levelID, "filter": filter, "matches": matches})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", fields{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", fields{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", fields{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", fields{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", fields{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", fields{"id": id, "label": label, "msg": msgType})
}
