package events

import "github.com/atomicstack/text-style-control/internal/logging"

type StyleTracer struct{}

type FontTracer struct{}

type CanvasTracer struct{}

var (
	Style  = StyleTracer{}
	Font   = FontTracer{}
	Canvas = CanvasTracer{}
)

func (StyleTracer) Prompt(command string) {
	logging.Trace("style.prompt", fields{"command": command})
}

func (StyleTracer) Commit(command string, value interface{}) {
	logging.Trace("style.commit", fields{"command": command, "value": value})
}

func (StyleTracer) Reject(command, input string, err error) {
	payload := fields{"command": command, "input": input}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("style.reject", payload)
}

func (StyleTracer) Cancel(command string) {
	logging.Trace("style.cancel", fields{"command": command})
}

func (FontTracer) Scan(source string, count int, err error) {
	payload := fields{"source": source, "count": count}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("font.scan", payload)
}

func (FontTracer) Groups(groups, members int) {
	logging.Trace("font.groups", fields{"groups": groups, "members": members})
}

func (FontTracer) Watch(dir string, err error) {
	payload := fields{"dir": dir}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("font.watch", payload)
}

func (CanvasTracer) Redraw(element string, revision uint64) {
	logging.Trace("canvas.redraw", fields{"element": element, "revision": revision})
}

func (CanvasTracer) Rasterize(element string, width, height int) {
	logging.Trace("canvas.rasterize", fields{"element": element, "width": width, "height": height})
}
