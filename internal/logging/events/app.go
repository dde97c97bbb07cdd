package events

import "github.com/atomicstack/text-style-control/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Config(path string, loaded bool) {
	logging.Trace("app.config", fields{"path": path, "loaded": loaded})
}

func (AppTracer) Export(path string, err error) {
	payload := fields{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.export", payload)
}
