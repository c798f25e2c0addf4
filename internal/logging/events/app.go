package events

import "github.com/Gingeh/uff/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) ConfigLoaded(path string, itemCount int) {
	logging.Trace("app.config.loaded", map[string]interface{}{"path": path, "items": itemCount})
}
