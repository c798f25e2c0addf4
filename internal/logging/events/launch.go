package events

import "github.com/Gingeh/uff/internal/logging"

type LaunchTracer struct{}

var Launch = LaunchTracer{}

func (LaunchTracer) Spawn(argv []string) {
	logging.Trace("launch.spawn", map[string]interface{}{"argv": argv})
}

func (LaunchTracer) Failed(argv []string, err error) {
	logging.Trace("launch.failed", map[string]interface{}{"argv": argv, "error": err.Error()})
}
