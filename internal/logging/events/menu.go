package events

import "github.com/Gingeh/uff/internal/logging"

type MenuTracer struct{}

var Menu = MenuTracer{}

func (MenuTracer) Show(name string, items int, iconDirs []string) {
	logging.Trace("menu.show", map[string]interface{}{"name": name, "items": items, "iconDirs": iconDirs})
}

func (MenuTracer) Descend(name string) {
	logging.Trace("menu.descend", map[string]interface{}{"name": name})
}
