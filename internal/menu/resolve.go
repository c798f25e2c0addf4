package menu

// Context carries the effective inherited settings for one menu level. It is
// recomputed on each descent and never mutated afterwards: the resolved
// context of a level becomes the parent context for any submenu below it.
type Context struct {
	FuzzelArgs   []string
	FuzzelConfig map[string]string
	IconDirs     []string
}

// Resolve applies the inheritance rules to produce this menu's effective
// context:
//
//   - fuzzel args: the menu's own args when present, otherwise the parent's
//     already-effective args (first non-empty wins walking up).
//   - fuzzel config: the parent's effective mapping overlaid with the menu's
//     own entries; the menu's entries win on key collision.
//   - icon dirs: the parent's effective list followed by the menu's own dirs,
//     so ancestor dirs are searched first.
func (m *Menu) Resolve(parent Context) Context {
	out := Context{}

	if len(m.FuzzelArgs) > 0 {
		out.FuzzelArgs = append([]string(nil), m.FuzzelArgs...)
	} else {
		out.FuzzelArgs = append([]string(nil), parent.FuzzelArgs...)
	}

	if len(parent.FuzzelConfig) > 0 || len(m.FuzzelConfig) > 0 {
		out.FuzzelConfig = make(map[string]string, len(parent.FuzzelConfig)+len(m.FuzzelConfig))
		for k, v := range parent.FuzzelConfig {
			out.FuzzelConfig[k] = v
		}
		for k, v := range m.FuzzelConfig {
			out.FuzzelConfig[k] = v
		}
	}

	if len(parent.IconDirs) > 0 || len(m.IconDirs) > 0 {
		out.IconDirs = make([]string, 0, len(parent.IconDirs)+len(m.IconDirs))
		out.IconDirs = append(out.IconDirs, parent.IconDirs...)
		out.IconDirs = append(out.IconDirs, m.IconDirs...)
	}

	return out
}
