package menu

import (
	"fmt"
	"strings"
)

// Entry is a single selectable item: either a launchable program or a nested
// submenu. Exactly one of Command and Submenu is set.
type Entry struct {
	Name    string
	Icon    string
	Command []string
	Submenu *Menu
}

// IsMenu reports whether the entry opens a nested menu level.
func (e *Entry) IsMenu() bool {
	return e.Submenu != nil
}

// Menu holds one level of the configured hierarchy together with its own
// (not yet inherited) picker settings.
type Menu struct {
	FuzzelArgs   []string
	FuzzelConfig map[string]string
	IconDirs     []string
	Items        []Entry
}

// Tree is the immutable, validated menu hierarchy for one run.
type Tree struct {
	root *Menu
}

// Root returns the top-level menu.
func (t *Tree) Root() *Menu {
	return t.root
}

// ParseError reports a malformed or invariant-violating config document,
// naming the offending node's path in the tree.
type ParseError struct {
	Path []string
	Msg  string
}

func (e *ParseError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("config root: %s", e.Msg)
	}
	return fmt.Sprintf("%s: %s", strings.Join(e.Path, " > "), e.Msg)
}

func parseErrorf(path []string, format string, args ...interface{}) *ParseError {
	return &ParseError{Path: append([]string(nil), path...), Msg: fmt.Sprintf(format, args...)}
}

// Build validates a raw document and produces the immutable tree. It fails
// with a ParseError when a display name is empty or duplicated among its
// siblings, when a program has no command, or when an item is neither a
// program nor a menu.
func Build(doc *Document) (*Tree, error) {
	root, err := buildMenu(&doc.rawMenu, nil)
	if err != nil {
		return nil, err
	}
	return &Tree{root: root}, nil
}

func buildMenu(raw *rawMenu, path []string) (*Menu, error) {
	iconDirs, err := normalizeIconDirs(raw.IconDirs, path)
	if err != nil {
		return nil, err
	}

	m := &Menu{
		FuzzelArgs:   append([]string(nil), raw.FuzzelArgs...),
		FuzzelConfig: copyConfig(raw.FuzzelConfig),
		IconDirs:     iconDirs,
		Items:        make([]Entry, 0, len(raw.Items)),
	}

	seen := make(map[string]struct{}, len(raw.Items))
	for i := range raw.Items {
		item := &raw.Items[i]
		if strings.TrimSpace(item.Name) == "" {
			return nil, parseErrorf(path, "item %d has an empty name", i+1)
		}
		if _, dup := seen[item.Name]; dup {
			return nil, parseErrorf(path, "duplicate item name %q", item.Name)
		}
		seen[item.Name] = struct{}{}

		entry, err := buildEntry(item, path)
		if err != nil {
			return nil, err
		}
		m.Items = append(m.Items, entry)
	}
	return m, nil
}

func buildEntry(item *rawItem, path []string) (Entry, error) {
	isProgram := item.Command != nil
	isMenu := item.hasMenuKeys()

	switch {
	case isProgram && isMenu:
		return Entry{}, parseErrorf(childPath(path, "item", item.Name), "defines both a command and menu keys")
	case isProgram:
		if len(item.Command) == 0 {
			return Entry{}, parseErrorf(childPath(path, "program", item.Name), "command must not be empty")
		}
		return Entry{
			Name:    item.Name,
			Icon:    item.Icon,
			Command: append([]string(nil), item.Command...),
		}, nil
	case isMenu:
		sub, err := buildMenu(&item.rawMenu, childPath(path, "menu", item.Name))
		if err != nil {
			return Entry{}, err
		}
		return Entry{Name: item.Name, Icon: item.Icon, Submenu: sub}, nil
	default:
		return Entry{}, parseErrorf(childPath(path, "item", item.Name), "defines neither a command nor items")
	}
}

func childPath(path []string, kind, name string) []string {
	out := make([]string, 0, len(path)+1)
	out = append(out, path...)
	return append(out, fmt.Sprintf("%s %q", kind, name))
}

func copyConfig(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
