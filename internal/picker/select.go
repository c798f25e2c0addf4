package picker

import (
	"errors"
	"strings"

	"github.com/Gingeh/uff/internal/menu"
)

// ErrSelectionMismatch reports picker output that names no current item. It
// indicates a protocol or encoding mismatch between formatter and picker,
// not a user error, so it is fatal rather than retried.
var ErrSelectionMismatch = errors.New("selection does not match any menu item")

// SelectionKind classifies the picker's output for one invocation.
type SelectionKind int

const (
	// Selected means the output named exactly one current item.
	Selected SelectionKind = iota
	// NoMatch means the output named none of the current items.
	NoMatch
	// Cancelled means the picker produced no output line, the normal
	// user-dismissal path.
	Cancelled
)

// Selection is the parsed result of one picker invocation.
type Selection struct {
	Kind  SelectionKind
	Entry *menu.Entry
	Line  string
}

// ParseSelection maps the picker's raw stdout back to a menu entry. Matching
// is by exact display-name equality rather than by position, because the
// picker reorders lines while the user filters interactively.
func ParseSelection(output string, items []menu.Entry) Selection {
	line := strings.TrimSuffix(output, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return Selection{Kind: Cancelled}
	}
	for i := range items {
		if items[i].Name == line {
			return Selection{Kind: Selected, Entry: &items[i], Line: line}
		}
	}
	return Selection{Kind: NoMatch, Line: line}
}
