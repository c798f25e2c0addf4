// Package engine drives repeated picker invocations over the config tree:
// present the current level, interpret the selection, and either descend
// into a submenu, spawn a program, or stop.
package engine

import (
	"context"
	"fmt"

	"github.com/Gingeh/uff/internal/logging/events"
	"github.com/Gingeh/uff/internal/menu"
	"github.com/Gingeh/uff/internal/picker"
)

// Picker runs the external selector for one prepared menu level and returns
// its raw output.
type Picker interface {
	Pick(ctx context.Context, view picker.View) (string, error)
}

// Spawner launches the selected program without waiting for it.
type Spawner interface {
	Spawn(argv []string) error
}

// IconLookup maps an icon spec to a concrete file path, searching the given
// configured dirs before the platform data dirs.
type IconLookup interface {
	Resolve(spec string, configured []string) (string, bool)
}

// StateKind enumerates the engine's states. AtMenu is the only
// non-terminal state; every run ends in Executing, Cancelled, or Failed.
type StateKind int

const (
	AtMenu StateKind = iota
	Executing
	Cancelled
	Failed
)

func (k StateKind) String() string {
	switch k {
	case AtMenu:
		return "at-menu"
	case Executing:
		return "executing"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("StateKind(%d)", int(k))
	}
}

// State is one step of the interaction loop. Node and Ctx are set while
// Kind is AtMenu, Command once Executing, and Err once Failed.
type State struct {
	Kind    StateKind
	Node    *menu.Menu
	Name    string
	Ctx     menu.Context
	Command []string
	Err     error
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s.Kind != AtMenu
}

// Engine owns the interaction loop over its collaborators.
type Engine struct {
	picker  Picker
	spawner Spawner
	icons   IconLookup
}

// New assembles an engine from its collaborators.
func New(p Picker, s Spawner, icons IconLookup) *Engine {
	return &Engine{picker: p, spawner: s, icons: icons}
}

// Run walks the tree from the root until a terminal state is reached. The
// returned state is Cancelled on user dismissal, Executing once the selected
// program has been spawned, and Failed for selection mismatches and launch
// failures. Depth is bounded by the tree, so the loop always terminates.
func (e *Engine) Run(ctx context.Context, tree *menu.Tree) State {
	st := State{Kind: AtMenu, Node: tree.Root(), Name: "root"}
	for {
		switch st.Kind {
		case AtMenu:
			st = e.step(ctx, st)
		case Executing:
			if err := e.spawner.Spawn(st.Command); err != nil {
				return State{Kind: Failed, Err: err}
			}
			return st
		default:
			return st
		}
	}
}

// step resolves the current node, presents it, and maps the picker result
// to the next state. The resolved context is recomputed on every descent
// rather than stored on the tree, so no level ever observes shared mutable
// inherited state.
func (e *Engine) step(ctx context.Context, st State) State {
	resolved := st.Node.Resolve(st.Ctx)
	events.Menu.Show(st.Name, len(st.Node.Items), resolved.IconDirs)

	rows := make([]picker.Row, 0, len(st.Node.Items))
	for i := range st.Node.Items {
		item := &st.Node.Items[i]
		row := picker.Row{Name: item.Name}
		if path, ok := e.icons.Resolve(item.Icon, resolved.IconDirs); ok {
			row.IconPath = path
		}
		rows = append(rows, row)
	}

	view := picker.View{
		Args:   resolved.FuzzelArgs,
		Config: resolved.FuzzelConfig,
		Input:  picker.Format(rows),
		Lines:  len(rows),
	}
	output, err := e.picker.Pick(ctx, view)
	if err != nil {
		return State{Kind: Failed, Err: err}
	}

	sel := picker.ParseSelection(output, st.Node.Items)
	switch sel.Kind {
	case picker.Cancelled:
		events.Picker.Result(events.PickerOutcomeCancelled, "")
		return State{Kind: Cancelled}
	case picker.NoMatch:
		events.Picker.Result(events.PickerOutcomeNoMatch, sel.Line)
		return State{Kind: Failed, Err: fmt.Errorf("picker returned %q: %w", sel.Line, picker.ErrSelectionMismatch)}
	}

	events.Picker.Result(events.PickerOutcomeSelected, sel.Line)
	if sel.Entry.IsMenu() {
		events.Menu.Descend(sel.Entry.Name)
		return State{Kind: AtMenu, Node: sel.Entry.Submenu, Name: sel.Entry.Name, Ctx: resolved}
	}
	return State{Kind: Executing, Command: sel.Entry.Command}
}
