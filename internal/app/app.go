package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/Gingeh/uff/internal/engine"
	"github.com/Gingeh/uff/internal/icon"
	"github.com/Gingeh/uff/internal/launch"
	"github.com/Gingeh/uff/internal/logging/events"
	"github.com/Gingeh/uff/internal/menu"
	"github.com/Gingeh/uff/internal/picker"
)

// Config describes user-provided application options.
type Config struct {
	ConfigPath string
	FuzzelPath string
	Verbose    bool
}

// DefaultConfigPath is where the menu file lives when -config is not given.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "uff", "config.yaml")
}

// LoadTree reads and validates the menu file. Errors here happen before any
// picker is launched and are reported as configuration failures.
func LoadTree(path string) (*menu.Tree, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	tree, err := menu.Load(path)
	if err != nil {
		return nil, err
	}
	events.App.ConfigLoaded(path, len(tree.Root().Items))
	return tree, nil
}

// Run drives the engine over the tree until a terminal state. Cancellation
// and a successful program launch both return nil; failures return the
// underlying error for the caller to report.
func Run(cfg Config, tree *menu.Tree) error {
	eng := engine.New(
		picker.NewFuzzel(cfg.FuzzelPath),
		launch.Spawner{},
		icon.NewResolver(),
	)

	final := eng.Run(context.Background(), tree)
	switch final.Kind {
	case engine.Cancelled:
		return nil
	case engine.Executing:
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "uff: launched %s\n", final.Command[0])
		}
		return nil
	default:
		return final.Err
	}
}
