package picker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/Gingeh/uff/internal/logging/events"
)

// DefaultBinary is the picker executable used when no override is given.
const DefaultBinary = "fuzzel"

// View is one fully resolved menu level, ready to present: the extra fuzzel
// arguments, the per-menu config overrides, and the formatted entry lines.
type View struct {
	Args   []string
	Config map[string]string
	Input  []byte
	Lines  int
}

// Fuzzel invokes the external fuzzel process in dmenu mode, once per call.
type Fuzzel struct {
	Binary string
}

// NewFuzzel returns a runner for the given binary, defaulting when empty.
func NewFuzzel(binary string) *Fuzzel {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Fuzzel{Binary: binary}
}

// Pick presents one menu level and returns the picker's raw stdout. The
// formatted lines are written to the child's stdin, stdout is read to
// completion, and the process is waited on before returning, so at most one
// picker is ever live. A non-zero picker exit with no selection is the
// normal dismissal path and yields empty output, not an error. A picker
// that cannot be started is fatal.
func (f *Fuzzel) Pick(ctx context.Context, view View) (string, error) {
	argv := []string{"--dmenu"}

	if len(view.Config) > 0 {
		configPath, err := writeConfigFile(view.Config)
		if err != nil {
			return "", err
		}
		defer os.Remove(configPath)
		argv = append(argv, "--config="+configPath)
	}
	argv = append(argv, view.Args...)

	events.Picker.Launch(f.Binary, argv, view.Lines)

	cmd := exec.CommandContext(ctx, f.Binary, argv...)
	cmd.Stdin = bytes.NewReader(view.Input)
	cmd.Stderr = os.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// fuzzel exits non-zero on dismissal; the absent output
			// line already encodes the cancellation.
			return stdout.String(), nil
		}
		return "", fmt.Errorf("launch picker %q: %w", f.Binary, err)
	}
	return stdout.String(), nil
}
